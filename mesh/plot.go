package mesh

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/meshmerizeme/meshmerize/vertex"
)

// plotWidth is the width of a plot. The height follows the aspect ratio of
// the domain.
const plotWidth = 16 * vg.Centimeter

// xyer adapts a vertex set to plotter.XYer.
type xyer []vertex.Vertex

func (v xyer) Len() int                    { return len(v) }
func (v xyer) XY(i int) (float64, float64) { return v[i].X, v[i].Y }

func newPlot(vs []vertex.Vertex, lx, ly float64, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	s, err := plotter.NewScatter(xyer(vs))
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(1)
	p.Add(s)

	// Add widens the axes to the data; pin them to the domain afterwards.
	p.X.Min, p.X.Max = 0, lx
	p.Y.Min, p.Y.Max = 0, ly
	return p, nil
}

func plotSize(lx, ly float64) (vg.Length, vg.Length) {
	h := plotWidth
	if lx > 0 && ly > 0 {
		h = vg.Length(float64(plotWidth) * ly / lx)
	}
	return plotWidth, h
}

// WritePlot renders vs as a scatter plot over [0, lx] × [0, ly] in the given
// format (png, svg, pdf, eps, jpg, tif) to w.
func WritePlot(w io.Writer, format string, vs []vertex.Vertex, lx, ly float64, title string) error {
	p, err := newPlot(vs, lx, ly, title)
	if err != nil {
		return err
	}
	width, height := plotSize(lx, ly)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Plot is like [WritePlot] but saves to the file name, in the format given
// by its extension.
func Plot(name string, vs []vertex.Vertex, lx, ly float64, title string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if format == "" {
		return fmt.Errorf("mesh: no plot format for %s", name)
	}
	p, err := newPlot(vs, lx, ly, title)
	if err != nil {
		return err
	}
	width, height := plotSize(lx, ly)
	return p.Save(width, height, name)
}
