// Package mesh turns the paths of an SVG document into evenly spaced
// vertices in the domain of an immersed boundary simulation.
//
// A path is mapped from its local coordinates to the document root by the
// aggregate transform of its element, and from the document space to the
// simulation domain [0, Lx] × [0, Ly] by [TargetSpace]. A spacing strategy
// then picks the parameters of the vertices on the mapped path.
package mesh

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meshmerizeme/meshmerize/curve"
	"github.com/meshmerizeme/meshmerize/input2d"
	"github.com/meshmerizeme/meshmerize/internal/logging"
	"github.com/meshmerizeme/meshmerize/spacing"
	"github.com/meshmerizeme/meshmerize/svg"
	"github.com/meshmerizeme/meshmerize/vertex"
)

// SetLogger sets the logger used by this module. A nil logger discards all
// output, which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Options configure how vertices are placed.
type Options struct {
	// Strategy picks the parameters on each path. Nil means
	// [spacing.Heuristic].
	Strategy spacing.Strategy
	// Spacing is the base spacing configuration. Nil means
	// [spacing.DefaultConfig]. Its Ds is always replaced by the spacing of the
	// simulation parameters.
	Spacing *spacing.Config
}

func (o Options) strategy() spacing.Strategy {
	if o.Strategy == nil {
		return spacing.Heuristic{}
	}
	return o.Strategy
}

func (o Options) config(ds float64) spacing.Config {
	if o.Spacing == nil {
		return spacing.DefaultConfig(ds)
	}
	cfg := *o.Spacing
	cfg.Ds = ds
	return cfg
}

// TargetSpace returns the transform mapping space onto [0, lx] × [0, ly].
func TargetSpace(space svg.Space, lx, ly float64) curve.Affine {
	sx := lx / space.Width
	sy := ly / space.Height
	return curve.Affine{sx, 0, 0, sy, -sx * space.X, -sy * space.Y}
}

// Vertices places vertices on every path of doc, in document order, spaced
// p.Ds apart in the simulation domain.
//
// Malformed transforms are logged and treated as the identity. Empty paths
// are skipped. The vertex repeating the start of a closed path is dropped.
// The returned report covers the spacing within each path; the gap between
// the last vertex of one path and the first of the next is not checked.
func Vertices(ctx context.Context, doc *svg.Document, p *input2d.Params, opts Options) ([]vertex.Vertex, vertex.Report, error) {
	log := logging.Logger()
	target := TargetSpace(doc.Space(), p.Lx, p.Ly)
	strategy := opts.strategy()
	cfg := opts.config(p.Ds)

	var (
		vs     []vertex.Vertex
		report = vertex.Report{Ds: p.Ds}
	)
	paths := doc.Paths()
	log.Info("making vertices", "paths", len(paths), "ds", p.Ds)
	for _, i := range paths {
		if err := ctx.Err(); err != nil {
			return nil, vertex.Report{}, err
		}
		el := doc.Elements[i]
		aff, err := doc.AggregateTransform(i)
		if err != nil {
			log.Warn("ignoring malformed transform", "element", i, "attrs", el.Attrs, "err", err)
		}
		path, err := doc.Path(i)
		if err != nil {
			return nil, vertex.Report{}, err
		}
		if path.Len() == 0 {
			log.Warn("skipping empty path", "element", i, "attrs", el.Attrs)
			continue
		}
		path = path.Transform(target.Mul(aff))

		params, err := strategy.Params(ctx, path, cfg)
		if err != nil {
			return nil, vertex.Report{}, fmt.Errorf("mesh: path element %d: %w", i, err)
		}
		pvs := make([]vertex.Vertex, 0, len(params))
		for _, t := range params {
			pt := path.Eval(t)
			pvs = append(pvs, vertex.Vertex{X: pt.X, Y: pt.Y})
		}
		if n := len(pvs); path.Closed() && n > 1 && vertex.Dist(pvs[0], pvs[n-1]) <= 1e-6*p.Ds {
			pvs = pvs[:n-1]
		}
		log.Debug("placed vertices", "element", i, "vertices", len(pvs),
			"length", path.Arclen(curve.DefaultAccuracy), "bounds", path.ControlBox())

		r := vertex.Check(pvs, p.Ds)
		r.LogOutliers(log, "element", i, "attrs", el.Attrs)
		report.Merge(r, len(vs))
		vs = append(vs, pvs...)
	}
	report.LogSummary(log)
	return vs, report, nil
}
