package mesh

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meshmerizeme/meshmerize/input2d"
	"github.com/meshmerizeme/meshmerize/internal/logging"
	"github.com/meshmerizeme/meshmerize/svg"
	"github.com/meshmerizeme/meshmerize/vertex"
)

// InputName is the name of the simulation parameter file, looked up in the
// directory of the file being processed.
const InputName = "input2d"

// Result describes a processed file.
type Result struct {
	// Out is the name of the file written.
	Out    string
	Params *input2d.Params
	// Vertices is the number of vertices written or plotted.
	Vertices int
	Report   vertex.Report
}

// LoadParams reads the simulation parameters next to name.
func LoadParams(name string) (*input2d.Params, error) {
	in := filepath.Join(filepath.Dir(name), InputName)
	p, err := input2d.ParseFile(in)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info("loaded simulation parameters", "file", in, "name", p.Name)
	return p, nil
}

// MeshFile meshes the SVG file name with the simulation parameters next to it
// and writes the vertices to <dir>/<string_name>.vertex. Nothing is written if
// any path fails.
func MeshFile(ctx context.Context, name string, opts Options) (*Result, error) {
	p, err := LoadParams(name)
	if err != nil {
		return nil, err
	}
	return MeshFileWithParams(ctx, name, p, opts)
}

// MeshFileWithParams is like MeshFile, but uses already loaded parameters.
func MeshFileWithParams(ctx context.Context, name string, p *input2d.Params, opts Options) (*Result, error) {
	log := logging.Logger()
	log.Info("processing svg", "file", name)

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	doc, err := svg.Parse(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Info("extracted paths", "file", name, "paths", len(doc.Paths()), "space", doc.Space())

	vs, report, err := Vertices(ctx, doc, p, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out := filepath.Join(filepath.Dir(name), p.Name+".vertex")
	if err := vertex.WriteFile(out, vs); err != nil {
		return nil, err
	}
	log.Info("vertices written", "file", out, "vertices", len(vs))
	return &Result{Out: out, Params: p, Vertices: len(vs), Report: report}, nil
}

// PlotFile plots the vertex file name to out. An empty out means
// <dir>/<string_name>.png.
func PlotFile(name, out string) (*Result, error) {
	log := logging.Logger()
	log.Info("processing vertex file", "file", name)

	p, err := LoadParams(name)
	if err != nil {
		return nil, err
	}
	vs, err := vertex.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if out == "" {
		out = filepath.Join(filepath.Dir(name), p.Name+".png")
	}
	if err := Plot(out, vs, p.Lx, p.Ly, p.Name); err != nil {
		return nil, err
	}
	log.Info("plotted vertices", "file", name, "out", out, "vertices", len(vs))
	return &Result{Out: out, Params: p, Vertices: len(vs)}, nil
}
