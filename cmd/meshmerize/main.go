package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tdewolff/argp"

	"github.com/meshmerizeme/meshmerize/config"
	"github.com/meshmerizeme/meshmerize/internal/logging"
	"github.com/meshmerizeme/meshmerize/mesh"
	"github.com/meshmerizeme/meshmerize/spacing"
)

type Mesh struct {
	Strategy string   `short:"s" desc:"Spacing strategy, heuristic or gradient"`
	Workers  int      `short:"w" desc:"Concurrent subpath fits of the gradient strategy"`
	Seed     uint64   `desc:"Seed of the padding parameters, 0 picks one at random"`
	Verbose  bool     `short:"v" desc:"Log debug messages"`
	Files    []string `index:"*" desc:"SVG files, read from stdin if omitted"`
}

type Plot struct {
	Output  string   `short:"o" desc:"Output file, only for a single vertex file"`
	Verbose bool     `short:"v" desc:"Log debug messages"`
	Files   []string `index:"*" desc:"Vertex files"`
}

type Batch struct {
	Plot     bool   `short:"p" desc:"Plot vertex files instead of meshing SVG files"`
	Strategy string `short:"s" desc:"Spacing strategy, heuristic or gradient"`
	Workers  int    `short:"w" desc:"Concurrent subpath fits of the gradient strategy"`
	Seed     uint64 `desc:"Seed of the padding parameters, 0 picks one at random"`
	Verbose  bool   `short:"v" desc:"Log debug messages"`
}

func main() {
	root := argp.NewCmd(&Mesh{}, "Place evenly spaced immersed boundary vertices on the paths of SVG files")
	root.AddCmd(&Mesh{}, "mesh", "Mesh SVG files into .vertex files")
	root.AddCmd(&Plot{}, "plot", "Plot .vertex files")
	root.AddCmd(&Batch{}, "batch", "Mesh or plot the files named on stdin, one per line")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Mesh) Run() error {
	a, err := newApp(cmd.Strategy, cmd.Workers, cmd.Seed, cmd.Verbose)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(cmd.Files) == 0 {
		return a.batch(ctx, os.Stdin, false)
	}
	a.log.Info("meshing files", "files", len(cmd.Files))
	return a.each(cmd.Files, func(name string) error {
		return a.meshFile(ctx, name)
	})
}

func (cmd *Plot) Run() error {
	if len(cmd.Files) == 0 {
		return argp.ShowUsage
	} else if cmd.Output != "" && len(cmd.Files) != 1 {
		fmt.Println("ERROR: output file requires a single vertex file")
		return argp.ShowUsage
	}
	a, err := newApp("", 0, 0, cmd.Verbose)
	if err != nil {
		return err
	}
	return a.each(cmd.Files, func(name string) error {
		return a.plotFile(name, cmd.Output)
	})
}

func (cmd *Batch) Run() error {
	a, err := newApp(cmd.Strategy, cmd.Workers, cmd.Seed, cmd.Verbose)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.batch(ctx, os.Stdin, cmd.Plot)
}

type app struct {
	cfg      *config.Config
	strategy spacing.Strategy
	console  slog.Handler
	log      *slog.Logger
}

// newApp loads the configuration from the environment and applies the flags
// that were set on top of it.
func newApp(strategy string, workers int, seed uint64, verbose bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	s, err := cfg.SpacingStrategy()
	if err != nil {
		return nil, err
	}

	// warnings go to the log file of each job, errors to both
	console := logging.Filter(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}),
		func(l slog.Level) bool { return l <= slog.LevelInfo || l >= slog.LevelError },
	)
	a := &app{
		cfg:      cfg,
		strategy: s,
		console:  console,
		log:      slog.New(console),
	}
	mesh.SetLogger(a.log)
	return a, nil
}

// each runs fn on every file, logging failures and carrying on with the next
// file.
func (a *app) each(files []string, fn func(string) error) error {
	failed := 0
	for _, name := range files {
		if err := fn(name); err != nil {
			a.log.Error("failed", "file", name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// batch processes the files named on r, one per line, until an empty line or
// the end of input.
func (a *app) batch(ctx context.Context, r io.Reader, plot bool) error {
	a.log.Info("reading file names from stdin", "plot", plot)
	var files []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		name := strings.TrimSpace(s.Text())
		if name == "" {
			break
		}
		files = append(files, name)
	}
	if err := s.Err(); err != nil {
		return err
	}
	return a.each(files, func(name string) error {
		if plot {
			return a.plotFile(name, "")
		}
		return a.meshFile(ctx, name)
	})
}

// meshFile meshes one SVG file. Warnings of the job are also written to
// <string_name>.log next to it.
func (a *app) meshFile(ctx context.Context, name string) error {
	dir := filepath.Dir(name)
	p, err := mesh.LoadParams(name)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, p.Name+".log"))
	if err != nil {
		return err
	}
	defer f.Close()

	file := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelWarn})
	l := slog.New(logging.Fanout(a.console, file)).With("job", uuid.NewString())
	mesh.SetLogger(l)
	defer mesh.SetLogger(a.log)

	sc := a.cfg.Spacing(p.Ds)
	sc.Progress = func(done, total int) {
		l.Debug("fitting subpaths", "done", done, "total", total)
	}
	res, err := mesh.MeshFileWithParams(ctx, name, p, mesh.Options{Strategy: a.strategy, Spacing: &sc})
	if err != nil {
		// the console gets the error from each
		slog.New(file).Error("meshing failed", "file", name, "err", err)
		return err
	}
	l.Info("meshed", "file", name, "out", res.Out, "vertices", res.Vertices,
		"mean_error_pct", 100*res.Report.MeanRelError())
	return nil
}

func (a *app) plotFile(name, out string) error {
	res, err := mesh.PlotFile(name, out)
	if err != nil {
		return err
	}
	a.log.Info("plotted", "file", name, "out", res.Out)
	return nil
}
