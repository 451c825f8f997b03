// Package spacing chooses parameters on a curve so that consecutive points
// are a fixed distance apart.
//
// Two strategies are provided. [Heuristic] steps along each segment using the
// first derivative and is fast and exact on straight lines. [Parallel]
// minimizes the relative spacing error with gradient descent, fitting
// subpaths concurrently before a final pass over the whole curve.
package spacing

import (
	"context"
	"fmt"

	"github.com/meshmerizeme/meshmerize/curve"
)

// Strategy computes curve parameters for points spaced cfg.Ds apart.
type Strategy interface {
	Params(ctx context.Context, c curve.Curve, cfg Config) ([]float64, error)
}

var (
	_ Strategy = Heuristic{}
	_ Strategy = Parallel{}
)

// Config controls how points are spaced. It is passed by value; strategies
// that run concurrently give every worker its own copy.
type Config struct {
	// Ds is the target distance between consecutive points.
	Ds float64
	// MinT and MaxT bound the parameters, within [0, 1].
	MinT, MaxT float64

	// NumPoints, if positive, fixes the number of points, initially spread
	// evenly in parameter space. It takes precedence over Params.
	NumPoints int
	// Params, if non-nil, is the initial parameter set.
	Params []float64

	LearningRate float64
	MaxIter      int
	// Threshold stops gradient descent once an iteration changes the mean
	// squared error by no more than this.
	Threshold float64
	// SubpathLength is the length of the subpaths fitted in parallel, in
	// multiples of Ds.
	SubpathLength float64
	// Workers is the number of concurrent subpath fits. Zero means
	// GOMAXPROCS.
	Workers int
	// Seed seeds the random parameters used to pad a short merged set. Zero
	// picks a random seed.
	Seed uint64
	// Progress, if set, is called periodically with the number of subpaths
	// claimed by workers so far and the total number of subpaths. It is called
	// from a separate goroutine.
	Progress func(done, total int)
}

// DefaultConfig returns the default configuration for spacing ds.
func DefaultConfig(ds float64) Config {
	return Config{
		Ds:            ds,
		MinT:          0,
		MaxT:          1,
		LearningRate:  5e-5,
		MaxIter:       50,
		Threshold:     1e-6,
		SubpathLength: 25,
		Workers:       10,
	}
}

func (cfg Config) validate() error {
	if !(cfg.Ds > 0) {
		return fmt.Errorf("spacing: ds must be positive, got %g", cfg.Ds)
	}
	if cfg.MinT < 0 || cfg.MaxT > 1 || cfg.MinT > cfg.MaxT {
		return fmt.Errorf("spacing: bad parameter range [%g, %g]", cfg.MinT, cfg.MaxT)
	}
	return nil
}
