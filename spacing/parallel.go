package spacing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meshmerizeme/meshmerize/curve"
	"github.com/meshmerizeme/meshmerize/internal/logging"
)

const (
	subpathLearningRate = 5e-7
	subpathMaxIter      = 500
	progressInterval    = 200 * time.Millisecond
)

// Parallel splits a curve into subpaths of cfg.SubpathLength·ds in arc length,
// fits each with an [Estimator] on a pool of workers, merges the results and
// finishes with one gradient descent pass over the whole range using cfg's own
// learning rate and iteration limit.
//
// The result has exactly as many parameters as [NewEstimator] would start
// with, all within [cfg.MinT, cfg.MaxT].
type Parallel struct{}

func (Parallel) Params(ctx context.Context, c curve.Curve, cfg Config) ([]float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !(cfg.SubpathLength > 0) {
		return nil, fmt.Errorf("spacing: subpath length must be positive, got %g", cfg.SubpathLength)
	}
	log := logging.Logger()

	target := initialCount(c, cfg)
	total := c.ArclenRange(cfg.MinT, cfg.MaxT, curve.DefaultAccuracy)
	subLen := cfg.SubpathLength * cfg.Ds
	n := max(1, int(total/subLen))

	bounds := make([]float64, n+1)
	bounds[0], bounds[n] = cfg.MinT, cfg.MaxT
	start := c.ArclenRange(0, cfg.MinT, curve.DefaultAccuracy)
	for k := 1; k < n; k++ {
		bounds[k] = c.SolveForArclen(start+float64(k)*subLen, curve.DefaultAccuracy)
	}
	log.Debug("fitting subpaths", "subpaths", n, "points", target)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	var next atomic.Int64
	results := make(chan []float64, n)
	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				k := int(next.Add(1) - 1)
				if k >= n {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				sub := cfg
				sub.MinT, sub.MaxT = bounds[k], bounds[k+1]
				sub.LearningRate = subpathLearningRate
				sub.MaxIter = subpathMaxIter
				sub.NumPoints = 0
				sub.Params = nil
				sub.Progress = nil
				params, err := NewEstimator(c, sub).Fit(gctx)
				if err != nil {
					return err
				}
				// the last point of a subpath starts the next one
				if k < n-1 && len(params) > 0 {
					params = params[:len(params)-1]
				}
				results <- params
				log.Debug("fitted subpath", "index", k, "subpaths", n, "points", len(params))
			}
		})
	}

	done := make(chan struct{})
	var monitor sync.WaitGroup
	if cfg.Progress != nil {
		monitor.Add(1)
		go func() {
			defer monitor.Done()
			ticker := time.NewTicker(progressInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					cfg.Progress(min(int(next.Load()), n), n)
				}
			}
		}()
	}
	err := g.Wait()
	close(done)
	monitor.Wait()
	close(results)
	if err != nil {
		return nil, err
	}
	if cfg.Progress != nil {
		cfg.Progress(n, n)
	}

	var params []float64
	for ps := range results {
		params = append(params, ps...)
	}
	slices.Sort(params)
	if len(params) > target {
		params = params[:target]
	} else if len(params) < target {
		log.Debug("padding merged subpaths", "missing", target-len(params))
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		for len(params) < target {
			params = append(params, cfg.MinT+rng.Float64()*(cfg.MaxT-cfg.MinT))
		}
		slices.Sort(params)
	}

	final := cfg
	final.NumPoints = 0
	final.Params = params
	e := NewEstimator(c, final)
	if err := e.descend(ctx); err != nil {
		return nil, err
	}
	out := e.Params()
	slices.Sort(out)
	return out, nil
}
