package spacing

import (
	"context"
	"math"
	"slices"

	"github.com/meshmerizeme/meshmerize/curve"
)

// gradientClip bounds the relative length error term of the gradient, which
// diverges for coincident points.
const gradientClip = 99999

// Estimator fits parameters on a curve by gradient descent on the mean squared
// relative error of the distances between consecutive points.
type Estimator struct {
	c      curve.Curve
	cfg    Config
	params []float64
	pts    []curve.Point
}

// NewEstimator returns an estimator for c. The initial parameters are
// cfg.NumPoints evenly spread values in [cfg.MinT, cfg.MaxT] if NumPoints is
// positive, a copy of cfg.Params if it is non-nil, and otherwise evenly spread
// values one ds apart in arc length, rounded up.
func NewEstimator(c curve.Curve, cfg Config) *Estimator {
	var params []float64
	switch {
	case cfg.NumPoints > 0:
		params = linspace(cfg.MinT, cfg.MaxT, cfg.NumPoints)
	case cfg.Params != nil:
		params = slices.Clone(cfg.Params)
	default:
		params = linspace(cfg.MinT, cfg.MaxT, initialCount(c, cfg))
	}
	return &Estimator{
		c:      c,
		cfg:    cfg,
		params: params,
		pts:    make([]curve.Point, len(params)),
	}
}

// initialCount returns the number of points needed to cover [MinT, MaxT] with
// segments of at most ds.
func initialCount(c curve.Curve, cfg Config) int {
	switch {
	case cfg.NumPoints > 0:
		return cfg.NumPoints
	case cfg.Params != nil:
		return len(cfg.Params)
	}
	l := c.ArclenRange(cfg.MinT, cfg.MaxT, curve.DefaultAccuracy)
	// tolerate arc length error when l is a multiple of ds
	return int(math.Ceil(l/cfg.Ds-1e-9)) + 1
}

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	out[n-1] = b
	return out
}

// Params returns a copy of the current parameters.
func (e *Estimator) Params() []float64 {
	return slices.Clone(e.params)
}

func (e *Estimator) eval() {
	for i, t := range e.params {
		e.pts[i] = e.c.Eval(t)
	}
}

// MSE returns the mean squared relative error of the distances between
// consecutive points. It is zero for fewer than two points.
func (e *Estimator) MSE() float64 {
	if len(e.params) < 2 {
		return 0
	}
	e.eval()
	return e.mse()
}

func (e *Estimator) mse() float64 {
	ds := e.cfg.Ds
	var sum float64
	for i := range len(e.pts) - 1 {
		rel := (e.pts[i+1].Distance(e.pts[i]) - ds) / ds
		sum += rel * rel
	}
	return sum / float64(len(e.pts)-1)
}

// Gradient returns the gradient of an approximation of [Estimator.MSE] with
// respect to each parameter.
func (e *Estimator) Gradient() []float64 {
	g := make([]float64, len(e.params))
	nseg := len(e.params) - 1
	if nseg < 1 {
		return g
	}
	e.eval()
	ds := e.cfg.Ds
	d := make([]curve.Vec2, len(e.params))
	for i, t := range e.params {
		d[i] = e.c.Deriv(t)
	}
	for i := range nseg {
		seg := e.pts[i+1].Sub(e.pts[i])
		l := seg.Hypot()
		term1 := max(-gradientClip, min(gradientClip, (l-ds)/l))
		if math.IsNaN(term1) {
			term1 = 0
		}
		g[i+1] += term1 * seg.Dot(d[i+1])
		g[i] -= term1 * seg.Dot(d[i])
	}
	scale := float64(nseg) * ds * ds
	for i := range g {
		g[i] /= scale
	}
	return g
}

// Fit runs gradient descent until an iteration changes the error by no more
// than the threshold or the iteration limit is reached. It returns the sorted
// parameters with duplicates removed.
func (e *Estimator) Fit(ctx context.Context) ([]float64, error) {
	if err := e.descend(ctx); err != nil {
		return nil, err
	}
	out := e.Params()
	slices.Sort(out)
	return slices.Compact(out), nil
}

func (e *Estimator) descend(ctx context.Context) error {
	if len(e.params) < 2 {
		return nil
	}
	cfg := e.cfg
	mse := e.MSE()
	delta := 1.0
	for iter := 0; math.Abs(delta) > cfg.Threshold && iter < cfg.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g := e.Gradient()
		for i := range e.params {
			e.params[i] = max(cfg.MinT, min(cfg.MaxT, e.params[i]-cfg.LearningRate*g[i]))
		}
		newMSE := e.MSE()
		delta = mse - newMSE
		mse = newMSE
	}
	return nil
}
