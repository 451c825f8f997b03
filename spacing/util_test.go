package spacing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meshmerizeme/meshmerize/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func square(size float64) curve.Path {
	p0, p1, p2, p3 := curve.Pt(0, 0), curve.Pt(size, 0), curve.Pt(size, size), curve.Pt(0, size)
	return curve.NewPath([]curve.Segment{
		curve.Line{P0: p0, P1: p1}.Seg(),
		curve.Line{P0: p1, P1: p2}.Seg(),
		curve.Line{P0: p2, P1: p3}.Seg(),
		curve.Line{P0: p3, P1: p0}.Seg(),
	}, true)
}

// relErrors returns the relative spacing errors of the points at params.
func relErrors(c curve.Curve, params []float64, ds float64) []float64 {
	errs := make([]float64, 0, len(params))
	for i := 1; i < len(params); i++ {
		d := c.Eval(params[i]).Distance(c.Eval(params[i-1]))
		errs = append(errs, (d-ds)/ds)
	}
	return errs
}

func mean(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func abs(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if v < 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}
