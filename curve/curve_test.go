package curve

import (
	"math"
	"testing"
)

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2, f(1.0), f(2.0))
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestIntegrate(t *testing.T) {
	got := integrate(math.Sin, 0, math.Pi, 4)
	if d := math.Abs(got - 2); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}

	// polynomials of low degree are exact on a single interval
	got = integrate(func(x float64) float64 { return 3 * x * x }, -1, 2, 1)
	if d := math.Abs(got - 9); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
}

func TestSolveForArclenClamps(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(100.0/3.0, 0.0),
		Pt(200.0/3.0, 100.0/3.0),
		Pt(100.0, 100.0),
	}
	if got := c.SolveForArclen(-5, 1e-9); got != 0 {
		t.Errorf("got %g, expected 0", got)
	}
	if got := c.SolveForArclen(1e6, 1e-9); got != 1 {
		t.Errorf("got %g, expected 1", got)
	}
}
