package curve

import (
	"math"
	"testing"
)

func quarterCircle() Arc {
	return NewArc(Pt(1, 0), Pt(0, 1), Vec(1, 1), 0, false, true)
}

func TestArcEndpoints(t *testing.T) {
	arcs := []Arc{
		quarterCircle(),
		NewArc(Pt(0, 0), Pt(10, 5), Vec(8, 4), 0.3, true, false),
		NewArc(Pt(0, 0), Pt(10, 5), Vec(8, 4), 0.3, false, true),
		// radii too small, scaled up
		NewArc(Pt(0, 0), Pt(100, 0), Vec(1, 1), 0, false, false),
	}
	for _, a := range arcs {
		assertNear(t, a.Eval(0), a.P0, 1e-9)
		assertNear(t, a.Eval(1), a.P1, 1e-9)
	}
}

func TestArcQuarterCircle(t *testing.T) {
	a := quarterCircle()
	assertNear(t, a.Center(), Pt(0, 0), 1e-12)
	if d := math.Abs(a.SweepAngle() - math.Pi/2); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
	if d := math.Abs(a.Arclen(1e-9) - math.Pi/2); d > 1e-9 {
		t.Errorf("%g > %g", d, 1e-9)
	}
	tt := a.SolveForArclen(math.Pi/4, 1e-9)
	if d := math.Abs(tt - 0.5); d > 1e-9 {
		t.Errorf("%g > %g", d, 1e-9)
	}
	assertNear(t, a.Eval(0.5), Pt(math.Sqrt2/2, math.Sqrt2/2), 1e-12)
}

func TestArcScaledRadii(t *testing.T) {
	// a semicircle is the best that radii of 1 can do
	a := NewArc(Pt(0, 0), Pt(100, 0), Vec(1, 1), 0, false, false)
	assertNear(t, a.Center(), Pt(50, 0), 1e-9)
	if d := math.Abs(a.Arclen(1e-9) - 50*math.Pi); d > 1e-6 {
		t.Errorf("%g > %g", d, 1e-6)
	}
}

func TestArcDeriv(t *testing.T) {
	a := NewArc(Pt(0, 0), Pt(10, 5), Vec(8, 4), 0.3, true, false)
	const n = 10
	const delta = 1e-7
	for i := range n {
		ts := float64(i) / float64(n)
		dApprox := a.Eval(ts + delta).Sub(a.Eval(ts)).Mul(1.0 / delta)
		if l := a.Deriv(ts).Sub(dApprox).Hypot(); l > 1e-4 {
			t.Errorf("got difference of %g, want at most %g", l, 1e-4)
		}
		ddApprox := a.Deriv(ts + delta).Sub(a.Deriv(ts)).Mul(1.0 / delta)
		if l := a.Deriv2(ts).Sub(ddApprox).Hypot(); l > 1e-3 {
			t.Errorf("got second derivative difference of %g, want at most %g", l, 1e-3)
		}
	}
}

func TestArcDegenerate(t *testing.T) {
	a := NewArc(Pt(0, 0), Pt(3, 4), Vec(0, 2), 0, false, false)
	if d := math.Abs(a.Arclen(1e-9) - 5); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
	assertNear(t, a.Eval(0.5), Pt(1.5, 2), 1e-12)
}

func TestArcTransformMirror(t *testing.T) {
	a := quarterCircle()
	m := a.Transform(Scale(-1, 1))
	if m.Sweep == a.Sweep {
		t.Error("mirroring should flip the sweep flag")
	}
	assertNear(t, m.Center(), Pt(0, 0), 1e-12)
	for i := range 5 {
		tt := float64(i) / 4
		assertNear(t, m.Eval(tt), a.Eval(tt).Transform(Scale(-1, 1)), 1e-9)
	}
}

func TestArcTransformTranslate(t *testing.T) {
	a := quarterCircle()
	m := a.Transform(Translate(Vec(5, -2)))
	diff(t, a.Radii, m.Radii)
	for i := range 5 {
		tt := float64(i) / 4
		assertNear(t, m.Eval(tt), a.Eval(tt).Translate(Vec(5, -2)), 1e-9)
	}
}

func TestArcTransformRotate(t *testing.T) {
	a := NewArc(Pt(0, 0), Pt(20, 0), Vec(10, 10), 0, false, true)
	aff := Rotate(math.Pi / 4)
	m := a.Transform(aff)
	if d := math.Abs(m.Arclen(1e-9) - 10*math.Pi); d > 1e-6 {
		t.Errorf("%g > %g", d, 1e-6)
	}
	assertNear(t, m.Eval(0.5), a.Eval(0.5).Transform(aff), 1e-6)
	for i := range 9 {
		tt := float64(i) / 8
		assertNear(t, m.Eval(tt), a.Eval(tt).Transform(aff), 1e-6)
	}
}

func TestArcTransformGeneral(t *testing.T) {
	a := NewArc(Pt(0, 0), Pt(10, 5), Vec(8, 4), 0.3, true, false)
	tests := []struct {
		name string
		aff  Affine
	}{
		{"rotate", Rotate(math.Pi / 4)},
		{"skewX", Skew(math.Tan(math.Pi/6), 0)},
		{"scale", Scale(3, 0.5)},
		{"mixed", Translate(Vec(4, -1)).Mul(Skew(0.2, -0.4)).Mul(Rotate(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := a.Transform(tt.aff)
			for i := range 17 {
				ts := float64(i) / 16
				assertNear(t, m.Eval(ts), a.Eval(ts).Transform(tt.aff), 1e-9)
			}
			assertNear(t, m.Center(), a.Center().Transform(tt.aff), 1e-9)
		})
	}
}
