package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineTranslateThenScale(t *testing.T) {
	const a, b, s = 3.0, -7.5, 2.5
	want := Affine{s, 0, 0, s, a * s, b * s}

	diff(t, want, Scale(s, s).Mul(Translate(Vec(a, b))), cmpopts.EquateApprox(0, 1e-12))
	diff(t, want, Translate(Vec(a, b)).ThenScale(s, s), cmpopts.EquateApprox(0, 1e-12))

	// Applying the combined transform equals applying both in turn.
	p := Pt(1.25, -4)
	assertNear(t, p.Transform(want), p.Transform(Translate(Vec(a, b))).Transform(Scale(s, s)), 1e-12)
}

func TestRotateAbout(t *testing.T) {
	aff := RotateAbout(math.Pi/2, Pt(1, 1))
	assertNear(t, Pt(1, 1).Transform(aff), Pt(1, 1), 1e-12)
	assertNear(t, Pt(2, 1).Transform(aff), Pt(1, 2), 1e-12)
}

func TestAffineMatrix(t *testing.T) {
	want := [3][3]float64{
		{1, 3, 5},
		{2, 4, 6},
		{0, 0, 1},
	}
	diff(t, want, Affine{1, 2, 3, 4, 5, 6}.Matrix())
}

func TestAffineDeterminant(t *testing.T) {
	if d := Scale(2, 3).Determinant(); d != 6 {
		t.Errorf("got determinant %g, want 6", d)
	}
	if d := Scale(-1, 1).Determinant(); d >= 0 {
		t.Errorf("mirror has determinant %g", d)
	}
}
