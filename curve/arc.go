package curve

import (
	"math"
)

// Arc is an elliptical arc in the endpoint parametrization used by SVG path
// data: it runs from P0 to P1 on an ellipse with the given radii, rotated by
// XRotation radians, choosing among the four candidate arcs with the large
// arc and sweep flags.
//
// Arcs must be created with [NewArc], which resolves the center
// parametrization once. Radii too small to connect the endpoints are scaled up
// as required by SVG.
type Arc struct {
	P0        Point
	P1        Point
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool

	center Point
	radii  Vec2
	theta0 float64
	dtheta float64
}

// NewArc returns the arc from p0 to p1.
func NewArc(p0, p1 Point, radii Vec2, xRotation float64, largeArc, sweep bool) Arc {
	a := Arc{
		P0:        p0,
		P1:        p1,
		Radii:     radii.Abs(),
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
	a.center, a.radii, a.theta0, a.dtheta = toCenter(a.P0, a.P1, a.Radii, xRotation, largeArc, sweep)
	return a
}

// toCenter converts from the endpoint to the center parametrization. It
// returns the center, the (possibly scaled) radii, the start angle and the
// signed sweep angle, both in radians.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func toCenter(p0, p1 Point, radii Vec2, rot float64, large, sweep bool) (Point, Vec2, float64, float64) {
	if p0 == p1 || radii.X == 0 || radii.Y == 0 {
		return p0, radii, 0, 0
	}
	rx, ry := radii.X, radii.Y
	sin, cos := math.Sincos(rot)
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1p := cos*dx + sin*dy
	y1p := -sin*dx + cos*dy

	// scale up radii that cannot span the endpoints
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1.0 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	c := Point{
		X: cos*cxp - sin*cyp + (p0.X+p1.X)/2,
		Y: sin*cxp + cos*cyp + (p0.Y+p1.Y)/2,
	}

	u := Vec2{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v := Vec2{-(x1p + cxp) / rx, -(y1p + cyp) / ry}
	theta := math.Atan2(u.Y, u.X)
	cosDelta := u.Dot(v) / math.Sqrt(u.Hypot2()*v.Hypot2())
	delta := math.Acos(max(-1, min(1, cosDelta)))
	if u.Cross(v) < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2 * math.Pi
	}
	return c, Vec2{rx, ry}, theta, delta
}

// Center returns the center of the arc's ellipse.
func (a Arc) Center() Point {
	return a.center
}

// SweepAngle returns the signed angle in radians swept by the arc.
func (a Arc) SweepAngle() float64 {
	return a.dtheta
}

func (a Arc) angle(t float64) float64 {
	return a.theta0 + t*a.dtheta
}

func (a Arc) Eval(t float64) Point {
	if a.dtheta == 0 {
		return a.P0.Lerp(a.P1, t)
	}
	sin, cos := math.Sincos(a.angle(t))
	return a.center.Translate(Vec2{a.radii.X * cos, a.radii.Y * sin}.rotate(a.XRotation))
}

func (a Arc) Deriv(t float64) Vec2 {
	if a.dtheta == 0 {
		return a.P1.Sub(a.P0)
	}
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-a.radii.X * sin, a.radii.Y * cos}.rotate(a.XRotation).Mul(a.dtheta)
}

func (a Arc) Deriv2(t float64) Vec2 {
	if a.dtheta == 0 {
		return Vec2{}
	}
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-a.radii.X * cos, -a.radii.Y * sin}.rotate(a.XRotation).Mul(a.dtheta * a.dtheta)
}

// Arclen returns the length of the arc, computed by Legendre-Gauss quadrature
// over pieces of at most an eighth of a turn.
func (a Arc) Arclen(accuracy float64) float64 {
	return a.ArclenRange(0, 1, accuracy)
}

func (a Arc) ArclenRange(t0, t1, accuracy float64) float64 {
	if a.dtheta == 0 {
		return (t1 - t0) * a.P1.Sub(a.P0).Hypot()
	}
	n := max(1, int(math.Ceil(math.Abs((t1-t0)*a.dtheta)*4/math.Pi)))
	return integrate(func(t float64) float64 { return a.Deriv(t).Hypot() }, t0, t1, n)
}

func (a Arc) SolveForArclen(arclen, accuracy float64) float64 {
	return solveForArclen(a, a.Arclen(accuracy), arclen, accuracy)
}

func (a Arc) Start() Point { return a.P0 }
func (a Arc) End() Point   { return a.P1 }

// Transform maps the arc through aff. The image of the arc's ellipse
// determines the new radii and x-axis rotation. A mirroring transform
// reverses the sweep direction.
func (a Arc) Transform(aff Affine) Arc {
	sweep := a.Sweep
	if aff.Determinant() < 0 {
		sweep = !sweep
	}
	radii, rot := NewEllipse(a.center, a.radii, a.XRotation).Transform(aff).RadiiRotation()
	return NewArc(
		a.P0.Transform(aff),
		a.P1.Transform(aff),
		radii,
		rot,
		a.LargeArc,
		sweep,
	)
}

func (a Arc) Seg() Segment {
	return Segment{Kind: ArcKind, P0: a.P0, P1: a.P1, Arc: a}
}
