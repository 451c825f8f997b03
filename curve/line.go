package curve

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) ArclenRange(t0, t1, accuracy float64) float64 {
	return (t1 - t0) * l.Length()
}

func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, arclen/n))
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) Deriv2(t float64) Vec2 {
	return Vec2{}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
