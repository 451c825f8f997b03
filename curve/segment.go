package curve

import "fmt"

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// An elliptical arc.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	case ArcKind:
		return "arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment represents a segment of a path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], [CubicBez]
// and [Arc]).
//
// For lines and Béziers, the control points are stored in P0 through P3. For
// arcs, P0 and P1 hold the endpoints and Arc holds the arc itself.
type Segment struct {
	// We don't use an interface for Segment because we want {Line, Quad,
	// Cubic, Arc}.Transform to return their respective types, not Segment.
	// This also avoids having to allocate for path segments.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	Arc  Arc
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only valid when Kind ==
// CubicKind.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

// Transform maps every control point of the segment through aff. Arcs are
// transformed with [Arc.Transform].
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	case ArcKind:
		return seg.Arc.Transform(aff).Seg()
	default:
		return Segment{}
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	case ArcKind:
		return seg.Arc.Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv(t)
	case QuadKind:
		return seg.Quad().Deriv(t)
	case CubicKind:
		return seg.Cubic().Deriv(t)
	case ArcKind:
		return seg.Arc.Deriv(t)
	default:
		return Vec2{}
	}
}

func (seg Segment) Deriv2(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv2(t)
	case QuadKind:
		return seg.Quad().Deriv2(t)
	case CubicKind:
		return seg.Cubic().Deriv2(t)
	case ArcKind:
		return seg.Arc.Deriv2(t)
	default:
		return Vec2{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	case ArcKind:
		return seg.Arc.Arclen(accuracy)
	default:
		return 0
	}
}

func (seg Segment) ArclenRange(t0, t1, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().ArclenRange(t0, t1, accuracy)
	case QuadKind:
		return seg.Quad().ArclenRange(t0, t1, accuracy)
	case CubicKind:
		return seg.Cubic().ArclenRange(t0, t1, accuracy)
	case ArcKind:
		return seg.Arc.ArclenRange(t0, t1, accuracy)
	default:
		return 0
	}
}

func (seg Segment) SolveForArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SolveForArclen(arclen, accuracy)
	case QuadKind:
		return seg.Quad().SolveForArclen(arclen, accuracy)
	case CubicKind:
		return seg.Cubic().SolveForArclen(arclen, accuracy)
	case ArcKind:
		return seg.Arc.SolveForArclen(arclen, accuracy)
	default:
		return 0
	}
}

// ControlPoints returns the points that define the segment: the control
// points of lines and Béziers, and the endpoints of arcs.
func (seg Segment) ControlPoints() []Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return nil
	}
}

func (seg Segment) String() string {
	if seg.Kind == ArcKind {
		return fmt.Sprintf("arc %s→%s r=%s", seg.P0, seg.P1, seg.Arc.Radii)
	}
	return fmt.Sprintf("%s %v", seg.Kind, seg.ControlPoints())
}
