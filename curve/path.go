package curve

import (
	"sort"
)

// Path is an ordered sequence of segments, parametrized by a global T ∈ [0, 1].
//
// Every segment occupies a share of [0, 1] proportional to its arc length, and
// within that share T maps linearly onto the segment's own parameter. Paths
// are immutable; create them with [NewPath].
type Path struct {
	segs   []Segment
	ends   []float64 // cumulative arc length at the end of each segment
	closed bool
}

// NewPath returns a path consisting of segs. Closed records whether the path
// data closed the path, in which case the end of the last segment coincides
// with the start of the first.
func NewPath(segs []Segment, closed bool) Path {
	p := Path{
		segs:   segs,
		ends:   make([]float64, len(segs)),
		closed: closed,
	}
	var sum float64
	for i, seg := range segs {
		sum += seg.Arclen(DefaultAccuracy)
		p.ends[i] = sum
	}
	return p
}

// Segments returns the path's segments. The slice must not be modified.
func (p Path) Segments() []Segment { return p.segs }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// Closed reports whether the path is closed.
func (p Path) Closed() bool { return p.closed }

// Arclen returns the length of the path. The length is computed once, with
// [DefaultAccuracy], when the path is created.
func (p Path) Arclen(accuracy float64) float64 {
	if len(p.ends) == 0 {
		return 0
	}
	return p.ends[len(p.ends)-1]
}

// SegmentRange returns the range of the global parameter occupied by
// segment i.
func (p Path) SegmentRange(i int) (T0, T1 float64) {
	total := p.Arclen(DefaultAccuracy)
	if total == 0 {
		n := float64(len(p.segs))
		return float64(i) / n, float64(i+1) / n
	}
	var start float64
	if i > 0 {
		start = p.ends[i-1]
	}
	return start / total, p.ends[i] / total
}

// locate maps the global parameter T to a segment index and that segment's
// parameter.
func (p Path) locate(T float64) (int, float64) {
	n := len(p.segs)
	if T <= 0 {
		return 0, 0
	}
	if T >= 1 {
		return n - 1, 1
	}
	var i int
	if total := p.Arclen(DefaultAccuracy); total == 0 {
		i = int(T * float64(n))
	} else {
		s := T * total
		i = sort.Search(n, func(i int) bool { return p.ends[i] >= s })
	}
	i = min(i, n-1)
	T0, T1 := p.SegmentRange(i)
	if T1 == T0 {
		return i, 0
	}
	return i, (T - T0) / (T1 - T0)
}

func (p Path) Eval(T float64) Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	i, t := p.locate(T)
	return p.segs[i].Eval(t)
}

// Deriv returns the first derivative with respect to the global parameter.
func (p Path) Deriv(T float64) Vec2 {
	if len(p.segs) == 0 {
		return Vec2{}
	}
	i, t := p.locate(T)
	T0, T1 := p.SegmentRange(i)
	return p.segs[i].Deriv(t).Div(T1 - T0)
}

// Deriv2 returns the second derivative with respect to the global parameter.
func (p Path) Deriv2(T float64) Vec2 {
	if len(p.segs) == 0 {
		return Vec2{}
	}
	i, t := p.locate(T)
	T0, T1 := p.SegmentRange(i)
	frac := T1 - T0
	return p.segs[i].Deriv2(t).Div(frac * frac)
}

func (p Path) ArclenRange(T0, T1, accuracy float64) float64 {
	if len(p.segs) == 0 {
		return 0
	}
	if T1 < T0 {
		return -p.ArclenRange(T1, T0, accuracy)
	}
	i0, t0 := p.locate(T0)
	i1, t1 := p.locate(T1)
	if i0 == i1 {
		return p.segs[i0].ArclenRange(t0, t1, accuracy)
	}
	sum := p.segs[i0].ArclenRange(t0, 1, accuracy)
	sum += p.ends[i1-1] - p.ends[i0]
	sum += p.segs[i1].ArclenRange(0, t1, accuracy)
	return sum
}

// SolveForArclen returns the global parameter at the given arc length from the
// start of the path.
func (p Path) SolveForArclen(arclen, accuracy float64) float64 {
	total := p.Arclen(accuracy)
	if arclen <= 0 || len(p.segs) == 0 {
		return 0
	}
	if arclen >= total {
		return 1
	}
	i := sort.Search(len(p.ends), func(i int) bool { return p.ends[i] >= arclen })
	i = min(i, len(p.segs)-1)
	var start float64
	if i > 0 {
		start = p.ends[i-1]
	}
	t := p.segs[i].SolveForArclen(arclen-start, accuracy)
	T0, T1 := p.SegmentRange(i)
	return T0 + t*(T1-T0)
}

// Transform returns a new path whose segments are the segments of p mapped
// through aff.
func (p Path) Transform(aff Affine) Path {
	segs := make([]Segment, len(p.segs))
	for i, seg := range p.segs {
		segs[i] = seg.Transform(aff)
	}
	return NewPath(segs, p.closed)
}

// ControlBox returns the smallest rectangle enclosing the control points of
// all segments. For arcs, only the endpoints are considered.
func (p Path) ControlBox() Rect {
	if len(p.segs) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(p.segs[0].P0, p.segs[0].P0)
	for _, seg := range p.segs {
		for _, pt := range seg.ControlPoints() {
			r = r.UnionPoint(pt)
		}
	}
	return r
}
