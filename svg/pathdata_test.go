package svg

import (
	"math"
	"testing"

	"github.com/tdewolff/test"

	"github.com/meshmerizeme/meshmerize/curve"
)

func TestParsePathData(t *testing.T) {
	var tests = []struct {
		d      string
		kinds  []curve.SegmentKind
		end    curve.Point
		closed bool
	}{
		{"M0 0L10 0", []curve.SegmentKind{curve.LineKind}, curve.Pt(10, 0), false},
		{"M0 0 10 0 10 10", []curve.SegmentKind{curve.LineKind, curve.LineKind}, curve.Pt(10, 10), false},
		{"m1 1 l9 0 0 9", []curve.SegmentKind{curve.LineKind, curve.LineKind}, curve.Pt(10, 10), false},
		{"M0 0H10V10h-10z", []curve.SegmentKind{curve.LineKind, curve.LineKind, curve.LineKind, curve.LineKind}, curve.Pt(0, 0), true},
		{"M0,0 L10,0 L10,10 L0,10 L0,0 Z", []curve.SegmentKind{curve.LineKind, curve.LineKind, curve.LineKind, curve.LineKind}, curve.Pt(0, 0), true},
		{"M0 0C0 10 10 10 10 0", []curve.SegmentKind{curve.CubicKind}, curve.Pt(10, 0), false},
		{"M0 0c0 10 10 10 10 0s10-10 10 0", []curve.SegmentKind{curve.CubicKind, curve.CubicKind}, curve.Pt(20, 0), false},
		{"M0 0Q5 10 10 0T20 0", []curve.SegmentKind{curve.QuadKind, curve.QuadKind}, curve.Pt(20, 0), false},
		{"M0 0A5 5 0 0 1 10 0", []curve.SegmentKind{curve.ArcKind}, curve.Pt(10, 0), false},
		{"M0 0a5 5 0 1010 0", []curve.SegmentKind{curve.ArcKind}, curve.Pt(10, 0), false},
		{"M0 0A0 5 0 0 1 10 0", []curve.SegmentKind{curve.LineKind}, curve.Pt(10, 0), false},
		{"M0 0L0 0L5 0", []curve.SegmentKind{curve.LineKind}, curve.Pt(5, 0), false},
		{"M0 0L5 0M10 10L20 10", []curve.SegmentKind{curve.LineKind, curve.LineKind}, curve.Pt(20, 10), false},
		{"M0 0L5 0M10 10L20 10Z", []curve.SegmentKind{curve.LineKind, curve.LineKind, curve.LineKind}, curve.Pt(10, 10), false},
		{"M-1.5e1 .5l.5-.5", []curve.SegmentKind{curve.LineKind}, curve.Pt(-14.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			p, err := ParsePathData(tt.d)
			test.Error(t, err)
			segs := p.Segments()
			kinds := make([]curve.SegmentKind, len(segs))
			for i, seg := range segs {
				kinds[i] = seg.Kind
			}
			test.T(t, kinds, tt.kinds)
			test.T(t, segs[len(segs)-1].End(), tt.end)
			test.T(t, p.Closed(), tt.closed)
		})
	}
}

func TestParsePathDataSmooth(t *testing.T) {
	p, err := ParsePathData("M0 0C0 10 10 10 10 0S20-10 20 0")
	test.Error(t, err)
	s := p.Segments()[1].Cubic()
	test.T(t, s.P1, curve.Pt(10, -10))

	p, err = ParsePathData("M0 0Q5 10 10 0T20 0")
	test.Error(t, err)
	q := p.Segments()[1].Quad()
	test.T(t, q.P1, curve.Pt(15, -10))

	// without a preceding curve the control point is the current point
	p, err = ParsePathData("M0 0L5 0S10 5 15 0")
	test.Error(t, err)
	test.T(t, p.Segments()[1].Cubic().P1, curve.Pt(5, 0))
}

func TestParsePathDataArc(t *testing.T) {
	p, err := ParsePathData("M10 0A10 10 0 0 1 0 10")
	test.Error(t, err)
	a := p.Segments()[0].Arc
	test.T(t, a.Eval(0), curve.Pt(10, 0))
	end := a.Eval(1)
	test.That(t, end.Distance(curve.Pt(0, 10)) < 1e-12, end)
	test.That(t, a.Center().Distance(curve.Pt(0, 0)) < 1e-12, a.Center())
	test.That(t, math.Abs(p.Arclen(curve.DefaultAccuracy)-5*math.Pi) < 1e-9)

	// rotation is given in degrees
	p, err = ParsePathData("M0 0A10 5 90 0 1 0 10")
	test.Error(t, err)
	test.Float(t, p.Segments()[0].Arc.XRotation, math.Pi/2)
}

func TestParsePathDataErrors(t *testing.T) {
	var tests = []string{
		"L10 10",
		"10 10",
		"M0",
		"M0 0L10",
		"M0 0X10 10",
		"M0 0Z10 10",
		"M0 0A5 5 0 2 1 10 10",
		"M0 0C1 1 2 2",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePathData(tt)
			test.That(t, err != nil, "expected error")
		})
	}
}

func TestParsePathDataEmpty(t *testing.T) {
	p, err := ParsePathData("  ")
	test.Error(t, err)
	test.T(t, p.Len(), 0)

	p, err = ParsePathData("M5 5")
	test.Error(t, err)
	test.T(t, p.Len(), 0)
}
