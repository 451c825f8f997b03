package svg

import (
	"bytes"
	"math"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/meshmerizeme/meshmerize/curve"
)

// ParsePathData parses the value of a path's d attribute. All subpaths are
// concatenated into one path. Segments of zero length are dropped, and closing
// a subpath adds a line back to its start unless the current point is already
// there. The path is closed if its last subpath was closed and starts where the
// path starts.
func ParsePathData(d string) (curve.Path, error) {
	p := pathParser{b: []byte(d)}
	var cmd, last byte
	for {
		p.skip()
		if p.i >= len(p.b) {
			break
		}
		if c := p.b[p.i]; isCommand(c) {
			cmd = c
			p.i++
		} else if 'A' <= c && c <= 'z' {
			return curve.Path{}, p.errorf("unknown command %c", c)
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return curve.Path{}, p.errorf("expected command")
		}
		if !p.started && cmd != 'M' && cmd != 'm' {
			return curve.Path{}, p.errorf("path data must start with a move")
		}
		if err := p.command(cmd, last); err != nil {
			return curve.Path{}, err
		}
		last = cmd
		// coordinates following a move are implicit lines
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
	closed := p.closed && p.start == p.first
	return curve.NewPath(p.segs, closed), nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

type pathParser struct {
	b []byte
	i int

	segs    []curve.Segment
	cur     curve.Point
	start   curve.Point // of the current subpath
	first   curve.Point
	ctrl    curve.Point // last control point, for smooth curves
	started bool
	closed  bool
}

func (p *pathParser) errorf(msg string, a ...any) error {
	return parse.NewError(bytes.NewReader(p.b), p.i, "bad path data: "+msg, a...)
}

func (p *pathParser) skip() {
	for p.i < len(p.b) && (p.b[p.i] == ' ' || p.b[p.i] == ',' || p.b[p.i] == '\n' || p.b[p.i] == '\r' || p.b[p.i] == '\t') {
		p.i++
	}
}

func (p *pathParser) num() (float64, error) {
	p.skip()
	f, n := strconv.ParseFloat(p.b[p.i:])
	if n == 0 {
		return 0, p.errorf("expected number")
	}
	p.i += n
	return f, nil
}

// flag parses an arc flag, which may be written without a separator before
// the next number.
func (p *pathParser) flag() (bool, error) {
	p.skip()
	if p.i < len(p.b) && (p.b[p.i] == '0' || p.b[p.i] == '1') {
		p.i++
		return p.b[p.i-1] == '1', nil
	}
	return false, p.errorf("expected flag")
}

func (p *pathParser) nums(dst []float64) error {
	for i := range dst {
		var err error
		if dst[i], err = p.num(); err != nil {
			return err
		}
	}
	return nil
}

// point parses a coordinate pair, relative to the current point if rel is
// set.
func (p *pathParser) point(rel bool) (curve.Point, error) {
	var v [2]float64
	if err := p.nums(v[:]); err != nil {
		return curve.Point{}, err
	}
	pt := curve.Pt(v[0], v[1])
	if rel {
		pt = pt.Translate(curve.Vec2(p.cur))
	}
	return pt, nil
}

func (p *pathParser) add(seg curve.Segment) {
	for _, pt := range seg.ControlPoints() {
		if pt != seg.P0 {
			p.segs = append(p.segs, seg)
			break
		}
	}
	p.cur = seg.End()
	p.closed = false
}

func (p *pathParser) command(cmd, last byte) error {
	rel := 'a' <= cmd && cmd <= 'z'
	switch cmd {
	case 'M', 'm':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		if !p.started {
			p.first = pt
			p.started = true
		}
		p.cur, p.start = pt, pt
		p.closed = false
	case 'Z', 'z':
		if p.cur != p.start {
			p.add(curve.Line{P0: p.cur, P1: p.start}.Seg())
		}
		p.cur = p.start
		p.closed = true
	case 'L', 'l':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.add(curve.Line{P0: p.cur, P1: pt}.Seg())
	case 'H', 'h':
		x, err := p.num()
		if err != nil {
			return err
		}
		if rel {
			x += p.cur.X
		}
		p.add(curve.Line{P0: p.cur, P1: curve.Pt(x, p.cur.Y)}.Seg())
	case 'V', 'v':
		y, err := p.num()
		if err != nil {
			return err
		}
		if rel {
			y += p.cur.Y
		}
		p.add(curve.Line{P0: p.cur, P1: curve.Pt(p.cur.X, y)}.Seg())
	case 'C', 'c', 'S', 's':
		var pts [3]curve.Point
		first := 0
		if cmd == 'S' || cmd == 's' {
			pts[0] = p.cur
			if last == 'C' || last == 'c' || last == 'S' || last == 's' {
				pts[0] = p.cur.Translate(p.cur.Sub(p.ctrl))
			}
			first = 1
		}
		for i := first; i < 3; i++ {
			var err error
			if pts[i], err = p.point(rel); err != nil {
				return err
			}
		}
		p.ctrl = pts[1]
		p.add(curve.CubicBez{P0: p.cur, P1: pts[0], P2: pts[1], P3: pts[2]}.Seg())
	case 'Q', 'q', 'T', 't':
		var ctrl, end curve.Point
		var err error
		if cmd == 'T' || cmd == 't' {
			ctrl = p.cur
			if last == 'Q' || last == 'q' || last == 'T' || last == 't' {
				ctrl = p.cur.Translate(p.cur.Sub(p.ctrl))
			}
		} else if ctrl, err = p.point(rel); err != nil {
			return err
		}
		if end, err = p.point(rel); err != nil {
			return err
		}
		p.ctrl = ctrl
		p.add(curve.QuadBez{P0: p.cur, P1: ctrl, P2: end}.Seg())
	case 'A', 'a':
		var v [3]float64
		if err := p.nums(v[:]); err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		if v[0] == 0 || v[1] == 0 {
			p.add(curve.Line{P0: p.cur, P1: end}.Seg())
		} else if end != p.cur {
			rot := v[2] * math.Pi / 180.0
			p.add(curve.NewArc(p.cur, end, curve.Vec(v[0], v[1]), rot, large, sweep).Seg())
		}
	}
	return nil
}
