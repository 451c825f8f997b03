package spacing

import (
	"context"

	"github.com/meshmerizeme/meshmerize/curve"
)

// Heuristic steps along a curve by ds divided by the speed at the current
// point. Where the ratio of the second to the first derivative grows by more
// than a factor of three between steps, it falls back to the previous step
// size, or a third of the proposed step at the start. Where the speed drops
// below half the average speed of the curve, including at cusps and at
// coincident control points, it steps by arc length instead.
//
// Paths are stepped segment by segment, and the last point of every segment
// but the final one is dropped, as it is the first point of the next segment.
// NumPoints, Params and the gradient descent settings of the config are
// ignored.
type Heuristic struct{}

func (Heuristic) Params(ctx context.Context, c curve.Curve, cfg Config) ([]float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p, ok := c.(curve.Path)
	if !ok {
		return stepParams(c, cfg.Ds), nil
	}

	var params []float64
	for i, seg := range p.Segments() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		T0, T1 := p.SegmentRange(i)
		last := i == p.Len()-1
		for _, t := range stepParams(seg, cfg.Ds) {
			if !last && t >= 1-1e-9 {
				continue
			}
			params = append(params, T0+t*(T1-T0))
		}
	}
	return params, nil
}

// minSpeedRatio is the fraction of the average speed below which stepParams
// steps by arc length.
const minSpeedRatio = 0.5

// stepParams returns increasing parameters in [0, 1], starting at 0.
func stepParams(c curve.Curve, ds float64) []float64 {
	ratio := func(t float64) float64 {
		return c.Deriv2(t).Hypot() / c.Deriv(t).Hypot()
	}

	params := []float64{0}
	total := c.Arclen(curve.DefaultAccuracy)
	if total == 0 {
		return params
	}
	// parameters span [0, 1], so the average speed is the length
	minSpeed := minSpeedRatio * total

	p0 := 0.0
	r0 := ratio(p0)
	for p0 < 1 {
		var p1 float64
		if speed := c.Deriv(p0).Hypot(); speed < minSpeed {
			s := c.ArclenRange(0, p0, curve.DefaultAccuracy) + ds
			if s > total {
				break
			}
			p1 = c.SolveForArclen(s, curve.DefaultAccuracy)
		} else {
			p1 = p0 + ds/speed
			if p1 > 1 {
				break
			}
			if r1 := ratio(p1); r0 != 0 && r1/r0 > 3 {
				if n := len(params); n >= 2 {
					p1 = p0 + (params[n-1] - params[n-2])
				} else {
					p1 = p0 + (p1-p0)/3
				}
				if p1 > 1 {
					break
				}
			}
		}
		if p1 <= p0 {
			break
		}
		params = append(params, p1)
		p0, r0 = p1, ratio(p1)
	}
	return params
}
