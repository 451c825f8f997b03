package svg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/meshmerizeme/meshmerize/curve"
)

// ParseTransform parses the value of a transform attribute. Components are
// combined left to right, so the rightmost component is applied to a point
// first. Angles are in degrees.
//
// A component with an unknown name, the wrong number of arguments or a bad
// number contributes the identity. The returned error joins the errors of all
// such components; the matrix is always valid.
func ParseTransform(s string) (curve.Affine, error) {
	m := curve.Identity
	var errs []error
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open == -1 || end < open {
			errs = append(errs, fmt.Errorf("bad transform %q", rest))
			break
		}
		name := strings.TrimSpace(rest[:open])
		args := rest[open+1 : end]
		rest = strings.TrimLeft(rest[end+1:], ", \t\r\n")

		t, err := transformComponent(name, args)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m = m.Mul(t)
	}
	return m, errors.Join(errs...)
}

func transformComponent(name, args string) (curve.Affine, error) {
	d, err := parseNumbers(args)
	if err != nil {
		return curve.Identity, fmt.Errorf("bad transform %s: %w", name, err)
	}
	bad := func() (curve.Affine, error) {
		return curve.Identity, fmt.Errorf("bad transform %s: %d arguments", name, len(d))
	}
	switch name {
	case "matrix":
		if len(d) != 6 {
			return bad()
		}
		return curve.Affine{d[0], d[1], d[2], d[3], d[4], d[5]}, nil
	case "translate":
		if len(d) == 1 {
			return curve.Translate(curve.Vec(d[0], 0)), nil
		} else if len(d) == 2 {
			return curve.Translate(curve.Vec(d[0], d[1])), nil
		}
		return bad()
	case "scale":
		if len(d) == 1 {
			return curve.Scale(d[0], d[0]), nil
		} else if len(d) == 2 {
			return curve.Scale(d[0], d[1]), nil
		}
		return bad()
	case "rotate":
		if len(d) == 1 {
			return curve.Rotate(radians(d[0])), nil
		} else if len(d) == 3 {
			return curve.RotateAbout(radians(d[0]), curve.Pt(d[1], d[2])), nil
		}
		return bad()
	case "skewX":
		if len(d) != 1 {
			return bad()
		}
		return curve.Skew(math.Tan(radians(d[0])), 0), nil
	case "skewY":
		if len(d) != 1 {
			return bad()
		}
		return curve.Skew(0, math.Tan(radians(d[0]))), nil
	}
	return curve.Identity, fmt.Errorf("unknown transform %q", name)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
