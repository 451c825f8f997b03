package svg

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/meshmerizeme/meshmerize/curve"
)

// ErrNoSpace is returned when the root element has neither a viewBox nor a
// width or height.
var ErrNoSpace = errors.New("svg: no viewBox, width or height on svg tag")

// Space is the rectangle in which the paths of a document are defined.
type Space struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the space as a rectangle.
func (s Space) Rect() curve.Rect {
	return curve.NewRectFromOrigin(curve.Pt(s.X, s.Y), s.Width, s.Height)
}

func (s Space) String() string {
	return fmt.Sprintf("%g %g %g %g", s.X, s.Y, s.Width, s.Height)
}

// resolveSpace finds the space of the root element. A viewBox takes
// precedence. Otherwise the space starts at the origin and has the root's width
// and height; if only one of them is given, the space is square.
func resolveSpace(attrs map[string]string) (Space, error) {
	var s Space
	if v, ok := attrs["viewBox"]; ok {
		vals, err := parseNumbers(v)
		if err != nil {
			return Space{}, fmt.Errorf("svg: bad viewBox: %w", err)
		} else if len(vals) != 4 {
			return Space{}, fmt.Errorf("svg: bad viewBox: expected 4 numbers, got %d", len(vals))
		}
		s = Space{vals[0], vals[1], vals[2], vals[3]}
	} else {
		w, hasW := attrs["width"]
		h, hasH := attrs["height"]
		if !hasW && !hasH {
			return Space{}, ErrNoSpace
		}
		var err error
		if hasW {
			if s.Width, err = parseDimension(w); err != nil {
				return Space{}, err
			}
		}
		if hasH {
			if s.Height, err = parseDimension(h); err != nil {
				return Space{}, err
			}
		}
		if !hasW {
			s.Width = s.Height
		} else if !hasH {
			s.Height = s.Width
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Space{}, fmt.Errorf("svg: space %v has non-positive size", s)
	}
	return s, nil
}

// parseDimension parses a length with an optional absolute unit, converted to
// user units at 96 dpi.
func parseDimension(v string) (float64, error) {
	b := []byte(strings.TrimSpace(v))
	nn, _ := parse.Dimension(b)
	num, n := strconv.ParseFloat(b[:nn])
	if n == 0 || n != nn {
		return 0, fmt.Errorf("svg: bad dimension %q", v)
	}
	switch strings.ToLower(string(b[nn:])) {
	case "cm":
		return num * 10.0 * 96.0 / 25.4, nil
	case "mm":
		return num * 96.0 / 25.4, nil
	case "q":
		return num * 0.25 * 96.0 / 25.4, nil
	case "in":
		return num * 96.0, nil
	case "pc":
		return num * 96.0 / 6.0, nil
	case "pt":
		return num * 96.0 / 72.0, nil
	case "", "px":
		return num, nil
	}
	return 0, fmt.Errorf("svg: unknown unit in dimension %q", v)
}

// parseNumbers parses a list of numbers separated by whitespace and/or commas.
func parseNumbers(v string) ([]float64, error) {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	vals := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, n := strconv.ParseFloat([]byte(field))
		if n == 0 || n != len(field) {
			return nil, fmt.Errorf("bad number %q", field)
		}
		vals = append(vals, f)
	}
	return vals, nil
}
