// Package input2d reads the simulation parameters of an IB2d input2d file.
package input2d

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ErrMissingKey is returned when a required parameter is absent.
var ErrMissingKey = errors.New("input2d: missing key")

// Params are the parameters needed to place geometry in the simulation
// domain.
type Params struct {
	// Nx and Ny are the number of Eulerian grid points in each direction.
	Nx, Ny int
	// Lx and Ly are the size of the domain.
	Lx, Ly float64
	// Name is the base name of the structure files.
	Name string
	// Ds is the ideal distance between Lagrangian points, half the grid
	// spacing.
	Ds float64
	// Extra holds the raw values of all other keys.
	Extra map[string]string
}

// Parse reads parameters from r. Only lines that start with a letter and
// contain '=' are considered; the key is their first field and the value
// their third. Nx, Lx and string_name are required. Ly and Ny default to Lx
// and Nx.
func Parse(r io.Reader) (*Params, error) {
	vals := map[string]string{}
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if text == "" || !unicode.IsLetter(rune(text[0])) || !strings.Contains(text, "=") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, fmt.Errorf("input2d: line %d: expected \"key = value\", got %q", line, text)
		}
		vals[fields[0]] = fields[2]
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	p := &Params{Extra: map[string]string{}}
	for _, key := range []string{"Nx", "Lx", "string_name"} {
		if _, ok := vals[key]; !ok {
			return nil, fmt.Errorf("%w %s", ErrMissingKey, key)
		}
	}
	var err error
	if p.Nx, err = parseInt("Nx", vals["Nx"]); err != nil {
		return nil, err
	}
	if p.Lx, err = parseFloat("Lx", vals["Lx"]); err != nil {
		return nil, err
	}
	p.Ny, p.Ly = p.Nx, p.Lx
	if v, ok := vals["Ny"]; ok {
		if p.Ny, err = parseInt("Ny", v); err != nil {
			return nil, err
		}
	}
	if v, ok := vals["Ly"]; ok {
		if p.Ly, err = parseFloat("Ly", v); err != nil {
			return nil, err
		}
	}
	p.Name = strings.Trim(vals["string_name"], `"'`)
	if p.Name == "" {
		return nil, fmt.Errorf("input2d: empty string_name")
	}
	if p.Nx <= 0 || p.Ny <= 0 {
		return nil, fmt.Errorf("input2d: grid size must be positive, got %d x %d", p.Nx, p.Ny)
	}
	if !(p.Lx > 0) || !(p.Ly > 0) {
		return nil, fmt.Errorf("input2d: domain size must be positive, got %g x %g", p.Lx, p.Ly)
	}
	p.Ds = 0.5 * p.Lx / float64(p.Nx)

	for k, v := range vals {
		switch k {
		case "Nx", "Ny", "Lx", "Ly", "string_name":
		default:
			p.Extra[k] = v
		}
	}
	return p, nil
}

// ParseFile reads parameters from the named file.
func ParseFile(name string) (*Params, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func parseFloat(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("input2d: bad %s %q", key, v)
	}
	return f, nil
}

// parseInt accepts integral floats such as "64.0", as written by some input
// generators.
func parseInt(key, v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := parseFloat(key, v)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("input2d: %s must be an integer, got %q", key, v)
	}
	return int(f), nil
}
