package vertex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Write writes vs in the .vertex format: the number of vertices on the first
// line, followed by one "x y" line per vertex.
func Write(w io.Writer, vs []Vertex) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(len(vs)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, v := range vs {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes vs to the named file. The data is written to a temporary
// file in the same directory first, which is then renamed, so the named file
// is never left partially written.
func WriteFile(name string, vs []Vertex) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = Write(f, vs); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}

// Read reads vertices in the .vertex format. Blank lines are ignored. The
// count on the first line must match the number of vertices that follow.
func Read(r io.Reader) ([]Vertex, error) {
	s := bufio.NewScanner(r)
	var vs []Vertex
	count := -1
	line := 0
	for s.Scan() {
		line++
		fields := bytes.Fields(s.Bytes())
		if len(fields) == 0 {
			continue
		}
		if count == -1 {
			n, err := strconv.Atoi(string(fields[0]))
			if err != nil || n < 0 || len(fields) != 1 {
				return nil, fmt.Errorf("vertex: line %d: bad vertex count %q", line, s.Text())
			}
			count = n
			vs = make([]Vertex, 0, n)
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("vertex: line %d: expected 2 coordinates, got %d", line, len(fields))
		}
		var v Vertex
		for i, dst := range []*float64{&v.X, &v.Y} {
			f, err := strconv.ParseFloat(string(fields[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("vertex: line %d: bad coordinate %q", line, fields[i])
			}
			*dst = f
		}
		vs = append(vs, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if count == -1 {
		return nil, fmt.Errorf("vertex: missing vertex count")
	}
	if len(vs) != count {
		return nil, fmt.Errorf("vertex: expected %d vertices, got %d", count, len(vs))
	}
	return vs, nil
}

// ReadFile reads the named .vertex file.
func ReadFile(name string) ([]Vertex, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vs, nil
}
