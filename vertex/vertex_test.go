package vertex

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestDist(t *testing.T) {
	vs := []Vertex{{0, 0}, {3, 4}, {-1.5, 2.25}, {1e6, -1e-6}}
	for _, a := range vs {
		if d := Dist(a, a); d != 0 {
			t.Errorf("Dist(%v, %v) = %g, want 0", a, a, d)
		}
		for _, b := range vs {
			if Dist(a, b) != Dist(b, a) {
				t.Errorf("Dist(%v, %v) != Dist(%v, %v)", a, b, b, a)
			}
		}
	}
	if d := Dist(Vertex{0, 0}, Vertex{3, 4}); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestCheck(t *testing.T) {
	vs := []Vertex{{0, 0}, {1, 0}, {2.05, 0}, {3.5, 0}, {3.5, 1}}
	r := Check(vs, 1)
	diff(t, []float64{0, 0.05, 0.45, 0}, r.RelErrors, cmpopts.EquateApprox(0, 1e-12))
	diff(t, []Outlier{{Index: 3, Vertex: Vertex{3.5, 0}, RelError: 0.45}}, r.Outliers, cmpopts.EquateApprox(0, 1e-12))
	if m := r.MeanRelError(); math.Abs(m-0.125) > 1e-12 {
		t.Errorf("got mean %g, want 0.125", m)
	}
}

func TestCheckEmpty(t *testing.T) {
	for _, vs := range [][]Vertex{nil, {{1, 1}}} {
		r := Check(vs, 1)
		if len(r.RelErrors) != 0 || len(r.Outliers) != 0 {
			t.Errorf("unexpected report %+v", r)
		}
		if m := r.MeanRelError(); m != 0 {
			t.Errorf("got mean %g, want 0", m)
		}
	}
}

func TestReportMerge(t *testing.T) {
	a := Check([]Vertex{{0, 0}, {1, 0}, {3, 0}}, 1)
	b := Check([]Vertex{{0, 5}, {0, 7}}, 1)
	var r Report
	r.Merge(a, 0)
	r.Merge(b, 3)
	diff(t, 1.0, r.Ds)
	diff(t, []float64{0, 1, 1}, r.RelErrors)
	diff(t, []int{2, 4}, []int{r.Outliers[0].Index, r.Outliers[1].Index})
}

func TestReportLog(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	r := Check([]Vertex{{0, 0}, {1, 0}, {3, 0}}, 1)
	r.LogOutliers(l, "path", "outline")
	r.LogSummary(l)

	out := buf.String()
	for _, want := range []string{
		"level=WARN",
		"path=outline",
		"index=2",
		"error_pct=100",
		"mean_error_pct=50",
		"outliers=1",
		"see the log file",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output does not contain %q:\n%s", want, out)
		}
	}
}

func TestWriteRead(t *testing.T) {
	vs := []Vertex{{0, 0}, {0.1, 299.5}, {-1e-7, 1.0 / 3.0}, {123456.789, 2}}
	var buf bytes.Buffer
	if err := Write(&buf, vs); err != nil {
		t.Fatal(err)
	}
	want := "4\n0 0\n0.1 299.5\n-1e-07 0.3333333333333333\n123456.789 2\n"
	diff(t, want, buf.String())

	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, vs, got)
}

func TestReadErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"x\n",
		"2\n0 0\n",
		"1\n0 0\n1 1\n",
		"1\n0\n",
		"1\n0 y\n",
		"-1\n",
	} {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}

	got, err := Read(strings.NewReader("\n2\n\n1 2\n  3\t4  \n\n"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Vertex{{1, 2}, {3, 4}}, got)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "body.vertex")
	vs := []Vertex{{1, 2}, {3, 4}}
	if err := WriteFile(name, vs); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, vs, got)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the vertex file, found %d entries", len(entries))
	}

	if err := WriteFile(filepath.Join(dir, "missing", "body.vertex"), vs); err == nil {
		t.Error("expected error for missing directory")
	}
}
