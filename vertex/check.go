package vertex

import (
	"log/slog"
	"math"
)

// Tolerance is the relative spacing error above which a vertex is reported as
// an outlier.
const Tolerance = 0.10

// Outlier is a vertex whose distance to its predecessor deviates from the
// target spacing by more than [Tolerance].
type Outlier struct {
	Index    int
	Vertex   Vertex
	RelError float64
}

// Report is the result of checking the spacing of a vertex set.
type Report struct {
	Ds float64
	// RelErrors holds |d - ds| / ds for every pair of consecutive vertices.
	RelErrors []float64
	Outliers  []Outlier
}

// Check measures the distances between consecutive vertices against ds.
func Check(vs []Vertex, ds float64) Report {
	r := Report{Ds: ds}
	for i := 1; i < len(vs); i++ {
		rel := math.Abs((Dist(vs[i], vs[i-1]) - ds) / ds)
		r.RelErrors = append(r.RelErrors, rel)
		if rel > Tolerance {
			r.Outliers = append(r.Outliers, Outlier{Index: i, Vertex: vs[i], RelError: rel})
		}
	}
	return r
}

// Merge appends the errors and outliers of o, whose vertices start at offset
// in the combined vertex set.
func (r *Report) Merge(o Report, offset int) {
	if r.Ds == 0 {
		r.Ds = o.Ds
	}
	r.RelErrors = append(r.RelErrors, o.RelErrors...)
	for _, out := range o.Outliers {
		out.Index += offset
		r.Outliers = append(r.Outliers, out)
	}
}

// MeanRelError returns the mean relative error, or 0 if there are no pairs.
func (r Report) MeanRelError() float64 {
	if len(r.RelErrors) == 0 {
		return 0
	}
	var sum float64
	for _, e := range r.RelErrors {
		sum += e
	}
	return sum / float64(len(r.RelErrors))
}

// LogOutliers logs a warning for every outlier. Args are added to every
// record, typically to identify the path.
func (r Report) LogOutliers(l *slog.Logger, args ...any) {
	l = l.With(args...)
	for _, o := range r.Outliers {
		l.Warn("spacing exceeds tolerance",
			"index", o.Index,
			"vertex", o.Vertex,
			"error_pct", 100*o.RelError)
	}
}

// LogSummary logs the mean relative error, and a hint if there were
// outliers.
func (r Report) LogSummary(l *slog.Logger) {
	l.Info("spacing summary",
		"pairs", len(r.RelErrors),
		"mean_error_pct", 100*r.MeanRelError(),
		"outliers", len(r.Outliers))
	if len(r.Outliers) > 0 {
		l.Info("some points have spacing beyond the error tolerance, see the log file for details",
			"tolerance_pct", 100*Tolerance)
	}
}
