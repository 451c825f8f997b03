package curve

import (
	"math"
)

// DefaultAccuracy is the accuracy used for arc length computations when
// callers have no better value. It is an absolute error in the units of the
// curve's coordinates.
const DefaultAccuracy = 1e-6

// Curve describes a curve parametrized by t ∈ [0, 1] that can be evaluated,
// differentiated and measured. It is implemented by [Segment] and [Path], as
// well as the individual segment types.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Deriv returns the first derivative with respect to t.
	Deriv(t float64) Vec2
	// Deriv2 returns the second derivative with respect to t.
	Deriv2(t float64) Vec2
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
	// ArclenRange returns the length of the curve between t0 and t1. The result
	// is negative if t1 < t0.
	ArclenRange(t0, t1, accuracy float64) float64
	// SolveForArclen returns the parameter that has the given arc length from
	// the start of the curve. Arc lengths outside of [0, Arclen] clamp to 0 and
	// 1.
	SolveForArclen(arclen, accuracy float64) float64
}

var (
	_ Curve = Line{}
	_ Curve = QuadBez{}
	_ Curve = CubicBez{}
	_ Curve = Arc{}
	_ Curve = Segment{}
	_ Curve = Path{}
)

// arclenRanger is the subset of [Curve] needed by solveForArclen.
type arclenRanger interface {
	ArclenRange(t0, t1, accuracy float64) float64
}

// solveForArclen solves for the parameter that has the given arc length from
// the start of the curve, given the curve's total length.
//
// This implementation uses the [ITP method], as provided by [SolveITP]. This
// is as robust as bisection but typically converges faster. In addition, the
// method takes care to compute arc lengths of increasingly smaller ranges of
// the curve, as that is likely faster than repeatedly computing the arc length
// of the range starting at t=0.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveForArclen(c arclenRanger, total, arclen, accuracy float64) float64 {
	if arclen <= 0.0 {
		return 0.0
	}
	if arclen >= total {
		return 1.0
	}
	tLast := 0.0
	arclenLast := 0.0
	epsilon := accuracy / total
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		var rangeStart, rangeEnd, dir float64
		if t > tLast {
			rangeStart = tLast
			rangeEnd = t
			dir = 1.0
		} else {
			rangeStart = t
			rangeEnd = tLast
			dir = -1.0
		}
		arc := c.ArclenRange(rangeStart, rangeEnd, innerAccuracy)
		arclenLast += arc * dir
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, 0.0, 1.0, epsilon, 1, 0.2, -arclen, total-arclen)
}

// SolveITP solves an arbitrary function for a zero-crossing.
//
// This uses the [ITP method], as described in the paper
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as the values may already be known, or they may be less expensive to compute
// as special cases.
//
// It is assumed that ya < 0.0 and yb > 0.0, otherwise unexpected results may
// occur.
//
// The value of epsilon must be larger than 2^-63 times b - a, otherwise integer
// overflow may occur. The a and b parameters represent the lower and upper
// bounds of the bracket searched for a solution.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and because
// this value has been tested to work well with curve fitting problems.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection. A value of 1 gives the secant
// method more of a chance to engage on smooth functions.
//
// The k1 parameter is suggested to be 0.2 / (b - a).
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// integrate approximates the integral of f over [a, b] using Legendre-Gauss
// quadrature on n equal subintervals.
func integrate(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	var sum float64
	for i := range n {
		mid := a + (float64(i)+0.5)*h
		half := 0.5 * h
		for _, coeff := range gaussLegendreCoeffs24Half {
			wi, xi := coeff[0], coeff[1]
			sum += wi * half * (f(mid+half*xi) + f(mid-half*xi))
		}
	}
	return sum
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
