package curve

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// This is the same order in which the SVG matrix(a b c d e f) transform lists
// its arguments. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. In the y-down coordinate system of
// SVG this is a clockwise rotation, matching the rotate() transform.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
//
// See [Rotate] for more info.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(Rotate(th)).Mul(Translate(c.Negate()))
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters are the skew factors, the tangents of the skew
// angles, for the horizontal and vertical directions, respectively.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// Matrix returns the transform as a 3×3 homogeneous matrix in row-major
// order.
func (aff Affine) Matrix() [3][3]float64 {
	return [3][3]float64{
		{aff.N0, aff.N2, aff.N4},
		{aff.N1, aff.N3, aff.N5},
		{0, 0, 1},
	}
}

// Mul returns aff * o, the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// Determinant computes the determinant. A negative determinant means the
// transform mirrors.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// svd computes the singular values and the angle of the left singular vector
// of the linear part of aff. Applied to the unit circle, these are the radii
// and the rotation of the resulting ellipse.
func (aff Affine) svd() (scale Vec2, th float64) {
	co := aff.Coefficients()
	a, b, c, d := co[0], co[1], co[2], co[3]
	a2, b2, c2, d2 := a*a, b*b, c*c, d*d
	ab, cd := a*b, c*d
	th = 0.5 * math.Atan2(2*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Hypot(a2-b2+c2-d2, 2*(ab+cd))
	return Vec2{
		X: math.Sqrt(0.5 * (s1 + s2)),
		// roundoff can push s1-s2 below zero for degenerate transforms
		Y: math.Sqrt(max(0, 0.5*(s1-s2))),
	}, th
}
