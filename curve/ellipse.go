package curve

import "math"

// Ellipse is the image of the unit circle under an affine transformation.
type Ellipse struct {
	inner Affine
}

// NewEllipse creates an ellipse by stretching a unit circle by radii along
// the x and y axes, rotating it by xRotation radians and translating it to
// center.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so the signs of the radii don't
	// matter.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// Transform returns the image of the ellipse under aff.
func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{inner: aff.Mul(e.inner)}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// RadiiRotation returns the radii of the ellipse and the angle of its major
// axis, measured from the x axis. Radii.X is the semi-major axis.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}
