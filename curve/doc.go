// Package curve provides the 2D geometry used to discretize vector paths:
// points, vectors, affine transformations, and the segments that make up an
// SVG path.
//
// # Segments and paths
//
// A [Segment] is a tagged union over the four kinds of path segments found in
// SVG path data: [Line], [QuadBez], [CubicBez], and the endpoint parametrized
// elliptical [Arc]. Every segment is parametrized by t ∈ [0, 1] and can be
// evaluated, differentiated up to the second order, measured, and transformed.
//
// A [Path] is an ordered sequence of segments. Paths use a global parameter
// T ∈ [0, 1] in which every segment occupies a share proportional to its arc
// length, so the speed along a path changes little across segment
// boundaries.
//
// Both segments and paths implement [Curve].
//
// # Transformations
//
// [Affine] describes an affine transformation in the form used by the SVG
// transform attribute. Transforming a path maps the control points of Béziers
// and the endpoints of arcs as points, and the radii of arcs as vectors.
package curve
