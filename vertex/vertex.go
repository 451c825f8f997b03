// Package vertex holds the points of an immersed boundary, checks their
// spacing and reads and writes them as .vertex files.
package vertex

import (
	"fmt"
	"math"
)

// Vertex is a point of the boundary in simulation coordinates.
type Vertex struct {
	X, Y float64
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vertex) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
