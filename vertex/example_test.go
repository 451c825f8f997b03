package vertex_test

import (
	"fmt"
	"os"

	"github.com/meshmerizeme/meshmerize/vertex"
)

func ExampleCheck() {
	vs := []vertex.Vertex{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1.2, Y: 0}}
	r := vertex.Check(vs, 0.5)
	for _, o := range r.Outliers {
		fmt.Printf("vertex %d at %v is off by %.0f%%\n", o.Index, o.Vertex, 100*o.RelError)
	}
	// Output:
	// vertex 2 at (1.2, 0) is off by 40%
}

func ExampleWrite() {
	vertex.Write(os.Stdout, []vertex.Vertex{{X: 0, Y: 1.5}, {X: 0.5, Y: 1.5}})
	// Output:
	// 2
	// 0 1.5
	// 0.5 1.5
}
