package meshgraph_test

import (
	"fmt"

	"github.com/katalvlaran/femtopo/meshgraph"
)

// Graph stores vertices and edges under strongly-typed ids, cascading
// edge removal when an incident vertex is erased.
func ExampleGraph() {
	g := meshgraph.New[string, float64]()
	_, _ = g.InsertVertex(meshgraph.Vertex[string]{ID: 0, Payload: "a"}, false)
	_, _ = g.InsertVertex(meshgraph.Vertex[string]{ID: 1, Payload: "b"}, false)
	_, _ = g.InsertEdge(meshgraph.Edge[float64]{ID: 0, Source: 0, Target: 1, Payload: 1.5}, false)

	fmt.Println(g.Order(), g.Size())

	g.EraseVertex(0)
	fmt.Println(g.Order(), g.Size())
	// Output:
	// 2 1
	// 1 0
}
