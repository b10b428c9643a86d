package core_test

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// Undirected by default; AddEdge auto-adds vertices.
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 1)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	fmt.Println("Steps from B:", g.Steps("B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// Steps from B: [{A 4} {C 1}]
}
