package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/dijkstra"
)

// ExampleDijkstra computes distances and predecessors from "A".
func ExampleDijkstra() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 7)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("C", "B", 3)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Distance to B: %d, parent: %s\n", dist["B"], prev["B"])
	// Output:
	// Distance to B: 5, parent: C
}
