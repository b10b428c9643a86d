package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/core"
)

// ExampleBFS finds the fewest-hop path in a network with two competing
// routes from "A" to "K".
func ExampleBFS() {
	g := core.NewGraph[string]()
	// Route1: A–B–C–D–K (4 hops)
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("C", "D", 0)
	_ = g.AddEdge("D", "K", 0)
	// Route2: A–E–F–K (3 hops)
	_ = g.AddEdge("A", "E", 0)
	_ = g.AddEdge("E", "F", 0)
	_ = g.AddEdge("F", "K", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleSearch solves a tiny state-space puzzle without building a graph.
func ExampleSearch() {
	next := func(x int) []int { return []int{x + 3, x - 1} }
	path, ok := bfs.Search(0, next, func(x int) bool { return x == 5 })
	fmt.Println(path, ok)
	// Output:
	// [0 3 6 5] true
}
