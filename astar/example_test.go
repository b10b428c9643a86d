package astar_test

import (
	"fmt"

	"github.com/katalvlaran/advent/astar"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/point"
)

// ExampleGrid routes around a wall.
func ExampleGrid() {
	g, _ := grid.DenseFromLines([]string{
		"S.#..",
		"..#..",
		"....G",
	}, func(r rune) rune { return r })
	cost, path, ok := astar.Grid[rune](g, gridgraph.NotEquals('#'), nil, point.Point{}, point.Point{X: 4, Y: 2}, grid.Degree4)
	fmt.Println(cost, len(path), ok)
	// Output:
	// 6 7 true
}
