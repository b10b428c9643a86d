package grid_test

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// ExampleSparse_Transpositions counts the distinct orientations of a shape.
func ExampleSparse_Transpositions() {
	g := grid.SparseFromLines([]string{"##", "#."}, func(_ point.Point, r rune) (struct{}, bool) {
		return struct{}{}, r == '#'
	})
	seen := map[string]bool{}
	for _, t := range g.Transpositions() {
		seen[fmt.Sprint(t.Points())] = true
	}
	fmt.Println(len(seen))
	// Output:
	// 4
}
