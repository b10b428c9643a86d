// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// ConnectedComponents finds all contiguous regions of passable cells under
// the given connectivity. Components are ordered by their first cell in
// row-major order; cells within a component follow BFS discovery order.
//
// Time:   O(N·d), where d = 4 or 8.
// Memory: O(N) for visited flags and output.
func ConnectedComponents[T any](g grid.Grid[T], passable Passable[T], degree int) ([][]point.Point, error) {
	offs, err := offsets(degree)
	if err != nil {
		return nil, err
	}
	if passable == nil {
		passable = All[T]
	}
	ok := func(p point.Point) bool {
		v, set := g.Get(p)
		return set && passable(p, v)
	}
	seen := make(map[point.Point]bool)
	var comps [][]point.Point
	for _, p0 := range g.Points() {
		if seen[p0] || !ok(p0) {
			continue
		}
		seen[p0] = true
		queue := []point.Point{p0}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offs {
				v := u.Add(d)
				if !seen[v] && ok(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps, nil
}
