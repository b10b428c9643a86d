// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/point"
)

// Search explores the implicit graph defined by next, starting at start,
// and returns the fewest-edge path to the first vertex satisfying isGoal
// (start included). ok is false if no reachable vertex is a goal.
// Complexity: O(V + E) over the reachable subgraph.
func Search[N comparable](start N, next func(N) []N, isGoal func(N) bool) (path []N, ok bool) {
	parent := map[N]N{}
	seen := map[N]bool{start: true}
	queue := []N{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if isGoal(cur) {
			return unwind(parent, cur), true
		}
		for _, n := range next(cur) {
			if seen[n] {
				continue
			}
			seen[n] = true
			parent[n] = cur
			queue = append(queue, n)
		}
	}
	return nil, false
}

// Flood returns the edge distance from start to every reachable vertex.
func Flood[N comparable](start N, next func(N) []N) map[N]int {
	dist := map[N]int{start: 0}
	queue := []N{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next(cur) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// Grid finds the fewest-step path between two cells of g moving through
// passable cells at the given degree (4 or 8). A nil passable accepts every
// set cell.
func Grid[T any](g grid.Grid[T], passable gridgraph.Passable[T], start, goal point.Point, degree int) ([]point.Point, bool) {
	steps, err := gridgraph.Steps(g, passable, nil, degree)
	if err != nil {
		return nil, false
	}
	next := func(p point.Point) []point.Point {
		ss := steps(p)
		out := make([]point.Point, len(ss))
		for i, s := range ss {
			out[i] = s.To
		}
		return out
	}
	return Search(start, next, func(p point.Point) bool { return p == goal })
}
