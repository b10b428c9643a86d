// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/internal/heapq"
	"github.com/katalvlaran/advent/point"
)

// Search finds the cheapest path from start to the first vertex satisfying
// isGoal in the implicit graph defined by steps. It returns the total cost,
// the path (start and goal inclusive), and false if no goal is reachable.
//
// Complexity: O((V + E) log V) over the explored subgraph.
func Search[N comparable](start N, steps func(N) []core.Step[N], isGoal func(N) bool) (cost int64, path []N, ok bool) {
	dist := map[N]int64{start: 0}
	prev := map[N]N{}
	done := map[N]bool{}
	var pq heapq.Queue[N]
	pq.Push(start, 0)
	for pq.Len() > 0 {
		u, d := pq.Pop()
		if done[u] {
			continue
		}
		done[u] = true
		if isGoal(u) {
			return d, unwind(prev, u), true
		}
		for _, s := range steps(u) {
			nd := d + s.Cost
			if old, seen := dist[s.To]; seen && nd >= old {
				continue
			}
			dist[s.To] = nd
			prev[s.To] = u
			pq.Push(s.To, nd)
		}
	}
	return 0, nil, false
}

// Distances returns the cheapest cost from start to every reachable vertex.
func Distances[N comparable](start N, steps func(N) []core.Step[N]) map[N]int64 {
	dist := map[N]int64{start: 0}
	done := map[N]bool{}
	var pq heapq.Queue[N]
	pq.Push(start, 0)
	for pq.Len() > 0 {
		u, d := pq.Pop()
		if done[u] {
			continue
		}
		done[u] = true
		for _, s := range steps(u) {
			nd := d + s.Cost
			if old, seen := dist[s.To]; !seen || nd < old {
				dist[s.To] = nd
				pq.Push(s.To, nd)
			}
		}
	}
	return dist
}

// ShortestPath is Search from→to over g's edges.
func ShortestPath[N comparable](g *core.Graph[N], from, to N) (int64, []N, bool) {
	if !g.HasVertex(from) {
		return 0, nil, false
	}
	return Search(from, g.Steps, func(n N) bool { return n == to })
}

// Grid finds the cheapest path between two cells of g. passable selects
// vertex cells (nil accepts all set cells), cost prices each move (nil is
// unit cost) and degree is 4 or 8.
func Grid[T any](g grid.Grid[T], passable gridgraph.Passable[T], cost gridgraph.Cost[T], start, goal point.Point, degree int) (int64, []point.Point, bool) {
	steps, err := gridgraph.Steps(g, passable, cost, degree)
	if err != nil {
		return 0, nil, false
	}
	return Search(start, steps, func(p point.Point) bool { return p == goal })
}

func unwind[N comparable](prev map[N]N, dest N) []N {
	path := []N{dest}
	for cur := dest; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
