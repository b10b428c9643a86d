// SPDX-License-Identifier: MIT

package astar

import (
	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/internal/heapq"
	"github.com/katalvlaran/advent/point"
)

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal point.Point) int64

// Manhattan is the admissible heuristic for 4-connected unit-cost grids.
func Manhattan(p, goal point.Point) int64 { return int64(point.Manhattan(p, goal)) }

// Chebyshev is the admissible heuristic for 8-connected unit-cost grids.
func Chebyshev(p, goal point.Point) int64 { return int64(point.Chebyshev(p, goal)) }

// Zero turns A* into Dijkstra.
func Zero(point.Point, point.Point) int64 { return 0 }

type options struct {
	heuristic Heuristic
}

// Option configures Grid.
type Option func(*options)

// WithHeuristic replaces the degree-based default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// Search finds the cheapest path from start to the first vertex satisfying
// isGoal, expanding vertices in order of cost-so-far plus h. It returns the
// total cost, the path (start and goal inclusive), and false if no goal is
// reachable. h must be admissible for the cost to be optimal.
func Search[N comparable](start N, steps func(N) []core.Step[N], h func(N) int64, isGoal func(N) bool) (cost int64, path []N, ok bool) {
	g := map[N]int64{start: 0}
	prev := map[N]N{}
	closed := map[N]bool{}
	var open heapq.Queue[N]
	open.Push(start, h(start))
	for open.Len() > 0 {
		u, _ := open.Pop()
		if closed[u] {
			continue
		}
		closed[u] = true
		if isGoal(u) {
			return g[u], unwind(prev, u), true
		}
		for _, s := range steps(u) {
			ng := g[u] + s.Cost
			if old, seen := g[s.To]; seen && ng >= old {
				continue
			}
			g[s.To] = ng
			prev[s.To] = u
			open.Push(s.To, ng+h(s.To))
		}
	}
	return 0, nil, false
}

// Grid finds the cheapest path between two cells of g. passable selects
// vertex cells (nil accepts all set cells), cost prices each move (nil is
// unit cost) and degree is 4 or 8.
func Grid[T any](g grid.Grid[T], passable gridgraph.Passable[T], cost gridgraph.Cost[T], start, goal point.Point, degree int, opts ...Option) (int64, []point.Point, bool) {
	steps, err := gridgraph.Steps(g, passable, cost, degree)
	if err != nil {
		return 0, nil, false
	}
	o := options{heuristic: Manhattan}
	if degree == grid.Degree8 {
		o.heuristic = Chebyshev
	}
	for _, opt := range opts {
		opt(&o)
	}
	h := func(p point.Point) int64 { return o.heuristic(p, goal) }
	return Search(start, steps, h, func(p point.Point) bool { return p == goal })
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
