// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// Steps returns the implicit neighbour function of g: from p it yields every
// set, passable neighbour q (in direction order N, E, S, W, diagonals last
// clockwise) for which cost permits the move. A nil cost means UnitCost.
// The origin cell itself is not tested against passable, so a search may
// start on a marker cell.
// Complexity: O(d) per call.
func Steps[T any](g grid.Grid[T], passable Passable[T], cost Cost[T], degree int) (func(point.Point) []core.Step[point.Point], error) {
	offs, err := offsets(degree)
	if err != nil {
		return nil, err
	}
	if passable == nil {
		passable = All[T]
	}
	if cost == nil {
		cost = UnitCost[T]
	}
	return func(p point.Point) []core.Step[point.Point] {
		fv, ok := g.Get(p)
		if !ok {
			return nil
		}
		out := make([]core.Step[point.Point], 0, len(offs))
		for _, d := range offs {
			q := p.Add(d)
			tv, ok := g.Get(q)
			if !ok || !passable(q, tv) {
				continue
			}
			if c, ok := cost(p, fv, q, tv); ok {
				out = append(out, core.Step[point.Point]{To: q, Cost: c})
			}
		}
		return out
	}, nil
}

// FromGrid converts g into a directed graph: one vertex per passable cell
// (row-major insertion order) and one edge per permitted move between
// passable neighbours.
// Complexity: O(N·d) time, Memory: O(N + E).
func FromGrid[T any](g grid.Grid[T], passable Passable[T], cost Cost[T], degree int) (*core.Graph[point.Point], error) {
	if passable == nil {
		passable = All[T]
	}
	steps, err := Steps(g, passable, cost, degree)
	if err != nil {
		return nil, err
	}
	out := core.NewGraph[point.Point](core.WithDirected(true))
	var verts []point.Point
	for _, p := range g.Points() {
		if v, _ := g.Get(p); passable(p, v) {
			out.AddVertex(p)
			verts = append(verts, p)
		}
	}
	for _, p := range verts {
		for _, s := range steps(p) {
			_ = out.AddEdge(p, s.To, s.Cost)
		}
	}
	return out, nil
}
