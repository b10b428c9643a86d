// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"math"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// Bridge finds a minimum-conversion path of non-land cells connecting any
// cell of component srcComp to any cell of component dstComp, as numbered by
// ConnectedComponents(g, land, degree). Each converted cell costs 1.
// Returns the path (including the start and end land cells) and the number
// of conversions.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a land cell → cost 0
//     • moving into any other set cell → cost 1
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(N·d), Memory: O(N).
func Bridge[T any](g grid.Grid[T], land Passable[T], degree, srcComp, dstComp int) ([]point.Point, int, error) {
	comps, err := ConnectedComponents(g, land, degree)
	if err != nil {
		return nil, 0, err
	}
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	offs, _ := offsets(degree)
	dstSet := make(map[point.Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	dist := make(map[point.Point]int)
	prev := make(map[point.Point]point.Point)
	get := func(p point.Point) int {
		if d, ok := dist[p]; ok {
			return d
		}
		return math.MaxInt
	}

	// 0-1 BFS: cost-0 moves go to the front, cost-1 moves to the back.
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist[p] = 0
		dq.PushFront(p)
	}

	var target point.Point
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(point.Point)
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for _, d := range offs {
			v := u.Add(d)
			val, ok := g.Get(v)
			if !ok {
				continue
			}
			step := 1
			if land(v, val) {
				step = 0
			}
			if nd := dist[u] + step; nd < get(v) {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return nil, 0, ErrNoPath
	}

	path := []point.Point{target}
	for at := target; ; {
		p, ok := prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
