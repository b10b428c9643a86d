// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/advent/core"

// LongestPath returns the heaviest simple path from→to in g (no vertex
// repeated) and its total weight, and false if to is unreachable.
//
// The search is exhaustive backtracking, exponential in the worst case.
// Contract long corridors into weighted edges first.
func LongestPath[N comparable](g *core.Graph[N], from, to N) (int64, []N, bool) {
	if g == nil || !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, nil, false
	}
	var (
		best     int64
		bestPath []N
		found    bool
		onPath   = map[N]bool{from: true}
		path     = []N{from}
	)
	var walk func(u N, cost int64)
	walk = func(u N, cost int64) {
		if u == to {
			if !found || cost > best {
				best, found = cost, true
				bestPath = append(bestPath[:0], path...)
			}
			return
		}
		nbrs, _ := g.Neighbors(u)
		for _, e := range nbrs {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			path = append(path, e.To)
			walk(e.To, cost+e.Weight)
			path = path[:len(path)-1]
			onPath[e.To] = false
		}
	}
	walk(from, 0)
	return best, bestPath, found
}
