// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/advent/core"

// StronglyConnected returns the strongly connected components of g using
// Kosaraju's algorithm. Components are listed in topological order of the
// condensation (a component precedes every component it has edges into);
// within a component, vertices appear in discovery order. For an undirected
// graph the result equals ConnectedComponents.
//
// Both passes use explicit stacks.
// Complexity: O(V + E) time, O(V + E) memory (the reversed graph).
func StronglyConnected[N comparable](g *core.Graph[N]) [][]N {
	if g == nil {
		return nil
	}
	order := postOrder(g)
	rev := g.Reverse()
	seen := make(map[N]bool, len(order))
	var comps [][]N
	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []N{root}
		stack := []N{root}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range rev.Successors(u) {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
					stack = append(stack, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// postOrder returns every vertex of g in DFS finish order, iteratively.
func postOrder[N comparable](g *core.Graph[N]) []N {
	type frame struct {
		n    N
		next []N
	}
	seen := make(map[N]bool, g.VertexCount())
	order := make([]N, 0, g.VertexCount())
	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		seen[root] = true
		stack := []frame{{n: root, next: g.Successors(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				order = append(order, top.n)
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.next[0]
			top.next = top.next[1:]
			if !seen[v] {
				seen[v] = true
				stack = append(stack, frame{n: v, next: g.Successors(v)})
			}
		}
	}
	return order
}

// ConnectedComponents returns the components of g with edge direction
// ignored, ordered by their first vertex in insertion order.
func ConnectedComponents[N comparable](g *core.Graph[N]) [][]N {
	if g == nil {
		return nil
	}
	if g.Directed() {
		g = g.Symmetric()
	}
	seen := make(map[N]bool, g.VertexCount())
	var comps [][]N
	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []N{root}
		for i := 0; i < len(comp); i++ {
			for _, v := range g.Successors(comp[i]) {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
