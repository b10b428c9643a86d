// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of the graph structure.
// Complexity: O(V+E)
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{
		cfg:   g.cfg,
		order: append([]N(nil), g.order...),
		index: make(map[N]int, len(g.index)),
		adj:   make([][]Edge[N], len(g.adj)),
		edges: append([]Edge[N](nil), g.edges...),
	}
	for n, i := range g.index {
		c.index[n] = i
	}
	for i, list := range g.adj {
		c.adj[i] = append([]Edge[N](nil), list...)
	}
	return c
}

// CloneEmpty returns a graph with the same flags and vertices but no edges.
func (g *Graph[N]) CloneEmpty() *Graph[N] {
	c := &Graph[N]{cfg: g.cfg, index: make(map[N]int, len(g.index))}
	for _, n := range g.order {
		c.ensure(n)
	}
	return c
}

// Reverse returns the transpose: every directed edge u→v becomes v→u.
// For undirected graphs it is a Clone.
// Complexity: O(V+E)
func (g *Graph[N]) Reverse() *Graph[N] {
	if !g.cfg.directed {
		return g.Clone()
	}
	r := g.CloneEmpty()
	for _, e := range g.edges {
		r.addUnchecked(e.To, e.From, e.Weight)
	}
	return r
}

// Symmetric returns an undirected copy. Opposite directed edges collapse
// into one undirected edge keeping the first weight seen, unless the graph
// allows multi-edges.
// Complexity: O(V+E·deg)
func (g *Graph[N]) Symmetric() *Graph[N] {
	s := g.CloneEmpty()
	s.cfg.directed = false
	for _, e := range g.edges {
		_ = s.AddEdge(e.From, e.To, e.Weight)
	}
	return s
}

func (g *Graph[N]) addUnchecked(from, to N, w int64) {
	fi, ti := g.ensure(from), g.ensure(to)
	g.adj[fi] = append(g.adj[fi], Edge[N]{From: from, To: to, Weight: w})
	if !g.cfg.directed && fi != ti {
		g.adj[ti] = append(g.adj[ti], Edge[N]{From: to, To: from, Weight: w})
	}
	g.edges = append(g.edges, Edge[N]{From: from, To: to, Weight: w})
}
