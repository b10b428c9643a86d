// SPDX-License-Identifier: MIT

package core

// AddEdge connects from→to with weight w, adding missing endpoints.
// Undirected graphs also record to→from.
//
// Errors: ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(deg(from))
func (g *Graph[N]) AddEdge(from, to N, w int64) error {
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && g.HasEdge(from, to) {
		return ErrMultiEdgeNotAllowed
	}
	fi := g.ensure(from)
	ti := g.ensure(to)
	e := Edge[N]{From: from, To: to, Weight: w}
	g.adj[fi] = append(g.adj[fi], e)
	if !g.cfg.directed && fi != ti {
		g.adj[ti] = append(g.adj[ti], Edge[N]{From: to, To: from, Weight: w})
	}
	g.edges = append(g.edges, e)
	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(deg(from))
func (g *Graph[N]) HasEdge(from, to N) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the weight of the first edge from→to.
func (g *Graph[N]) Weight(from, to N) (int64, bool) {
	i, ok := g.index[from]
	if !ok {
		return 0, false
	}
	for _, e := range g.adj[i] {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// RemoveEdge deletes the first edge from→to (and its mirror in undirected
// graphs).
// Complexity: O(deg(from) + deg(to) + E)
func (g *Graph[N]) RemoveEdge(from, to N) error {
	fi, ok := g.index[from]
	if !ok {
		return ErrVertexNotFound
	}
	if !removeFirst(&g.adj[fi], to) {
		return ErrEdgeNotFound
	}
	if !g.cfg.directed && from != to {
		removeFirst(&g.adj[g.index[to]], from)
	}
	for k, e := range g.edges {
		if (e.From == from && e.To == to) || (!g.cfg.directed && e.From == to && e.To == from) {
			g.edges = append(g.edges[:k], g.edges[k+1:]...)
			break
		}
	}
	return nil
}

func removeFirst[N comparable](list *[]Edge[N], to N) bool {
	for k, e := range *list {
		if e.To == to {
			*list = append((*list)[:k], (*list)[k+1:]...)
			return true
		}
	}
	return false
}

// Edges returns every edge once, in insertion order.
// Complexity: O(E)
func (g *Graph[N]) Edges() []Edge[N] {
	return append([]Edge[N](nil), g.edges...)
}

// EdgeCount is |E|; undirected edges count once.
func (g *Graph[N]) EdgeCount() int { return len(g.edges) }
