// SPDX-License-Identifier: MIT

package core

// AddVertex inserts n if it is not already present. Re-adding is a no-op.
// Complexity: O(1)
func (g *Graph[N]) AddVertex(n N) {
	g.ensure(n)
}

func (g *Graph[N]) ensure(n N) int {
	if i, ok := g.index[n]; ok {
		return i
	}
	i := len(g.order)
	g.index[n] = i
	g.order = append(g.order, n)
	g.adj = append(g.adj, nil)
	return i
}

// HasVertex reports whether n is in the graph.
func (g *Graph[N]) HasVertex(n N) bool {
	_, ok := g.index[n]
	return ok
}

// Vertices returns every vertex in insertion order. The slice is a copy.
// Complexity: O(V)
func (g *Graph[N]) Vertices() []N {
	return append([]N(nil), g.order...)
}

// VertexCount is |V|.
func (g *Graph[N]) VertexCount() int { return len(g.order) }

// Neighbors returns the outgoing edges of n in insertion order.
// Complexity: O(deg(n))
func (g *Graph[N]) Neighbors(n N) ([]Edge[N], error) {
	i, ok := g.index[n]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return append([]Edge[N](nil), g.adj[i]...), nil
}

// Steps returns the outgoing moves of n, or nil if n is unknown. The method
// value g.Steps plugs directly into bfs.Search, dijkstra.Search and
// astar.Search.
// Complexity: O(deg(n))
func (g *Graph[N]) Steps(n N) []Step[N] {
	i, ok := g.index[n]
	if !ok {
		return nil
	}
	out := make([]Step[N], len(g.adj[i]))
	for k, e := range g.adj[i] {
		out[k] = Step[N]{To: e.To, Cost: e.Weight}
	}
	return out
}

// Successors returns the targets of n's outgoing edges.
func (g *Graph[N]) Successors(n N) []N {
	i, ok := g.index[n]
	if !ok {
		return nil
	}
	out := make([]N, len(g.adj[i]))
	for k, e := range g.adj[i] {
		out[k] = e.To
	}
	return out
}

// Degree returns the number of outgoing edges of n (0 if unknown).
func (g *Graph[N]) Degree(n N) int {
	if i, ok := g.index[n]; ok {
		return len(g.adj[i])
	}
	return 0
}
