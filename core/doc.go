// SPDX-License-Identifier: MIT

// Package core provides Graph[N], a generic in-memory adjacency list used by
// the search packages (bfs, dijkstra, astar, dfs) and by gridgraph.
//
// The Graph G = (V,E) supports:
//
//   - Any comparable vertex type N (point.Point, string, state structs).
//   - Directed vs. undirected edges (WithDirected). Undirected graphs mirror
//     every edge in the adjacency of both endpoints.
//   - Integer edge weights (int64). Searches treat weights as costs.
//   - Optional self-loops (WithLoops) and parallel edges (WithMultiEdges).
//   - Deterministic iteration: Vertices, Edges and Neighbors all follow
//     insertion order, so search results are reproducible.
//
// A Graph is not safe for concurrent mutation. Build it once, then share it
// read-only between goroutines.
//
// Core Methods:
//
//	AddVertex(n N)                     // O(1)
//	AddEdge(from, to N, w int64) error // O(deg(from)) duplicate check
//	RemoveEdge(from, to N) error       // O(deg + E)
//	HasVertex(n N) bool                // O(1)
//	HasEdge(from, to N) bool           // O(deg(from))
//	Neighbors(n N) ([]Edge[N], error)  // O(deg(n))
//	Steps(n N) []Step[N]               // O(deg(n)), search adapter
//	Vertices() []N                     // O(V)
//	Edges() []Edge[N]                  // O(E)
//	Reverse(), Symmetric(), Clone()    // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
