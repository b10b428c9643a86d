// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over
// weighted graphs: a materialised core.Graph[N], an implicit step function,
// or a grid.Grid[T] through gridgraph.Steps.
//
// It processes vertices in order of increasing distance using a min-heap
// (internal/heapq), relaxing edges and updating distances accordingly.
// Equal distances pop in insertion order, so the path returned for a given
// input is always the same.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalised at most once.
//   - Each relaxation may push a new heap entry (lazy decrease-key).
//   - Space: O(V + E)
//
// Entry points:
//
//   - Search:       implicit graph, stops at the first goal popped.
//   - Distances:    implicit graph, cost to every reachable vertex.
//   - Dijkstra:     all distances in a core.Graph with functional Options
//     (Source, WithReturnPath, WithMaxDistance, WithInfEdgeThreshold).
//   - ShortestPath: Search over a core.Graph.
//   - Grid:         Search over grid cells.
//
// Negative costs are rejected by Dijkstra (ErrNegativeWeight); the implicit
// searches assume non-negative costs.
package dijkstra
