// SPDX-License-Identifier: MIT

// Package gridgraph treats any grid.Grid[T] (dense or sparse) as a graph
// whose vertices are passable cells, enabling the search packages to run
// directly over puzzle maps.
//
// What:
//
//   - Steps builds an implicit neighbour function for bfs, dijkstra and
//     astar without materialising a graph.
//   - FromGrid materialises a directed *core.Graph[point.Point] with one
//     edge per permitted move.
//   - ConnectedComponents labels contiguous regions of passable cells.
//   - Bridge computes the cheapest set of non-land cells to convert so two
//     components touch (0-1 BFS).
//
// Callbacks:
//
//   - Passable(p, v) decides whether cell p with value v is a vertex.
//   - Cost(from, fv, to, tv) returns the edge cost and false to forbid the
//     move. Asymmetric costs are honoured, so FromGrid graphs are directed.
//
// Complexity:
//
//   - Steps:               O(d) per expansion, d = 4 or 8.
//   - FromGrid:            O(N·d) time and memory for N set cells.
//   - ConnectedComponents: O(N·d), Memory: O(N).
//   - Bridge:              O(N·d), Memory: O(N).
//
// Errors:
//
//   - ErrBadDegree: connectivity other than 4 or 8.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
