// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph[N], over an
// implicit neighbour function, or directly over a grid.Grid[T], returning
// unweighted shortest paths (fewest edges).
//
// Entry points:
//
//   - Search: implicit graph, stops at the first vertex satisfying isGoal.
//   - Flood: implicit graph, distance to every reachable vertex.
//   - BFS: full traversal of a core.Graph with hooks, depth limiting,
//     neighbour filtering and cancellation (functional Options).
//   - ShortestPath: BFS + PathTo on a core.Graph.
//   - Grid: Search over grid cells via gridgraph.Steps.
//
// Ties are broken by neighbour order, so results are deterministic for
// deterministic neighbour functions.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
