// SPDX-License-Identifier: MIT

// Package dfs implements depth-first algorithms on core.Graph[N]:
//
//   - DFS(g, start, opts...): single-source or forest traversal with
//     pre-/post-order hooks, depth limiting, neighbour filtering and
//     cancellation.
//   - TopologicalSort: reverse post-order of a directed acyclic graph.
//   - StronglyConnected: Kosaraju's algorithm, iterative so deep graphs do
//     not exhaust the goroutine stack.
//   - ConnectedComponents: components of the undirected view of g.
//   - LongestPath: heaviest simple path between two vertices by exhaustive
//     backtracking (exponential; meant for small, contracted graphs).
//
// Complexity:
//
//   - DFS, TopologicalSort, StronglyConnected, ConnectedComponents:
//     O(V + E) time, O(V) memory.
//   - LongestPath: O(V!) worst case.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if the start vertex is missing.
//   - ErrCycleDetected          if TopologicalSort meets a back edge.
//   - ErrNotDirected            if TopologicalSort gets an undirected graph.
//   - ErrOptionViolation        if a hook is typed for another vertex type.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
