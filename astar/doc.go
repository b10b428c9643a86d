// SPDX-License-Identifier: MIT

// Package astar implements A* search: Dijkstra's algorithm ordered by
// g(n) + h(n), where h is an admissible (never overestimating) estimate of
// the remaining cost. With an admissible h the returned cost equals the
// Dijkstra cost; with h ≡ 0 the search degenerates to Dijkstra.
//
// Grid searches default to Manhattan distance for degree 4 and Chebyshev
// distance for degree 8, which are admissible whenever every move costs at
// least 1. Use WithHeuristic for other cost models (for example zero-cost
// moves, where the default would overestimate).
//
// Complexity: O((V + E) log V) worst case; typically far fewer expansions
// than Dijkstra on open grids.
package astar
