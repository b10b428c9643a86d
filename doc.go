// SPDX-License-Identifier: MIT

// Package advent is the shared library behind a collection of Advent of Code
// puzzle programs. Every day program is a parse function plus two solvers
// handed to the runner; everything else lives in the subpackages:
//
//	runner/     - "<part> <path>" entry point, phase timing, YAML config,
//	              logrus levels, pkg/profile
//	parse/      - splitting, integer extraction (Things), format scanning
//	mathx/      - gcd/lcm, modular arithmetic, CRT, cumulative sums
//	point/      - 2D/3D points, directions, distances, extents, hex tables
//	grid/       - Grid[T] interface, Dense and Sparse grids, Blit, cycles
//	hexgrid/    - cube-coordinate hex grids, flips and rotations
//	draw/       - text, PPM/PNG bitmap, sprite and hex drawers
//	core/       - Graph[N], a generic adjacency list
//	gridgraph/  - grid adapters, connected regions, island bridging
//	bfs/        - breadth-first search over graphs, state spaces and grids
//	dijkstra/   - Dijkstra over graphs, state spaces and grids
//	astar/      - A* with Manhattan/Chebyshev heuristics
//	dfs/        - DFS, topological sort, SCC (Kosaraju), longest path
//	machine/    - Intcode interpreter, snapshots and debugger
//	machine/asm - assembler for Intcode
//
// A typical day:
//
//	func main() {
//		runner.Run(parse, part1, part2)
//	}
//
//	func parse(lines []string) (*grid.Dense[rune], error) {
//		return grid.DenseFromLines(lines, func(r rune) rune { return r })
//	}
//
//	func part1(g *grid.Dense[rune]) int {
//		path, _ := bfs.Grid[rune](g, gridgraph.NotEquals('#'), start, goal, grid.Degree4)
//		return len(path) - 1
//	}
//
// Everything is single-threaded and deterministic: iteration orders are
// fixed, searches break ties by insertion order, and machines clone
// cheaply for speculative runs.
//
// Commands under cmd/ are complete day programs built on the library.
package advent
