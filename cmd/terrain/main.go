// SPDX-License-Identifier: MIT

// Command terrain finds the least-risk route across a map of digit costs.
//
// Scenario:
//
//	Each cell holds the risk (1..9) of entering it. Start is the top-left
//	cell, the goal the bottom-right one; moves are N/E/S/W.
//
//	  1163751742
//	  1381373672
//	  ...
//
// Part 1 runs Dijkstra on the map as given. Part 2 tiles the map 5x5,
// each tile step adding 1 to every risk (wrapping 9 back to 1), and runs A*
// with the Manhattan heuristic. With draw enabled in the runner
// configuration, part 2 also writes the route as <draw_dir>/terrain.ppm.
//
// Complexity: O(N log N) for N cells.
//
//	terrain <part:1|2> <map.txt>
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/astar"
	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/draw"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
	"github.com/katalvlaran/advent/runner"
)

// route marks path cells in the drawing layer.
const route = -1

func parse(lines []string) (*grid.Dense[int], error) {
	return grid.DenseFromLines(lines, func(r rune) int { return int(r - '0') })
}

// enter charges the risk of the destination cell.
func enter(_ point.Point, _ int, _ point.Point, to int) (int64, bool) {
	return int64(to), true
}

func corners(g *grid.Dense[int]) (point.Point, point.Point) {
	return point.Point{}, point.Point{X: g.Width() - 1, Y: g.Height() - 1}
}

// tile expands g n times in both directions.
func tile(g *grid.Dense[int], n int) *grid.Dense[int] {
	w, h := g.Width(), g.Height()
	out := grid.NewDense(w*n, h*n, 0)
	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			for _, p := range g.Points() {
				v := g.At(p) + tx + ty
				out.Set(point.Point{X: tx*w + p.X, Y: ty*h + p.Y}, (v-1)%9+1)
			}
		}
	}
	return out
}

func part1(g *grid.Dense[int]) int64 {
	start, goal := corners(g)
	cost, _, ok := dijkstra.Grid[int](g, nil, enter, start, goal, grid.Degree4)
	if !ok {
		return -1
	}
	return cost
}

func part2(g *grid.Dense[int]) int64 {
	big := tile(g, 5)
	start, goal := corners(big)
	cost, path, ok := astar.Grid[int](big, nil, enter, start, goal, grid.Degree4)
	if !ok {
		return -1
	}
	if cfg := runner.Active(); cfg.Draw {
		if err := drawRoute(cfg.DrawPath("terrain"), big, path); err != nil {
			logrus.WithError(err).Warn("terrain: drawing failed")
		}
	}
	return cost
}

// drawRoute renders risk as shades of green with the route in red.
func drawRoute(root string, g *grid.Dense[int], path []point.Point) error {
	d, err := draw.NewBitmapDrawer(root, func(v int) draw.RGB {
		if v == route {
			return draw.RGB{R: 255}
		}
		return draw.RGB{G: 255 - v*25}
	}, draw.WithScale(2))
	if err != nil {
		return err
	}
	overlay := grid.NewSparse[int]()
	for _, p := range path {
		overlay.Set(p, route)
	}
	if err := d.DrawLayers(g, overlay); err != nil {
		d.Close()
		return err
	}
	return d.Close()
}

func main() {
	runner.Run(parse, part1, part2)
}
