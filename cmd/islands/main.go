// SPDX-License-Identifier: MIT

// Command islands counts the islands of a map and plans the cheapest bridge
// between the first two.
//
// Scenario:
//
//	Digits 1..9 are land (resource IDs), 0 is water. Islands are
//	4-connected land regions, numbered in reading order of their first
//	cell:
//
//	  01102
//	  11002
//	  00022
//	  30000
//	  33044
//
// Part 1 prints the number of islands (4 above). Part 2 prints the fewest
// water cells that must be filled to connect island 0 to island 1 (1
// above). At debug log level the map is logged with the bridge marked X.
//
// Complexity: O(W·H) for component analysis and the 0-1 BFS.
//
//	islands <part:1|2> <map.txt>
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/draw"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/runner"
)

const water = '0'

// bridgeMark is written over converted water cells in the debug view.
const bridgeMark = 'X'

func parse(lines []string) (*grid.Dense[rune], error) {
	return grid.DenseFromLines(lines, func(r rune) rune { return r })
}

var land = gridgraph.NotEquals[rune](water)

func part1(g *grid.Dense[rune]) int {
	comps, err := gridgraph.ConnectedComponents[rune](g, land, grid.Degree4)
	if err != nil {
		panic(err)
	}
	return len(comps)
}

func part2(g *grid.Dense[rune]) int {
	path, cost, err := gridgraph.Bridge[rune](g, land, grid.Degree4, 0, 1)
	if err != nil {
		panic(err)
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		view := g.Clone()
		for _, p := range path {
			if view.At(p) == water {
				view.Set(p, bridgeMark)
			}
		}
		logrus.WithField("cost", cost).Debug("bridge plan\n" + draw.Render[rune](view, func(r rune) rune {
			if r == water {
				return '~'
			}
			return r
		}, ' '))
	}
	return cost
}

func main() {
	runner.Run(parse, part1, part2)
}
