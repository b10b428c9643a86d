package bfs_test

import (
	"testing"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// BenchmarkGrid measures an open 100×100 corner-to-corner search.
func BenchmarkGrid(b *testing.B) {
	g := grid.NewDense(100, 100, '.')
	goal := point.Point{X: 99, Y: 99}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Grid[rune](g, nil, point.Point{}, goal, grid.Degree4)
	}
}
