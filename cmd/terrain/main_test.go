package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/point"
)

const sample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581`

func TestParts(t *testing.T) {
	g, err := parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(40), part1(g))
	assert.Equal(t, int64(315), part2(g))
}

func TestTile(t *testing.T) {
	g, err := parse([]string{"8"})
	require.NoError(t, err)
	big := tile(g, 5)
	assert.Equal(t, 5, big.Width())
	row := make([]int, 5)
	for x := range row {
		row[x] = big.At(point.Point{X: x})
	}
	assert.Equal(t, []int{8, 9, 1, 2, 3}, row)
	assert.Equal(t, 7, big.At(point.Point{X: 4, Y: 4}))
}

func TestDrawRoute(t *testing.T) {
	g, err := parse([]string{"19", "11"})
	require.NoError(t, err)
	root := filepath.Join(t.TempDir(), "route")
	path := []point.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	require.NoError(t, drawRoute(root, g, path))

	data, err := os.ReadFile(root + ".ppm")
	require.NoError(t, err)
	hdr := "P6\n4 4\n255\n"
	require.True(t, strings.HasPrefix(string(data), hdr))
	px := func(x, y int) []byte {
		i := len(hdr) + (y*4+x)*3
		return data[i : i+3]
	}
	assert.Equal(t, []byte{255, 0, 0}, px(0, 0))
	assert.Equal(t, []byte{0, 30, 0}, px(3, 0))
}
