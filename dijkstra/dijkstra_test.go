package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/point"
)

// diamond builds A→B(1), A→C(4), B→C(2), B→D(5), C→D(1), plus isolated E.
func diamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("C", "D", 1))
	g.AddVertex("E")
	return g
}

//----------------------------------------------------------------------------//
// Dijkstra over core.Graph
//----------------------------------------------------------------------------//

func TestDijkstra_Errors(t *testing.T) {
	g := diamond(t)
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(42))
	assert.ErrorIs(t, err, dijkstra.ErrSourceType)

	_, _, err = dijkstra.Dijkstra[string](nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	require.NoError(t, g.AddEdge("D", "E", -3))
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_Distances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4, "E": dijkstra.Unreachable}, dist)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, prev)

	_, prev, err = dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_Limits(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.EqualValues(t, 3, dist["C"])
	assert.EqualValues(t, dijkstra.Unreachable, dist["D"])

	// Edges of weight ≥ 2 become walls: only A→B and C→D remain.
	dist, _, err = dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.EqualValues(t, 1, dist["B"])
	assert.EqualValues(t, dijkstra.Unreachable, dist["C"])
}

func TestShortestPath(t *testing.T) {
	cost, path, ok := dijkstra.ShortestPath(diamond(t), "A", "D")
	require.True(t, ok)
	assert.EqualValues(t, 4, cost)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	_, _, ok = dijkstra.ShortestPath(diamond(t), "A", "E")
	assert.False(t, ok)
	_, _, ok = dijkstra.ShortestPath(diamond(t), "Q", "A")
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Implicit and grid searches
//----------------------------------------------------------------------------//

func TestGrid_OpenSquare(t *testing.T) {
	g := grid.NewDense(10, 10, '.')
	goal := point.Point{X: 9, Y: 9}
	cost, path, ok := dijkstra.Grid[rune](g, nil, nil, point.Point{}, goal, grid.Degree4)
	require.True(t, ok)
	assert.EqualValues(t, 18, cost)
	require.Len(t, path, 19)
	assert.Equal(t, point.Point{}, path[0])
	assert.Equal(t, goal, path[18])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, point.Manhattan(path[i-1], path[i]))
	}
}

func TestGrid_WeightedDigits(t *testing.T) {
	g, err := grid.DenseFromLines([]string{
		"1163751742",
		"1381373672",
		"2136511328",
		"3694931569",
		"7463417111",
		"1319128137",
		"1359912421",
		"3125421639",
		"1293138521",
		"2311944581",
	}, func(r rune) int { return int(r - '0') })
	require.NoError(t, err)
	enter := func(_ point.Point, _ int, _ point.Point, v int) (int64, bool) { return int64(v), true }
	cost, _, ok := dijkstra.Grid[int](g, nil, enter, point.Point{}, point.Point{X: 9, Y: 9}, grid.Degree4)
	require.True(t, ok)
	assert.EqualValues(t, 40, cost)
}

func TestGrid_Walls(t *testing.T) {
	g, err := grid.DenseFromLines([]string{
		".#.",
		".#.",
		".#.",
	}, func(r rune) rune { return r })
	require.NoError(t, err)
	_, _, ok := dijkstra.Grid[rune](g, gridgraph.NotEquals('#'), nil, point.Point{}, point.Point{X: 2}, grid.Degree4)
	assert.False(t, ok)
	_, _, ok = dijkstra.Grid[rune](g, nil, nil, point.Point{}, point.Point{X: 2}, 3)
	assert.False(t, ok)
}

func TestSearch_StateSpace(t *testing.T) {
	// Reach 0 from 10: -1 costs 1, halving (even only) costs 3.
	steps := func(x int) []core.Step[int] {
		out := []core.Step[int]{{To: x - 1, Cost: 1}}
		if x%2 == 0 {
			out = append(out, core.Step[int]{To: x / 2, Cost: 3})
		}
		if x <= 0 {
			return nil
		}
		return out
	}
	cost, path, ok := dijkstra.Search(10, steps, func(x int) bool { return x == 0 })
	require.True(t, ok)
	assert.EqualValues(t, 8, cost)
	assert.Equal(t, 0, path[len(path)-1])

	dist := dijkstra.Distances(10, steps)
	assert.EqualValues(t, 3, dist[5])
	assert.EqualValues(t, 4, dist[4])
	assert.EqualValues(t, 8, dist[0])
}
