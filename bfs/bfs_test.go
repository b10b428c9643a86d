package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/point"
)

func chain(n int) *core.Graph[string] {
	g := core.NewGraph[string]()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	return g
}

//----------------------------------------------------------------------------//
// BFS over core.Graph
//----------------------------------------------------------------------------//

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// A hook typed for int vertices cannot run on a string graph.
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(int, int) error { return nil }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))
	require.NoError(t, g.AddEdge("D", "A", 0))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddEdge("X", "Y", 0)
	_ = g.AddEdge("P", "Q", 0)

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	_, err = res.PathTo("Q")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(1))
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
	res, _ = bfs.BFS(g, "v0", bfs.WithMaxDepth(0))
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
	res, _ = bfs.BFS(g, "v0", bfs.WithMaxDepth(10))
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(3)
	res, err := bfs.BFS(g, "v0", bfs.WithFilterNeighbor(func(curr, next string) bool {
		return !(curr == "v1" && next == "v2")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := chain(3)
	var enq, deq, vis []string
	entry := func(id string, d int) string { return fmt.Sprintf("%s@%d", id, d) }
	_, err := bfs.BFS(g, "v0",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)
	want := []string{"v0@0", "v1@1", "v2@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_VisitErrorAndCancel checks early termination paths.
func TestBFS_VisitErrorAndCancel(t *testing.T) {
	g := chain(5)
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_ = g.AddEdge("A", "B", 9)
	_ = g.AddEdge("B", "C", 9)
	_ = g.AddEdge("A", "C", 100)
	path, ok := bfs.ShortestPath(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, path, "weights are ignored")
	_, ok = bfs.ShortestPath(g, "C", "A")
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Implicit graphs and grids
//----------------------------------------------------------------------------//

func TestSearch_Implicit(t *testing.T) {
	// Reach 10 from 1 using x+1 and x*2.
	next := func(x int) []int { return []int{x + 1, x * 2} }
	path, ok := bfs.Search(1, next, func(x int) bool { return x == 10 })
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 4, 5, 10}, path)

	path, ok = bfs.Search(3, next, func(x int) bool { return x == 3 })
	require.True(t, ok)
	assert.Equal(t, []int{3}, path)

	_, ok = bfs.Search(0, func(x int) []int {
		if x < 3 {
			return []int{x + 1}
		}
		return nil
	}, func(x int) bool { return x == 5 })
	assert.False(t, ok)
}

func TestFlood(t *testing.T) {
	g := chain(4)
	dist := bfs.Flood("v1", g.Successors)
	assert.Equal(t, map[string]int{"v0": 1, "v1": 0, "v2": 1, "v3": 2}, dist)
}

func TestGrid(t *testing.T) {
	g, err := grid.DenseFromLines([]string{
		"S.#.",
		"..#.",
		"...G",
	}, func(r rune) rune { return r })
	require.NoError(t, err)
	open := gridgraph.NotEquals('#')
	path, ok := bfs.Grid[rune](g, open, point.Point{}, point.Point{X: 3, Y: 2}, grid.Degree4)
	require.True(t, ok)
	assert.Len(t, path, 6)
	assert.Equal(t, point.Point{}, path[0])
	assert.Equal(t, point.Point{X: 3, Y: 2}, path[5])

	path, ok = bfs.Grid[rune](g, open, point.Point{}, point.Point{X: 3, Y: 2}, grid.Degree8)
	require.True(t, ok)
	assert.Len(t, path, 4)

	_, ok = bfs.Grid[rune](g, open, point.Point{}, point.Point{X: 3, Y: 0}, 5)
	assert.False(t, ok, "bad degree")
}
