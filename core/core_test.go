package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/advent/core"
)

//----------------------------------------------------------------------------//
// Undirected graph suite
//----------------------------------------------------------------------------//

type UndirectedSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *UndirectedSuite) SetupTest() {
	s.g = core.NewGraph[string]()
	s.Require().NoError(s.g.AddEdge("A", "B", 1))
	s.Require().NoError(s.g.AddEdge("B", "C", 2))
	s.Require().NoError(s.g.AddEdge("C", "A", 3))
}

func (s *UndirectedSuite) TestMirror() {
	s.True(s.g.HasEdge("B", "A"))
	w, ok := s.g.Weight("A", "C")
	s.True(ok)
	s.EqualValues(3, w)
	s.Equal(3, s.g.EdgeCount())
	s.Equal(2, s.g.Degree("A"))
}

func (s *UndirectedSuite) TestErrors() {
	s.ErrorIs(s.g.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)
	s.ErrorIs(s.g.AddEdge("B", "A", 9), core.ErrMultiEdgeNotAllowed)
	_, err := s.g.Neighbors("Z")
	s.ErrorIs(err, core.ErrVertexNotFound)
	s.ErrorIs(s.g.RemoveEdge("A", "Z"), core.ErrEdgeNotFound)
	s.ErrorIs(s.g.RemoveEdge("Z", "A"), core.ErrVertexNotFound)
}

func (s *UndirectedSuite) TestRemoveEdge() {
	s.Require().NoError(s.g.RemoveEdge("B", "A"))
	s.False(s.g.HasEdge("A", "B"))
	s.False(s.g.HasEdge("B", "A"))
	s.Equal(2, s.g.EdgeCount())
}

func (s *UndirectedSuite) TestOrder() {
	s.Equal([]string{"A", "B", "C"}, s.g.Vertices())
	nbrs, err := s.g.Neighbors("A")
	s.Require().NoError(err)
	s.Equal([]core.Edge[string]{{From: "A", To: "B", Weight: 1}, {From: "A", To: "C", Weight: 3}}, nbrs)
	s.Equal([]core.Step[string]{{To: "A", Cost: 1}, {To: "C", Cost: 2}}, s.g.Steps("B"))
	s.Nil(s.g.Steps("Z"))
}

func TestUndirectedSuite(t *testing.T) {
	suite.Run(t, new(UndirectedSuite))
}

//----------------------------------------------------------------------------//
// Directed graphs and transforms
//----------------------------------------------------------------------------//

func TestDirected_ReverseSymmetric(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 1, 7))
	require.NoError(t, g.AddEdge(2, 3, 1))
	assert.True(t, g.Directed())
	assert.False(t, g.HasEdge(3, 2))

	r := g.Reverse()
	assert.True(t, r.HasEdge(3, 2))
	assert.False(t, r.HasEdge(2, 3))
	w, _ := r.Weight(1, 2)
	assert.EqualValues(t, 7, w)

	s := g.Symmetric()
	assert.False(t, s.Directed())
	assert.True(t, s.HasEdge(3, 2))
	assert.Equal(t, 2, s.EdgeCount(), "1→2 and 2→1 collapse")
	w, _ = s.Weight(2, 1)
	assert.EqualValues(t, 5, w)
}

func TestLoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("x", "x", 1))
	require.NoError(t, g.AddEdge("x", "y", 2))
	require.NoError(t, g.AddEdge("x", "y", 3))
	assert.Equal(t, 3, g.Degree("x"))
	assert.Equal(t, []string{"x", "y", "y"}, g.Successors("x"))
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	c := g.Clone()
	require.NoError(t, c.AddEdge("b", "c", 1))
	assert.False(t, g.HasVertex("c"))
	assert.True(t, c.HasEdge("c", "b"))

	e := g.CloneEmpty()
	assert.Equal(t, 2, e.VertexCount())
	assert.Equal(t, 0, e.EdgeCount())

	g.AddVertex("a")
	assert.Equal(t, 2, g.VertexCount(), "re-adding is a no-op")
}
