// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a weighted connection From→To. In undirected graphs the edge is
// reported from whichever endpoint is being inspected.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight int64
}

// Step is one outgoing move from a vertex: the target and its cost. It is
// the unit every search package expands.
type Step[N comparable] struct {
	To   N
	Cost int64
}

// config holds construction flags; it is not generic so that options can be
// shared by every Graph[N].
type config struct {
	directed   bool
	allowLoops bool
	allowMulti bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// Graph is an adjacency list over vertices of type N.
//
// index maps a vertex to its slot in order and adj; edges keeps the
// canonical edge list (undirected edges appear once) in insertion order.
type Graph[N comparable] struct {
	cfg   config
	order []N
	index map[N]int
	adj   [][]Edge[N]
	edges []Edge[N]
}

// NewGraph creates an empty Graph. By default it is undirected with no
// loops and no multi-edges.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{index: make(map[N]int)}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph[N]) Directed() bool { return g.cfg.directed }
