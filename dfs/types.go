// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates an algorithm that needs edge direction got an undirected graph.
	ErrNotDirected = errors.New("dfs: graph must be directed")

	// ErrOptionViolation indicates a hook typed for a different vertex type.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*options)

// options holds configurable parameters for DFS traversal. Hooks are kept
// untyped and asserted against the graph's vertex type when DFS runs.
type options struct {
	ctx           context.Context
	onVisit       any // func(N) error
	onExit        any // func(N) error
	filter        any // func(N) bool
	maxDepth      int
	fullTraversal bool
}

func defaultOptions() options {
	return options{ctx: context.Background(), maxDepth: -1}
}

// WithContext sets the context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook, called when a vertex is
// first discovered.
func WithOnVisit[N comparable](fn func(n N) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// WithOnExit installs fn as a post-order hook, called after a vertex's
// descendants have been explored.
func WithOnExit[N comparable](fn func(n N) error) Option {
	return func(o *options) { o.onExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
// Negative values mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *options) { o.maxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false and counts
// them in Result.SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(n N) bool) Option {
	return func(o *options) { o.filter = fn }
}

// WithFullTraversal restarts DFS from each unvisited vertex in insertion
// order, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *options) { o.fullTraversal = true }
}

type hooks[N comparable] struct {
	onVisit func(N) error
	onExit  func(N) error
	filter  func(N) bool
}

func resolve[N comparable](o *options) (hooks[N], error) {
	var h hooks[N]
	ok := true
	if o.onVisit != nil {
		h.onVisit, ok = o.onVisit.(func(N) error)
	}
	if ok && o.onExit != nil {
		h.onExit, ok = o.onExit.(func(N) error)
	}
	if ok && o.filter != nil {
		h.filter, ok = o.filter.(func(N) bool)
	}
	if !ok {
		return h, fmt.Errorf("%w: hook vertex type does not match graph", ErrOptionViolation)
	}
	return h, nil
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []N

	// Depth maps each vertex to its tree depth (#edges) from its root.
	Depth map[N]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[N]N

	// Visited flags which vertices were reached.
	Visited map[N]bool

	// SkippedNeighbors counts neighbours rejected by the filter.
	SkippedNeighbors int
}
