// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for vertices the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for a
// different vertex type), it is recorded and surfaced as ErrOptionViolation
// when BFS is invoked.
type Option func(*options)

// options holds parameters and callbacks. Hooks are stored untyped so that a
// single Option type serves every vertex type; BFS asserts them against its
// own N.
type options struct {
	ctx       context.Context
	maxDepth  int
	onEnqueue any // func(N, int)
	onDequeue any // func(N, int)
	onVisit   any // func(N, int) error
	filter    any // func(curr, next N) bool
	err       error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when a vertex is enqueued.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run immediately before visiting.
func WithOnDequeue[N comparable](fn func(n N, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; returning an error from
// it stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor skips edges curr→next when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, next N) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks is the typed view of options for a concrete N.
type hooks[N comparable] struct {
	onEnqueue func(N, int)
	onDequeue func(N, int)
	onVisit   func(N, int) error
	filter    func(N, N) bool
}

func resolve[N comparable](o *options) (hooks[N], error) {
	h := hooks[N]{
		onEnqueue: func(N, int) {},
		onDequeue: func(N, int) {},
		onVisit:   func(N, int) error { return nil },
		filter:    func(N, N) bool { return true },
	}
	ok := true
	if o.onEnqueue != nil {
		h.onEnqueue, ok = o.onEnqueue.(func(N, int))
	}
	if ok && o.onDequeue != nil {
		h.onDequeue, ok = o.onDequeue.(func(N, int))
	}
	if ok && o.onVisit != nil {
		h.onVisit, ok = o.onVisit.(func(N, int) error)
	}
	if ok && o.filter != nil {
		h.filter, ok = o.filter.(func(N, N) bool)
	}
	if !ok {
		return h, fmt.Errorf("%w: hook vertex type does not match graph", ErrOptionViolation)
	}
	return h, nil
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	return unwind(r.Parent, dest), nil
}

// unwind follows parent links from dest back to a root and returns the
// path in forward order.
func unwind[N comparable](parent map[N]N, dest N) []N {
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
