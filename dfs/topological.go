// SPDX-License-Identifier: MIT

package dfs

import (
	"context"

	"github.com/katalvlaran/advent/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	graph *core.Graph[N]
	opts  topoOptions
	state map[N]int
	order []N
}

// TopologicalSort computes an ordering of all vertices of the directed
// graph g such that for every edge u→v, u precedes v. Roots are tried in
// insertion order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected, context errors.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[N comparable](g *core.Graph[N], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	verts := g.Vertices()
	t := &topoSorter[N]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, len(verts)),
		order: make([]N, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

// visit performs a DFS from n, marking states and detecting back edges.
func (t *topoSorter[N]) visit(n N) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[n] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[n] = Gray
	for _, next := range t.graph.Successors(n) {
		if err := t.visit(next); err != nil {
			return err
		}
	}
	t.state[n] = Black
	t.order = append(t.order, n)
	return nil
}
