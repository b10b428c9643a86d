// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
)

// walker encapsulates state during DFS.
type walker[N comparable] struct {
	graph *core.Graph[N]
	opts  options
	hooks hooks[N]
	res   *Result[N]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// all components (start is then only required to be the first root if it
// exists); otherwise it explores from start only.
// Returns the Result, or an error if aborted by context or hook; on abort
// the partial Result is returned with an empty Order.
func DFS[N comparable](g *core.Graph[N], start N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	h, err := resolve[N](&o)
	if err != nil {
		return nil, err
	}
	if !o.fullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result[N]{
		Order:   make([]N, 0, n),
		Depth:   make(map[N]int, n),
		Parent:  make(map[N]N, n),
		Visited: make(map[N]bool, n),
	}
	w := &walker[N]{graph: g, opts: o, hooks: h, res: res}

	roots := []N{start}
	if o.fullTraversal {
		roots = g.Vertices()
		if g.HasVertex(start) {
			roots = append([]N{start}, roots...)
		}
	}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		if err := w.traverse(r, 0); err != nil {
			res.Order = nil
			return res, err
		}
	}
	return res, nil
}

// traverse visits n at the given depth, recursing into unvisited successors.
func (w *walker[N]) traverse(n N, depth int) error {
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}
	if w.opts.maxDepth >= 0 && depth > w.opts.maxDepth {
		return nil
	}

	w.res.Visited[n] = true
	w.res.Depth[n] = depth
	if w.hooks.onVisit != nil {
		if err := w.hooks.onVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	for _, next := range w.graph.Successors(n) {
		if next == n {
			continue
		}
		if w.hooks.filter != nil && !w.hooks.filter(next) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[next] {
			continue
		}
		if w.opts.maxDepth >= 0 && depth+1 > w.opts.maxDepth {
			continue
		}
		w.res.Parent[next] = n
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	if w.hooks.onExit != nil {
		if err := w.hooks.onExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", n, err)
		}
	}
	w.res.Order = append(w.res.Order, n)
	return nil
}
