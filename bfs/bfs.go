// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	n     N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    options
	hooks   hooks[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook (wrapped).
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolve[N](&o)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		hooks:   h,
		ctx:     o.ctx,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int) {
	w.visited[n] = true
	w.res.Depth[n] = d
	w.hooks.onEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{n: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.hooks.onDequeue(item.n, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.n)
	if err := w.hooks.onVisit(item.n, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.n, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// successor with item as its parent.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	next := item.depth + 1
	if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
		return
	}
	for _, nbr := range w.graph.Successors(item.n) {
		if w.visited[nbr] || !w.hooks.filter(item.n, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.n
		w.enqueue(nbr, next)
	}
}

// ShortestPath returns the fewest-edge path from→to in g.
func ShortestPath[N comparable](g *core.Graph[N], from, to N) ([]N, bool) {
	res, err := BFS(g, from)
	if err != nil {
		return nil, false
	}
	path, err := res.PathTo(to)
	return path, err == nil
}
