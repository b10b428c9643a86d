// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/internal/heapq"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: vertex → minimum distance (Unreachable if never reached).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; the source
//     and unreachable vertices have no entry.
//   - err:  invalid input or a negative weight.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be set (ErrNoSource) and of type N (ErrSourceType).
//  3. g must be non-nil (ErrNilGraph) and contain Source (ErrVertexNotFound).
//  4. No edge in g may have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[N comparable](g *core.Graph[N], opts ...Option) (map[N]int64, map[N]N, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == nil {
		return nil, nil, ErrNoSource
	}
	src, ok := cfg.Source.(N)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %T", ErrSourceType, cfg.Source)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner[N]{
		g:       g,
		options: cfg,
		source:  src,
		dist:    make(map[N]int64, V),
		visited: make(map[N]bool, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N, V)
	}
	r.init()
	r.process()
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	g       *core.Graph[N]
	options Options
	source  N
	dist    map[N]int64
	prev    map[N]N
	visited map[N]bool
	pq      heapq.Queue[N]
}

// init sets every distance to Unreachable and seeds the heap with the source.
func (r *runner[N]) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0
	r.pq.Push(r.source, 0)
}

// process repeatedly extracts the closest unfinalised vertex and relaxes its
// outgoing edges, stopping when the heap is empty or the closest candidate
// exceeds MaxDistance.
func (r *runner[N]) process() {
	for r.pq.Len() > 0 {
		u, d := r.pq.Pop()
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbour of u, skipping
// impassable edges and candidates beyond MaxDistance.
func (r *runner[N]) relax(u N) {
	for _, s := range r.g.Steps(u) {
		if s.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + s.Cost
		if nd > r.options.MaxDistance || nd >= r.dist[s.To] {
			continue
		}
		r.dist[s.To] = nd
		if r.prev != nil {
			r.prev[s.To] = u
		}
		r.pq.Push(s.To, nd)
	}
}
