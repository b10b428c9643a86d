// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/advent/point"
)

// Blit copies every set cell of src into dst, shifted by offset.
func Blit[T any](dst Grid[T], offset point.Point, src Grid[T]) {
	for _, p := range src.Points() {
		v, _ := src.Get(p)
		dst.Set(p.Add(offset), v)
	}
}

// Map applies f to every set cell. A dense input yields a dense output of
// the same size; any other grid yields a sparse one.
func Map[T, U any](g Grid[T], f func(p point.Point, v T) U) Grid[U] {
	var out Grid[U]
	if d, ok := g.(*Dense[T]); ok {
		var zero U
		out = NewDense(d.Width(), d.Height(), zero)
	} else {
		out = NewSparse[U]()
	}
	for _, p := range g.Points() {
		v, _ := g.Get(p)
		out.Set(p, f(p, v))
	}
	return out
}

// Count returns the number of set cells satisfying pred.
func Count[T any](g Grid[T], pred func(p point.Point, v T) bool) int {
	n := 0
	for _, p := range g.Points() {
		if v, _ := g.Get(p); pred(p, v) {
			n++
		}
	}
	return n
}

// Neighbors returns the set cells adjacent to p at the given degree
// (Degree4 or Degree8; anything else is treated as Degree4).
func Neighbors[T any](g Grid[T], p point.Point, degree int) []point.Point {
	cand := point.Neighbors(p)
	if degree == Degree8 {
		cand = point.NeighborsInclDiagonals(p)
	}
	out := cand[:0]
	for _, q := range cand {
		if _, ok := g.Get(q); ok {
			out = append(out, q)
		}
	}
	return out
}

// Equal reports whether a and b have the same set cells with equal values.
func Equal[T comparable](a, b Grid[T]) bool {
	pa, pb := a.Points(), b.Points()
	if len(pa) != len(pb) {
		return false
	}
	for i, p := range pa {
		if p != pb[i] {
			return false
		}
		va, _ := a.Get(p)
		vb, _ := b.Get(p)
		if va != vb {
			return false
		}
	}
	return true
}
