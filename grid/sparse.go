// SPDX-License-Identifier: MIT

package grid

import (
	"slices"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/advent/point"
)

// Sparse stores only the cells that were set.
type Sparse[T any] struct {
	cells  map[point.Point]T
	grown  point.Extent
	isGrow bool
}

// NewSparse returns an empty sparse grid.
func NewSparse[T any]() *Sparse[T] {
	return &Sparse[T]{cells: make(map[point.Point]T)}
}

// SparseFromLines scans text lines and records the cells for which keep
// returns true. Line i becomes row Y=i, rune j column X=j.
func SparseFromLines[T any](lines []string, keep func(p point.Point, r rune) (T, bool)) *Sparse[T] {
	g := NewSparse[T]()
	for y, l := range lines {
		x := 0
		for _, r := range l {
			p := point.Point{X: x, Y: y}
			if v, ok := keep(p, r); ok {
				g.cells[p] = v
			}
			x++
		}
	}
	return g
}

// Len is the number of set cells.
func (g *Sparse[T]) Len() int { return len(g.cells) }

// Get returns the value at p, and false if p is unset.
func (g *Sparse[T]) Get(p point.Point) (T, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Set records v at p.
func (g *Sparse[T]) Set(p point.Point, v T) { g.cells[p] = v }

// Remove unsets p.
func (g *Sparse[T]) Remove(p point.Point) { delete(g.cells, p) }

// Grow widens the reported extent to cover e without setting any cell.
// The widening persists across later mutations.
func (g *Sparse[T]) Grow(e point.Extent) {
	if g.isGrow {
		g.grown = g.grown.Union(e)
		return
	}
	g.grown, g.isGrow = e, true
}

// Extents returns the bounding box of set cells united with any Grow
// region, and false when no cell is set.
func (g *Sparse[T]) Extents() (point.Extent, bool) {
	if len(g.cells) == 0 {
		return point.Extent{}, false
	}
	var e point.Extent
	first := true
	for p := range g.cells {
		if first {
			e, first = point.Extent{Min: p, Max: p}, false
			continue
		}
		e = e.Include(p)
	}
	if g.isGrow {
		e = e.Union(g.grown)
	}
	return e, true
}

// Points lists the set cells ordered by Y, then X.
func (g *Sparse[T]) Points() []point.Point {
	out := make([]point.Point, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePoints)
	return out
}

func comparePoints(a, b point.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

// Clone returns an independent copy (values are copied shallowly).
func (g *Sparse[T]) Clone() *Sparse[T] {
	c := &Sparse[T]{cells: make(map[point.Point]T, len(g.cells)), grown: g.grown, isGrow: g.isGrow}
	for p, v := range g.cells {
		c.cells[p] = v
	}
	return c
}

// Translate returns a copy with every cell moved by off.
func (g *Sparse[T]) Translate(off point.Point) *Sparse[T] {
	return g.transform(func(p point.Point) point.Point { return p.Add(off) })
}

// Normalize returns a copy translated so that its extent starts at (0,0).
func (g *Sparse[T]) Normalize() *Sparse[T] {
	e, ok := g.Extents()
	if !ok {
		return g.Clone()
	}
	return g.Translate(e.Min.Neg())
}

func (g *Sparse[T]) transform(f func(point.Point) point.Point) *Sparse[T] {
	out := &Sparse[T]{cells: make(map[point.Point]T, len(g.cells))}
	for p, v := range g.cells {
		out.cells[f(p)] = v
	}
	if g.isGrow {
		a, b := f(g.grown.Min), f(g.grown.Max)
		out.Grow(point.Extent{Min: a, Max: a}.Include(b))
	}
	return out
}

// Transpositions returns the eight images of g under the dihedral group of
// the square: rotations by 0°, 90°, 180° and 270°, then the same four
// applied after mirroring across the vertical axis. Every image is
// normalised so that its extent starts at (0,0), which makes images of
// symmetric shapes compare equal.
func (g *Sparse[T]) Transpositions() []*Sparse[T] {
	out := make([]*Sparse[T], 0, 8)
	for _, mirror := range []bool{false, true} {
		for turns := 0; turns < 4; turns++ {
			m, n := mirror, turns
			t := g.transform(func(p point.Point) point.Point {
				if m {
					p.X = -p.X
				}
				for i := 0; i < n; i++ {
					p = p.RotateRight()
				}
				return p
			})
			out = append(out, t.Normalize())
		}
	}
	return out
}

// Hash returns a content hash independent of insertion order.
func (g *Sparse[T]) Hash() deephash.Sum {
	return deephash.Hash(g)
}
