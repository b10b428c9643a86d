// SPDX-License-Identifier: MIT

package grid

import (
	"tailscale.com/util/deephash"

	"github.com/katalvlaran/advent/point"
)

// Dense stores a W×H rectangle in row-major order.
type Dense[T any] struct {
	w, h  int
	cells []T
	blank T
}

// DenseOption configures a Dense grid at construction.
type DenseOption[T any] func(*Dense[T])

// WithBlank designates the value Remove writes.
func WithBlank[T any](v T) DenseOption[T] {
	return func(g *Dense[T]) { g.blank = v }
}

// NewDense allocates a w×h grid with every cell set to fill.
// Non-positive dimensions yield an empty grid whose Extents reports false.
func NewDense[T any](w, h int, fill T, opts ...DenseOption[T]) *Dense[T] {
	w, h = max(w, 0), max(h, 0)
	g := &Dense[T]{w: w, h: h, cells: make([]T, w*h)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DenseFromRows copies rows into a new grid. All rows must share one length.
func DenseFromRows[T any](rows [][]T, opts ...DenseOption[T]) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	var zero T
	g := NewDense(w, len(rows), zero, opts...)
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// DenseFromLines builds a grid from text lines, converting each rune with conv.
func DenseFromLines[T any](lines []string, conv func(r rune) T, opts ...DenseOption[T]) (*Dense[T], error) {
	rows := make([][]T, len(lines))
	for y, l := range lines {
		for _, r := range l {
			rows[y] = append(rows[y], conv(r))
		}
	}
	return DenseFromRows(rows, opts...)
}

// Width is the number of columns.
func (g *Dense[T]) Width() int { return g.w }

// Height is the number of rows.
func (g *Dense[T]) Height() int { return g.h }

// InBounds reports whether p addresses a cell.
func (g *Dense[T]) InBounds(p point.Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

func (g *Dense[T]) index(p point.Point) int { return p.Y*g.w + p.X }

// Get returns the cell at p; every in-bounds cell is set.
func (g *Dense[T]) Get(p point.Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// At returns the cell at p, or the zero value out of bounds.
func (g *Dense[T]) At(p point.Point) T {
	v, _ := g.Get(p)
	return v
}

// Set writes v at p; out-of-bounds writes are ignored.
func (g *Dense[T]) Set(p point.Point, v T) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = v
	}
}

// Remove writes the blank value at p.
func (g *Dense[T]) Remove(p point.Point) {
	g.Set(p, g.blank)
}

// Blank returns the value Remove writes.
func (g *Dense[T]) Blank() T { return g.blank }

// Extents is always [0,0]..[W-1,H-1] for a non-empty grid.
func (g *Dense[T]) Extents() (point.Extent, bool) {
	if g.w == 0 || g.h == 0 {
		return point.Extent{}, false
	}
	return point.Extent{Max: point.Point{X: g.w - 1, Y: g.h - 1}}, true
}

// Points lists every cell in row-major order.
func (g *Dense[T]) Points() []point.Point {
	out := make([]point.Point, 0, len(g.cells))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out = append(out, point.Point{X: x, Y: y})
		}
	}
	return out
}

// Row returns row y as a slice aliasing the grid storage.
func (g *Dense[T]) Row(y int) []T {
	return g.cells[y*g.w : (y+1)*g.w]
}

// Clone returns an independent copy.
func (g *Dense[T]) Clone() *Dense[T] {
	c := *g
	c.cells = append([]T(nil), g.cells...)
	return &c
}

// Transpose returns the grid mirrored across its main diagonal.
func (g *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{w: g.h, h: g.w, cells: make([]T, len(g.cells)), blank: g.blank}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out.cells[x*out.w+y] = g.cells[y*g.w+x]
		}
	}
	return out
}

// RotateRight returns the grid rotated 90° clockwise.
func (g *Dense[T]) RotateRight() *Dense[T] {
	out := &Dense[T]{w: g.h, h: g.w, cells: make([]T, len(g.cells)), blank: g.blank}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			// (x,y) → (h-1-y, x)
			out.cells[x*out.w+(g.h-1-y)] = g.cells[y*g.w+x]
		}
	}
	return out
}

// Hash returns a content hash of the grid, suitable as a map key when
// looking for repeated states.
func (g *Dense[T]) Hash() deephash.Sum {
	return deephash.Hash(g)
}
