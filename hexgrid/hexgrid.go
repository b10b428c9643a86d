// SPDX-License-Identifier: MIT

package hexgrid

import (
	"slices"

	"github.com/katalvlaran/advent/point"
)

// Grid is a sparse map from cube coordinates to values.
type Grid[T any] struct {
	cells map[point.Vec3]T
}

// New returns an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[point.Vec3]T)}
}

// FromOddRLines reads text laid out in odd-r offset form (line i is row i,
// rune j is column j) and records cells for which keep returns true.
func FromOddRLines[T any](lines []string, keep func(v point.Vec3, r rune) (T, bool)) *Grid[T] {
	g := New[T]()
	for y, l := range lines {
		x := 0
		for _, r := range l {
			v := OddRToCube(point.Point{X: x, Y: y})
			if val, ok := keep(v, r); ok {
				g.cells[v] = val
			}
			x++
		}
	}
	return g
}

// Len is the number of set cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Get returns the value at v, and false if v is unset.
func (g *Grid[T]) Get(v point.Vec3) (T, bool) {
	val, ok := g.cells[v]
	return val, ok
}

// Set stores val at v. Coordinates off the cube lattice are ignored.
func (g *Grid[T]) Set(v point.Vec3, val T) {
	if Valid(v) {
		g.cells[v] = val
	}
}

// Remove unsets v.
func (g *Grid[T]) Remove(v point.Vec3) { delete(g.cells, v) }

// Points lists set cells ordered by row (Z), then X.
func (g *Grid[T]) Points() []point.Vec3 {
	out := make([]point.Vec3, 0, len(g.cells))
	for v := range g.cells {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b point.Vec3) int {
		if a.Z != b.Z {
			return a.Z - b.Z
		}
		return a.X - b.X
	})
	return out
}

// Neighbors returns the set cells one step from v, in point.HexOrderAlt order.
func (g *Grid[T]) Neighbors(v point.Vec3) []point.Vec3 {
	var out []point.Vec3
	for _, name := range point.HexOrderAlt {
		n := v.Add(point.HexDirectionsAlt[name])
		if _, ok := g.cells[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Extents returns the bounding box of set cells in odd-r offset space, and
// false if the grid is empty.
func (g *Grid[T]) Extents() (point.Extent, bool) {
	pts := make([]point.Point, 0, len(g.cells))
	for v := range g.cells {
		pts = append(pts, CubeToOddR(v))
	}
	return point.ExtentOf(pts)
}

// Clone returns an independent copy.
func (g *Grid[T]) Clone() *Grid[T] {
	return g.mapCoords(func(v point.Vec3) point.Vec3 { return v })
}

// Translate returns a copy with every cell moved by off. An offset off the
// lattice returns an unchanged copy.
func (g *Grid[T]) Translate(off point.Vec3) *Grid[T] {
	if !Valid(off) {
		return g.Clone()
	}
	return g.mapCoords(func(v point.Vec3) point.Vec3 { return v.Add(off) })
}

// Flip returns the grid mirrored across r.
func (g *Grid[T]) Flip(r Reflection) *Grid[T] {
	return g.mapCoords(func(v point.Vec3) point.Vec3 { return Reflect(v, r) })
}

// Rotate60 returns the grid turned one sixth clockwise about the origin.
func (g *Grid[T]) Rotate60() *Grid[T] {
	return g.mapCoords(Rotate60)
}

// Rotate returns the grid turned k sixths clockwise (k may be negative).
func (g *Grid[T]) Rotate(k int) *Grid[T] {
	return g.mapCoords(func(v point.Vec3) point.Vec3 { return RotateBy(v, k) })
}

func (g *Grid[T]) mapCoords(f func(point.Vec3) point.Vec3) *Grid[T] {
	out := &Grid[T]{cells: make(map[point.Vec3]T, len(g.cells))}
	for v, val := range g.cells {
		out.cells[f(v)] = val
	}
	return out
}

// Blit copies every cell of src into dst, shifted by offset.
func Blit[T any](dst *Grid[T], offset point.Vec3, src *Grid[T]) {
	for v, val := range src.cells {
		dst.Set(v.Add(offset), val)
	}
}

// Equal reports whether a and b hold the same cells with equal values.
func Equal[T comparable](a, b *Grid[T]) bool {
	if len(a.cells) != len(b.cells) {
		return false
	}
	for v, va := range a.cells {
		if vb, ok := b.cells[v]; !ok || va != vb {
			return false
		}
	}
	return true
}
