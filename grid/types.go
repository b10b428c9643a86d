// SPDX-License-Identifier: MIT

package grid

import (
	"errors"

	"github.com/katalvlaran/advent/point"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input rows are empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is the capability set shared by dense and sparse grids.
type Grid[T any] interface {
	// Get returns the value at p, and false if p is out of bounds or unset.
	Get(p point.Point) (T, bool)
	// Set stores v at p. Dense grids ignore out-of-bounds writes.
	Set(p point.Point, v T)
	// Remove unsets p (sparse) or writes the blank value (dense).
	Remove(p point.Point)
	// Extents returns the inclusive bounding box of set cells, and false if
	// no cell is set.
	Extents() (point.Extent, bool)
	// Points lists every set cell in row-major order (by Y, then X).
	Points() []point.Point
}

// Connectivity degrees accepted by Neighbors and the search adapters.
const (
	Degree4 = 4
	Degree8 = 8
)
