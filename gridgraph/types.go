// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/advent/point"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadDegree indicates a connectivity other than 4 or 8.
	ErrBadDegree = errors.New("gridgraph: degree must be 4 or 8")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Passable reports whether cell p holding v is a graph vertex.
type Passable[T any] func(p point.Point, v T) bool

// Cost prices the move from→to; false forbids it.
type Cost[T any] func(from point.Point, fv T, to point.Point, tv T) (int64, bool)

// All treats every set cell as passable.
func All[T any](point.Point, T) bool { return true }

// UnitCost permits every move at cost 1.
func UnitCost[T any](point.Point, T, point.Point, T) (int64, bool) { return 1, true }

// Equals returns a Passable accepting cells equal to want.
func Equals[T comparable](want T) Passable[T] {
	return func(_ point.Point, v T) bool { return v == want }
}

// NotEquals returns a Passable rejecting cells equal to wall.
func NotEquals[T comparable](wall T) Passable[T] {
	return func(_ point.Point, v T) bool { return v != wall }
}

func offsets(degree int) ([]point.Point, error) {
	switch degree {
	case 4:
		return point.Directions, nil
	case 8:
		return point.DirectionsInclDiagonals, nil
	}
	return nil, ErrBadDegree
}
