// SPDX-License-Identifier: MIT

package point

import "fmt"

// Point is a 2D integer coordinate. It is comparable and usable as a map key.
type Point struct {
	X, Y int
}

// Vec3 is a 3D integer coordinate; hex grids use it for cube coordinates.
type Vec3 struct {
	X, Y, Z int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Mul scales p by k.
func (p Point) Mul(k int) Point { return Point{p.X * k, p.Y * k} }

// RotateLeft rotates p by 90° counter-clockwise (as seen on screen) about the origin.
func (p Point) RotateLeft() Point { return Point{p.Y, -p.X} }

// RotateRight rotates p by 90° clockwise (as seen on screen) about the origin.
func (p Point) RotateRight() Point { return Point{-p.Y, p.X} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Mul scales v by k.
func (v Vec3) Mul(k int) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns |Δx|+|Δy|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|Δx|,|Δy|), the king-move distance.
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// ManhattanVec3 returns |Δx|+|Δy|+|Δz|.
func ManhattanVec3(a, b Vec3) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

// ManhattanHexCube returns the hex step distance between two cube
// coordinates: (|Δx|+|Δy|+|Δz|)/2.
func ManhattanHexCube(a, b Vec3) int {
	return ManhattanVec3(a, b) / 2
}

// Neighbors returns the four orthogonal neighbours of p in the canonical
// order of Directions.
func Neighbors(p Point) []Point {
	out := make([]Point, len(Directions))
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}

// NeighborsInclDiagonals returns all eight neighbours of p in the order of
// DirectionsInclDiagonals.
func NeighborsInclDiagonals(p Point) []Point {
	out := make([]Point, len(DirectionsInclDiagonals))
	for i, d := range DirectionsInclDiagonals {
		out[i] = p.Add(d)
	}
	return out
}

// PlotLine returns the lattice points of the Bresenham line from a to b,
// both ends included. Horizontal, vertical and 45° lines contain every
// intervening cell. The point set is the same whichever end is passed first.
func PlotLine(a, b Point) []Point {
	// Walk from the lexicographically smaller end so that ties in the error
	// term resolve identically for (a,b) and (b,a).
	reversed := false
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
		reversed = true
	}
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	out := make([]Point, 0, max(dx, -dy)+1)
	errTerm := dx + dy
	p := a
	for {
		out = append(out, p)
		if p == b {
			break
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			p.X += sx
		}
		if e2 <= dx {
			errTerm += dx
			p.Y += sy
		}
	}
	if reversed {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
