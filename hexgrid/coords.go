// SPDX-License-Identifier: MIT

package hexgrid

import "github.com/katalvlaran/advent/point"

// OddRToCube converts a pointy-top odd-r offset position (X=col, Y=row).
func OddRToCube(p point.Point) point.Vec3 {
	x := p.X - (p.Y-(p.Y&1))/2
	z := p.Y
	return point.Vec3{X: x, Y: -x - z, Z: z}
}

// CubeToOddR is the inverse of OddRToCube.
func CubeToOddR(v point.Vec3) point.Point {
	return point.Point{X: v.X + (v.Z-(v.Z&1))/2, Y: v.Z}
}

// OddQToCube converts a flat-top odd-q offset position (X=col, Y=row).
func OddQToCube(p point.Point) point.Vec3 {
	x := p.X
	z := p.Y - (p.X-(p.X&1))/2
	return point.Vec3{X: x, Y: -x - z, Z: z}
}

// CubeToOddQ is the inverse of OddQToCube.
func CubeToOddQ(v point.Vec3) point.Point {
	return point.Point{X: v.X, Y: v.Z + (v.X-(v.X&1))/2}
}

// AxialToCube lifts axial (q, r) to cube coordinates.
func AxialToCube(q, r int) point.Vec3 {
	return point.Vec3{X: q, Y: -q - r, Z: r}
}

// Valid reports whether v lies on the cube lattice.
func Valid(v point.Vec3) bool { return v.X+v.Y+v.Z == 0 }

// Distance is the hex step distance between a and b.
func Distance(a, b point.Vec3) int { return point.ManhattanHexCube(a, b) }

// Reflection names one of the six mirror lines of a hexagon.
type Reflection int

// Reflections fixing one axis and swapping the other two, then the same
// swaps with all three axes negated.
const (
	ReflectX Reflection = iota
	ReflectY
	ReflectZ
	ReflectXNeg
	ReflectYNeg
	ReflectZNeg
)

// Reflections lists every Reflection.
var Reflections = []Reflection{ReflectX, ReflectY, ReflectZ, ReflectXNeg, ReflectYNeg, ReflectZNeg}

// Reflect mirrors v across r. Unknown reflections return v unchanged.
func Reflect(v point.Vec3, r Reflection) point.Vec3 {
	switch r {
	case ReflectX:
		return point.Vec3{X: v.X, Y: v.Z, Z: v.Y}
	case ReflectY:
		return point.Vec3{X: v.Z, Y: v.Y, Z: v.X}
	case ReflectZ:
		return point.Vec3{X: v.Y, Y: v.X, Z: v.Z}
	case ReflectXNeg:
		return point.Vec3{X: -v.X, Y: -v.Z, Z: -v.Y}
	case ReflectYNeg:
		return point.Vec3{X: -v.Z, Y: -v.Y, Z: -v.X}
	case ReflectZNeg:
		return point.Vec3{X: -v.Y, Y: -v.X, Z: -v.Z}
	}
	return v
}

// Rotate60 turns v one sixth clockwise about the origin.
func Rotate60(v point.Vec3) point.Vec3 {
	return point.Vec3{X: -v.Z, Y: -v.X, Z: -v.Y}
}

// RotateBy turns v by k sixths clockwise; negative k turns anticlockwise.
func RotateBy(v point.Vec3, k int) point.Vec3 {
	k %= 6
	if k < 0 {
		k += 6
	}
	for i := 0; i < k; i++ {
		v = Rotate60(v)
	}
	return v
}
