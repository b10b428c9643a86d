// SPDX-License-Identifier: MIT

// Package hexgrid stores values on a hexagonal lattice addressed by cube
// coordinates (x, y, z) with x+y+z == 0.
//
// Two offset layouts convert to and from cube space:
//
//   - odd-r (pointy-top, odd rows shifted right): OddRToCube / CubeToOddR.
//     Cube X is the axial column and Z the row; steps follow
//     point.HexDirectionsAlt. This is the layout the hex drawers use.
//   - odd-q (flat-top, odd columns shifted down): OddQToCube / CubeToOddQ,
//     with steps from point.HexDirections.
//
// Geometric operations are pure: Flip and Rotate return new grids and every
// coordinate they produce still satisfies x+y+z == 0, since each is a signed
// permutation of the cube axes.
//
//   - Rotate60 maps (x,y,z) to (-z,-x,-y): one clockwise step in screen space.
//   - Flip(ReflectX) fixes X and swaps Y and Z; ReflectXNeg negates that.
//     The six reflections are the six mirror lines of a regular hexagon.
package hexgrid
