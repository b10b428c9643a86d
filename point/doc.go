// SPDX-License-Identifier: MIT

// Package point defines the integer coordinate types shared by every grid,
// search and drawing package: Point (2D), Vec3 (3D and cube-hex), Extent
// (inclusive bounding box), the named direction constants with their
// rotation and opposite tables, and the two hex direction conventions.
//
// Coordinates follow screen convention: X grows to the right and Y grows
// downward, so North is (0,-1).
//
// The direction tables are package-level values built once at
// initialisation and never mutated afterwards.
package point
