// SPDX-License-Identifier: MIT

// Package grid provides one interface over two 2D storage strategies so that
// every search and drawing algorithm composes with either:
//
//   - Dense[T]:  row-major storage of a full W×H rectangle. Every in-bounds
//     cell is set; Extents is always [0,0]..[W-1,H-1]; Remove writes the
//     designated blank value (WithBlank) or the zero value.
//   - Sparse[T]: a map from point to value. Only inserted points exist and
//     Extents is computed over the keys, optionally widened by Grow so that
//     blank borders stay drawable.
//
// Invariant for both: p is in g.Points() iff g.Get(p) reports ok.
//
// Helpers operate on the Grid[T] interface: Blit, Map, Count, Neighbors,
// Equal. Sparse adds Transpositions (the eight images under the dihedral
// group of the square), and both variants expose a content Hash used by
// DetectCycle to find repeating simulation states.
//
// Errors:
//
//   - ErrEmptyGrid       rows slice has no rows or no columns.
//   - ErrNonRectangular  rows have differing lengths.
package grid
