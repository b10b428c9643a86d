// SPDX-License-Identifier: MIT

// Package draw renders grids as text or images.
//
// A drawer is a sink for grid values with a per-cell transform:
//
//	PrintDrawer[T]      cell -> rune, one character per cell
//	BitmapDrawer[T]     cell -> RGB, one pixel per cell
//	SpriteDrawer[T]     cell -> W*H RGB tile
//	HexPrintDrawer[T]   hex cell -> rune on a pointy-top odd-r layout
//	HexBitmapDrawer[T]  hex cell -> fill colour inside a fixed hex outline
//
// Every drawer recomputes the grid extent on each Draw unless WithRect
// fixes it, which keeps all frames of an animation on the same canvas.
// Cells are painted in order, so DrawLayers overlays later grids on
// earlier ones.
//
// Image drawers write to a file root chosen at construction:
//
//	<root>.ppm               still image, rewritten on every Draw
//	<root>_000000.ppm ...    animation frames (WithAnimation)
//	<root>.ppm.zst           all frames as one zstd-compressed PPM stream
//	                         (WithArchive)
//
// WithFormat(FormatPNG) switches the extension and encoding to PNG and
// WithScale(n) enlarges every image n times with nearest-neighbour
// sampling.
//
// Animation frames are written by the Draw that produces them, or every n
// frames with WithFlushEvery(n); WithFlushEvery(0) buffers until Close.
// Write errors are returned by the Draw or Close call that attempted the
// write; frames already on disk stay there. Close must be called to flush
// any frames still buffered.
//
// Errors:
//
//	ErrClosed     - Draw after Close.
//	ErrOption     - invalid option value.
//	ErrSpriteSize - a sprite transform returned the wrong number of pixels.
package draw
