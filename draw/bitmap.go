// SPDX-License-Identifier: MIT

package draw

import (
	"fmt"
	"image"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// rasterize paints every layer cell inside e as a tw x th tile.
func rasterize[T any](e point.Extent, layers []grid.Grid[T], tw, th int, bg RGB, tile func(T) ([]RGB, error)) (*image.RGBA, error) {
	img := newCanvas(e.Width()*tw, e.Height()*th, bg)
	for _, l := range layers {
		for _, p := range l.Points() {
			if !e.Contains(p) {
				continue
			}
			v, _ := l.Get(p)
			px, err := tile(v)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %v", err, p)
			}
			ox, oy := (p.X-e.Min.X)*tw, (p.Y-e.Min.Y)*th
			for i, c := range px {
				img.SetRGBA(ox+i%tw, oy+i/tw, c.Color())
			}
		}
	}
	return img, nil
}

// BitmapDrawer renders one pixel per cell to image files under a root.
type BitmapDrawer[T any] struct {
	conv func(T) RGB
	opts options
	sink *sink
}

// NewBitmapDrawer returns a drawer writing to root (see package docs for
// file names). No file is created until the first Draw.
func NewBitmapDrawer[T any](root string, conv func(T) RGB, opts ...Option) (*BitmapDrawer[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &BitmapDrawer[T]{conv: conv, opts: o, sink: newSink(root, o)}, nil
}

// Draw renders g as one image or animation frame. An empty grid without a
// fixed rect produces no frame.
func (d *BitmapDrawer[T]) Draw(g grid.Grid[T]) error { return d.DrawLayers(g) }

// DrawLayers renders the layers overlaid in order into one frame.
func (d *BitmapDrawer[T]) DrawLayers(layers ...grid.Grid[T]) error {
	if d.sink.closed {
		return ErrClosed
	}
	e, ok := extentOf(d.opts.rect, layers)
	if !ok {
		return nil
	}
	img, err := rasterize(e, layers, 1, 1, d.opts.background, func(v T) ([]RGB, error) {
		return []RGB{d.conv(v)}, nil
	})
	if err != nil {
		return err
	}
	return d.sink.add(img)
}

// Frames returns the number of frames drawn so far.
func (d *BitmapDrawer[T]) Frames() int { return d.sink.frames() }

// Close writes any buffered frames and finishes the archive.
func (d *BitmapDrawer[T]) Close() error { return d.sink.close() }

// SpriteDrawer renders each cell as a w x h tile.
type SpriteDrawer[T any] struct {
	w, h int
	conv func(T) []RGB
	opts options
	sink *sink
}

// NewSpriteDrawer returns a drawer whose transform yields w*h colours per
// cell in row-major order.
func NewSpriteDrawer[T any](root string, w, h int, conv func(T) []RGB, opts ...Option) (*SpriteDrawer[T], error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: sprite size %dx%d", ErrOption, w, h)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &SpriteDrawer[T]{w: w, h: h, conv: conv, opts: o, sink: newSink(root, o)}, nil
}

// Draw renders g as one image or animation frame.
func (d *SpriteDrawer[T]) Draw(g grid.Grid[T]) error { return d.DrawLayers(g) }

// DrawLayers renders the layers overlaid in order into one frame.
func (d *SpriteDrawer[T]) DrawLayers(layers ...grid.Grid[T]) error {
	if d.sink.closed {
		return ErrClosed
	}
	e, ok := extentOf(d.opts.rect, layers)
	if !ok {
		return nil
	}
	img, err := rasterize(e, layers, d.w, d.h, d.opts.background, func(v T) ([]RGB, error) {
		px := d.conv(v)
		if len(px) != d.w*d.h {
			return nil, fmt.Errorf("%w: got %d pixels, want %d", ErrSpriteSize, len(px), d.w*d.h)
		}
		return px, nil
	})
	if err != nil {
		return err
	}
	return d.sink.add(img)
}

// Frames returns the number of frames drawn so far.
func (d *SpriteDrawer[T]) Frames() int { return d.sink.frames() }

// Close writes any buffered frames and finishes the archive.
func (d *SpriteDrawer[T]) Close() error { return d.sink.close() }

var (
	_ Drawer[grid.Grid[int]] = (*PrintDrawer[int])(nil)
	_ Drawer[grid.Grid[int]] = (*BitmapDrawer[int])(nil)
	_ Drawer[grid.Grid[int]] = (*SpriteDrawer[int])(nil)
)
