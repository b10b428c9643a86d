// SPDX-License-Identifier: MIT

package draw

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/hexgrid"
	"github.com/katalvlaran/advent/point"
)

// hexExtent returns the rect override or the grid extent in odd-r offset
// space.
func hexExtent[T any](rect *point.Extent, g *hexgrid.Grid[T]) (point.Extent, bool) {
	if rect != nil {
		return *rect, true
	}
	return g.Extents()
}

// HexPrintDrawer writes hex grids as text on a pointy-top odd-r layout:
// two columns per cell, odd rows shifted right by one column.
type HexPrintDrawer[T any] struct {
	conv   func(T) rune
	blank  rune
	opts   options
	closed bool
}

// NewHexPrintDrawer returns a hex text drawer. Unset cells render as blank.
func NewHexPrintDrawer[T any](conv func(T) rune, blank rune, opts ...Option) (*HexPrintDrawer[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &HexPrintDrawer[T]{conv: conv, blank: blank, opts: o}, nil
}

// Draw writes g. An empty grid writes nothing.
func (d *HexPrintDrawer[T]) Draw(g *hexgrid.Grid[T]) error {
	if d.closed {
		return ErrClosed
	}
	e, ok := hexExtent(d.opts.rect, g)
	if !ok {
		return nil
	}
	_, err := fmt.Fprint(d.opts.out, RenderHex(e, g, d.conv, d.blank))
	return err
}

// Close marks the drawer closed.
func (d *HexPrintDrawer[T]) Close() error {
	d.closed = true
	return nil
}

// RenderHex returns the text layout of g over the offset-space extent e.
// Trailing spaces are trimmed from each line.
func RenderHex[T any](e point.Extent, g *hexgrid.Grid[T], conv func(T) rune, blank rune) string {
	var b strings.Builder
	for y := e.Min.Y; y <= e.Max.Y; y++ {
		var line strings.Builder
		if y&1 == 1 {
			line.WriteByte(' ')
		}
		for x := e.Min.X; x <= e.Max.X; x++ {
			r := blank
			if v, ok := g.Get(hexgrid.OddRToCube(point.Point{X: x, Y: y})); ok {
				r = conv(v)
			}
			line.WriteRune(r)
			line.WriteByte(' ')
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// hexMask is the fixed pointy-top tile: 'o' outline, '#' fill.
var hexMask = [...]string{
	"...oo...",
	".oo##oo.",
	"o######o",
	"o######o",
	"o######o",
	"o######o",
	".oo##oo.",
	"...oo...",
}

// Hex tile geometry in pixels.
const (
	HexTileWidth  = 8
	HexTileHeight = 8
	hexRowStep    = 6
)

// HexBitmapDrawer renders hex cells as outlined hexagons filled with one
// colour per cell.
type HexBitmapDrawer[T any] struct {
	conv func(T) RGB
	opts options
	sink *sink
}

// NewHexBitmapDrawer returns a hex image drawer writing to root.
func NewHexBitmapDrawer[T any](root string, conv func(T) RGB, opts ...Option) (*HexBitmapDrawer[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &HexBitmapDrawer[T]{conv: conv, opts: o, sink: newSink(root, o)}, nil
}

// HexCanvasSize returns the image size for an offset-space extent.
func HexCanvasSize(e point.Extent) (w, h int) {
	return e.Width()*HexTileWidth + HexTileWidth/2, (e.Height()-1)*hexRowStep + HexTileHeight
}

// hexOrigin is the top-left pixel of the tile for offset position p.
func hexOrigin(e point.Extent, p point.Point) (int, int) {
	x := (p.X - e.Min.X) * HexTileWidth
	if p.Y&1 == 1 {
		x += HexTileWidth / 2
	}
	return x, (p.Y - e.Min.Y) * hexRowStep
}

// Draw renders g as one image or animation frame.
func (d *HexBitmapDrawer[T]) Draw(g *hexgrid.Grid[T]) error {
	if d.sink.closed {
		return ErrClosed
	}
	e, ok := hexExtent(d.opts.rect, g)
	if !ok {
		return nil
	}
	w, h := HexCanvasSize(e)
	img := newCanvas(w, h, d.opts.background)
	outline := d.opts.outline.Color()
	for _, v := range g.Points() {
		p := hexgrid.CubeToOddR(v)
		if !e.Contains(p) {
			continue
		}
		val, _ := g.Get(v)
		fill := d.conv(val).Color()
		ox, oy := hexOrigin(e, p)
		for my, row := range hexMask {
			for mx, m := range row {
				switch m {
				case 'o':
					img.SetRGBA(ox+mx, oy+my, outline)
				case '#':
					img.SetRGBA(ox+mx, oy+my, fill)
				}
			}
		}
	}
	return d.sink.add(img)
}

// Frames returns the number of frames drawn so far.
func (d *HexBitmapDrawer[T]) Frames() int { return d.sink.frames() }

// Close writes any buffered frames and finishes the archive.
func (d *HexBitmapDrawer[T]) Close() error { return d.sink.close() }

var (
	_ Drawer[*hexgrid.Grid[int]] = (*HexPrintDrawer[int])(nil)
	_ Drawer[*hexgrid.Grid[int]] = (*HexBitmapDrawer[int])(nil)
)
