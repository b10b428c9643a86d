// SPDX-License-Identifier: MIT

package draw

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// extentOf returns the fixed rect, or the union of the layer extents.
func extentOf[T any](rect *point.Extent, layers []grid.Grid[T]) (point.Extent, bool) {
	if rect != nil {
		return *rect, true
	}
	var (
		e  point.Extent
		ok bool
	)
	for _, l := range layers {
		le, lok := l.Extents()
		switch {
		case !lok:
		case !ok:
			e, ok = le, true
		default:
			e = e.Union(le)
		}
	}
	return e, ok
}

// PrintDrawer writes grids as text, one rune per cell.
type PrintDrawer[T any] struct {
	conv   func(T) rune
	blank  rune
	opts   options
	closed bool
}

// NewPrintDrawer returns a text drawer. Unset cells render as blank.
func NewPrintDrawer[T any](conv func(T) rune, blank rune, opts ...Option) (*PrintDrawer[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &PrintDrawer[T]{conv: conv, blank: blank, opts: o}, nil
}

// Draw writes g. An empty grid writes nothing.
func (d *PrintDrawer[T]) Draw(g grid.Grid[T]) error { return d.DrawLayers(g) }

// DrawLayers writes the layers overlaid in order.
func (d *PrintDrawer[T]) DrawLayers(layers ...grid.Grid[T]) error {
	if d.closed {
		return ErrClosed
	}
	e, ok := extentOf(d.opts.rect, layers)
	if !ok {
		return nil
	}
	_, err := fmt.Fprint(d.opts.out, render(e, layers, d.conv, d.blank))
	return err
}

// Close marks the drawer closed.
func (d *PrintDrawer[T]) Close() error {
	d.closed = true
	return nil
}

// Render returns g as text over its own extent, one line per row.
func Render[T any](g grid.Grid[T], conv func(T) rune, blank rune) string {
	e, ok := g.Extents()
	if !ok {
		return ""
	}
	return render(e, []grid.Grid[T]{g}, conv, blank)
}

func render[T any](e point.Extent, layers []grid.Grid[T], conv func(T) rune, blank rune) string {
	w, h := e.Width(), e.Height()
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = blank
	}
	for _, l := range layers {
		for _, p := range l.Points() {
			if !e.Contains(p) {
				continue
			}
			v, _ := l.Get(p)
			cells[(p.Y-e.Min.Y)*w+p.X-e.Min.X] = conv(v)
		}
	}
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(string(cells[y*w : (y+1)*w]))
		b.WriteByte('\n')
	}
	return b.String()
}
