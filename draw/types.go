// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/katalvlaran/advent/point"
)

var (
	// ErrClosed is returned by Draw on a closed drawer.
	ErrClosed = errors.New("draw: drawer is closed")

	// ErrOption indicates an invalid option value.
	ErrOption = errors.New("draw: invalid option")

	// ErrSpriteSize is returned when a sprite transform yields a tile of
	// the wrong size.
	ErrSpriteSize = errors.New("draw: sprite tile has wrong size")
)

// Drawer is the common interface of all drawers. G is the grid type drawn:
// grid.Grid[T] for square drawers and *hexgrid.Grid[T] for hex drawers.
type Drawer[G any] interface {
	Draw(g G) error
	io.Closer
}

// RGB is a colour; components are clamped to [0,255] when written.
type RGB struct {
	R, G, B int
}

// Common colours.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Gray  = RGB{96, 96, 96}
)

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// Color converts c to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: 0xff}
}

// Format selects the image encoding.
type Format int

const (
	FormatPPM Format = iota
	FormatPNG
)

func (f Format) ext() string {
	if f == FormatPNG {
		return ".png"
	}
	return ".ppm"
}

// Option configures a drawer. Options that do not apply to a drawer are
// ignored.
type Option func(*options)

type options struct {
	rect       *point.Extent
	out        io.Writer
	format     Format
	scale      int
	animate    bool
	flushEvery int
	archive    bool
	background RGB
	outline    RGB
	err        error
}

func defaultOptions() options {
	return options{out: os.Stdout, scale: 1, flushEvery: 1, background: Black, outline: Gray}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}

// WithRect fixes the drawn extent instead of computing it per Draw.
func WithRect(e point.Extent) Option {
	return func(o *options) {
		if e.Max.X < e.Min.X || e.Max.Y < e.Min.Y {
			o.err = fmt.Errorf("%w: empty rect %v..%v", ErrOption, e.Min, e.Max)
			return
		}
		o.rect = &e
	}
}

// WithOutput sets the writer of text drawers (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			o.err = fmt.Errorf("%w: nil output", ErrOption)
			return
		}
		o.out = w
	}
}

// WithFormat selects PPM (default) or PNG output.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != FormatPPM && f != FormatPNG {
			o.err = fmt.Errorf("%w: format %d", ErrOption, int(f))
			return
		}
		o.format = f
	}
}

// WithScale enlarges images n times (n >= 1).
func WithScale(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: scale %d", ErrOption, n)
			return
		}
		o.scale = n
	}
}

// WithAnimation writes numbered frames instead of a single still, one file
// per Draw unless WithFlushEvery says otherwise.
func WithAnimation() Option {
	return func(o *options) { o.animate = true }
}

// WithFlushEvery writes buffered frames after every n Draw calls (default
// 1). Zero buffers until Close, so write errors surface only there. Implies
// WithAnimation.
func WithFlushEvery(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: flush every %d", ErrOption, n)
			return
		}
		o.animate = true
		o.flushEvery = n
	}
}

// WithArchive also writes every frame to <root>.ppm.zst.
func WithArchive() Option {
	return func(o *options) { o.archive = true }
}

// WithBackground sets the colour of unset cells (default Black).
func WithBackground(c RGB) Option {
	return func(o *options) { o.background = c }
}

// WithOutline sets the hex outline colour (default Gray).
func WithOutline(c RGB) Option {
	return func(o *options) { o.outline = c }
}
