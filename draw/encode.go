// SPDX-License-Identifier: MIT

package draw

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// WritePPM encodes img as a binary PPM (P6).
func WritePPM(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			bw.Write(img.Pix[i : i+3])
		}
	}
	return bw.Flush()
}

func encode(w io.Writer, img *image.RGBA, f Format) error {
	if f == FormatPNG {
		return png.Encode(w, img)
	}
	return WritePPM(w, img)
}

// scale enlarges img n times using nearest-neighbour sampling.
func scale(img *image.RGBA, n int) *image.RGBA {
	if n == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// newCanvas returns a w x h image filled with bg.
func newCanvas(w, h int, bg RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	c := bg.Color()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}
