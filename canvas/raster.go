// seehuhn.de/go/genart - generative art from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// RasterCanvas is a fixed size grid of colours, stored in row-major order.
type RasterCanvas struct {
	width, height int
	pix           []Color
}

// NewRasterCanvas returns a transparent canvas of the given size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	width, height = max(width, 0), max(height, 0)
	return &RasterCanvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// FromNRGBA copies an 8-bit image into a new canvas.  Each channel is
// divided by 255.
func FromNRGBA(img *image.NRGBA) *RasterCanvas {
	b := img.Bounds()
	c := NewRasterCanvas(b.Dx(), b.Dy())
	for y := range c.height {
		row := img.Pix[y*img.Stride:]
		for x := range c.width {
			p := row[4*x : 4*x+4 : 4*x+4]
			c.pix[y*c.width+x] = Color{
				R: float64(p[0]) / 255,
				G: float64(p[1]) / 255,
				B: float64(p[2]) / 255,
				A: float64(p[3]) / 255,
			}
		}
	}
	return c
}

// FromImage copies an arbitrary image into a new canvas, converting it to
// non-premultiplied 8-bit colour first.
func FromImage(img image.Image) *RasterCanvas {
	if n, ok := img.(*image.NRGBA); ok {
		return FromNRGBA(n)
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return FromNRGBA(n)
}

// NRGBA converts the canvas to an 8-bit image.  Every channel is
// multiplied by 255 and truncated, so that FromNRGBA(img).NRGBA()
// reproduces img exactly.
func (c *RasterCanvas) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, col := range c.pix {
		p := img.Pix[4*i : 4*i+4 : 4*i+4]
		p[0] = to8(col.R)
		p[1] = to8(col.G)
		p[2] = to8(col.B)
		p[3] = to8(col.A)
	}
	return img
}

// Width returns the number of pixel columns.
func (c *RasterCanvas) Width() int { return c.width }

// Height returns the number of pixel rows.
func (c *RasterCanvas) Height() int { return c.height }

// At returns the colour of pixel (x, y).  Pixels outside the canvas read
// as opaque black.
func (c *RasterCanvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Black
	}
	return c.pix[y*c.width+x]
}

// Set changes the colour of pixel (x, y).  The caller must make sure that
// the pixel lies inside the canvas; Set panics otherwise.
func (c *RasterCanvas) Set(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	c.pix[y*c.width+x] = col
}

// Pix returns the pixel slice, in row-major order.  Changes to the slice
// change the canvas.
func (c *RasterCanvas) Pix() []Color {
	return c.pix
}

// Clone returns a deep copy of the canvas.
func (c *RasterCanvas) Clone() *RasterCanvas {
	return &RasterCanvas{
		width:  c.width,
		height: c.height,
		pix:    slices.Clone(c.pix),
	}
}
