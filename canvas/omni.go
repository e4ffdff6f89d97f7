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

import "seehuhn.de/go/geom/vec"

// Kind identifies the representation held by an OmniCanvas.
type Kind int

// These are the two representations of a picture.
const (
	KindVector Kind = iota
	KindRaster
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindRaster:
		return "raster"
	default:
		return "unknown"
	}
}

// OmniCanvas holds a picture either as a vector scene or as a raster
// image.  Conversions between the two are explicit.  The As* methods
// leave the OmniCanvas unchanged, the Into* methods hand over its
// contents and the OmniCanvas must not be used afterwards.
type OmniCanvas struct {
	vector *VectorCanvas
	raster *RasterCanvas
}

// FromVector wraps a vector scene.
func FromVector(v *VectorCanvas) OmniCanvas {
	return OmniCanvas{vector: v}
}

// FromRaster wraps a raster image.
func FromRaster(r *RasterCanvas) OmniCanvas {
	return OmniCanvas{raster: r}
}

// Kind reports which representation o holds.
func (o OmniCanvas) Kind() Kind {
	if o.raster != nil {
		return KindRaster
	}
	return KindVector
}

// Vector returns the vector scene, if o holds one.
func (o OmniCanvas) Vector() (*VectorCanvas, bool) {
	return o.vector, o.vector != nil
}

// Raster returns the raster image, if o holds one.
func (o OmniCanvas) Raster() (*RasterCanvas, bool) {
	return o.raster, o.raster != nil
}

// VectorizerStyle selects how a raster image is turned into a scene.
type VectorizerStyle int

const (
	// Pixels turns every pixel into a filled unit square at the pixel
	// position.  The squares are added in row-major order.
	Pixels VectorizerStyle = iota
)

// RasterOptions control the conversion of a scene into a raster image.
// See [Renderer] for the meaning of the fields.
type RasterOptions struct {
	Width, Height  int
	Antialias      bool
	Background     *Color
	PreserveHeight bool
}

// AsVector returns a vector version of a copy of o.  This is expensive
// for raster images.
func (o OmniCanvas) AsVector(style VectorizerStyle) *VectorCanvas {
	return o.clone().IntoVector(style)
}

// IntoVector converts o into a vector scene.  If o already holds a
// scene, this scene is returned.
func (o OmniCanvas) IntoVector(style VectorizerStyle) *VectorCanvas {
	if o.raster == nil {
		if o.vector == nil {
			return &VectorCanvas{}
		}
		return o.vector
	}
	return vectorize(o.raster, style)
}

// AsRaster returns a raster version of a copy of o.
func (o OmniCanvas) AsRaster(opts RasterOptions) *RasterCanvas {
	return o.clone().IntoRaster(opts)
}

// IntoRaster converts o into a raster image.  If o already holds an
// image, this image is returned unchanged; in particular it is not
// resized to the requested resolution.
func (o OmniCanvas) IntoRaster(opts RasterOptions) *RasterCanvas {
	if o.raster != nil {
		return o.raster
	}
	v := o.vector
	if v == nil {
		v = &VectorCanvas{}
	}
	r := &Renderer{
		Width:          opts.Width,
		Height:         opts.Height,
		Background:     opts.Background,
		Antialias:      opts.Antialias,
		PreserveHeight: opts.PreserveHeight,
	}
	return r.Render(v)
}

func (o OmniCanvas) clone() OmniCanvas {
	var res OmniCanvas
	if o.vector != nil {
		res.vector = o.vector.Clone()
	}
	if o.raster != nil {
		res.raster = o.raster.Clone()
	}
	return res
}

func vectorize(r *RasterCanvas, style VectorizerStyle) *VectorCanvas {
	switch style {
	case Pixels:
		w, h := r.width, r.height
		v := &VectorCanvas{
			Size:     vec.Vec2{X: float64(w), Y: float64(h)},
			elements: make([]Element, 0, w*h),
		}
		fills := make([]Fill, w*h)
		for y := range h {
			for x := range w {
				i := y*w + x
				fills[i] = Fill{Color: r.pix[i], Opacity: 1}
				v.DrawRect(
					vec.Vec2{X: float64(x), Y: float64(y)},
					vec.Vec2{X: float64(x + 1), Y: float64(y + 1)},
					&fills[i], nil)
			}
		}
		return v
	default:
		panic("canvas: unknown vectorizer style")
	}
}
