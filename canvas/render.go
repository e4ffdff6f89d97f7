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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/raster"
)

// Renderer paints a VectorCanvas into a RasterCanvas.
type Renderer struct {
	// Width and Height give the size of the output in pixels.
	Width, Height int

	// Background, if set, is painted under the scene.  Otherwise the
	// output starts transparent.
	Background *Color

	// Antialias enables fractional pixel coverage along polygon edges.
	// Without antialiasing a pixel is painted if at least half of it is
	// covered.
	Antialias bool

	// PreserveHeight keeps the aspect ratio of the scene: the scene is
	// scaled to the output height and centred horizontally.  Otherwise
	// both axes are scaled independently to fill the output.
	PreserveHeight bool

	// StrokeWidth is used for outlines which don't specify a width.
	// Zero means 1.
	StrokeWidth float64
}

// Render paints v and returns the result.  The output has size
// Width × Height; negative sizes give an empty canvas.
func (r *Renderer) Render(v *VectorCanvas) *RasterCanvas {
	out := NewRasterCanvas(r.Width, r.Height)
	if out.width == 0 || out.height == 0 {
		return out
	}
	if r.Background != nil {
		bg := *r.Background
		for i := range out.pix {
			out.pix[i] = bg
		}
	}

	rz := raster.NewRasterizer(rect.Rect{URx: float64(r.Width), URy: float64(r.Height)})
	rz.CTM = viewTransform(v.Size, float64(r.Width), float64(r.Height), r.PreserveHeight)
	rz.Join = graphics.LineJoinMiter

	defaultWidth := r.StrokeWidth
	if defaultWidth <= 0 {
		defaultWidth = 1
	}

	for _, e := range v.elements {
		if len(e.Points) < 2 {
			continue
		}
		if f := e.Fill; f != nil {
			if alpha := clamp01(f.Color.A * f.Opacity); alpha > 0 {
				rz.FillNonZero(e.Path(), r.compositor(out, f.Color, alpha))
			}
		}
		if o := e.Outline; o != nil {
			if alpha := clamp01(o.Color.A * o.Opacity); alpha > 0 {
				rz.Width = o.Width
				if rz.Width <= 0 {
					rz.Width = defaultWidth
				}
				rz.Stroke(e.Path(), r.compositor(out, o.Color, alpha))
			}
		}
	}
	return out
}

// compositor returns an emit function which paints col with the given
// alpha over the pixels of out, using the source-over operator on
// straight alpha colours.
func (r *Renderer) compositor(out *RasterCanvas, col Color, alpha float64) raster.EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := out.pix[y*out.width+xMin:]
		for i, c := range coverage {
			cov := float64(c)
			if !r.Antialias {
				if cov < 0.5 {
					continue
				}
				cov = 1
			}
			a := alpha * cov
			if a <= 0 {
				continue
			}
			row[i] = over(col, a, row[i])
		}
	}
}

// over composites src with opacity a over dst.
func over(src Color, a float64, dst Color) Color {
	da := dst.A * (1 - a)
	outA := a + da
	if outA <= 0 {
		return Transparent
	}
	return Color{
		R: (src.R*a + dst.R*da) / outA,
		G: (src.G*a + dst.G*da) / outA,
		B: (src.B*a + dst.B*da) / outA,
		A: outA,
	}
}

// viewTransform maps scene coordinates to output coordinates.
func viewTransform(size vec.Vec2, width, height float64, preserveHeight bool) matrix.Matrix {
	if size.X <= 0 || size.Y <= 0 {
		return matrix.Identity
	}
	if preserveHeight {
		s := height / size.Y
		return matrix.Scale(s, s).Translate((width-size.X*s)/2, 0)
	}
	return matrix.Scale(width/size.X, height/size.Y)
}
