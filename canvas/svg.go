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
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGRenderer writes a VectorCanvas as an SVG document.
type SVGRenderer struct {
	// Width and Height give the size of the document.
	Width, Height float64

	// Background, if set, is painted as a rectangle under the scene.
	Background *Color

	// Antialias off asks the viewer for crisp polygon edges.
	Antialias bool

	// PreserveHeight has the same meaning as for [Renderer].
	PreserveHeight bool

	// StrokeWidth is used for outlines which don't specify a width.
	// Zero means 1.
	StrokeWidth float64
}

// Render writes the SVG document for v to w.
func (r *SVGRenderer) Render(w io.Writer, v *VectorCanvas) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Decimals = 3

	doc.Startview(r.Width, r.Height, 0, 0, r.Width, r.Height)
	if bg := r.Background; bg != nil {
		doc.Rect(0, 0, r.Width, r.Height, fillAttrs(*bg, 1)...)
	}

	m := viewTransform(v.Size, r.Width, r.Height, r.PreserveHeight)
	group := []string{
		fmt.Sprintf(`transform="matrix(%g %g %g %g %g %g)"`, m[0], m[1], m[2], m[3], m[4], m[5]),
	}
	if !r.Antialias {
		group = append(group, `shape-rendering="crispEdges"`)
	}
	doc.Group(group...)

	defaultWidth := r.StrokeWidth
	if defaultWidth <= 0 {
		defaultWidth = 1
	}
	var xs, ys []float64
	for _, e := range v.elements {
		if len(e.Points) < 2 {
			continue
		}
		xs, ys = xs[:0], ys[:0]
		for _, p := range e.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}

		var attrs []string
		if f := e.Fill; f != nil {
			attrs = fillAttrs(f.Color, f.Opacity)
		} else {
			attrs = append(attrs, `fill="none"`)
		}
		if o := e.Outline; o != nil {
			width := o.Width
			if width <= 0 {
				width = defaultWidth
			}
			attrs = append(attrs,
				fmt.Sprintf(`stroke="%s"`, o.Color.Hex()),
				fmt.Sprintf(`stroke-opacity="%g"`, clamp01(o.Color.A*o.Opacity)),
				fmt.Sprintf(`stroke-width="%g"`, width),
				`stroke-linejoin="miter"`)
		}
		doc.Polygon(xs, ys, attrs...)
	}

	doc.Gend()
	doc.End()
	return ew.err
}

func fillAttrs(c Color, opacity float64) []string {
	return []string{
		fmt.Sprintf(`fill="%s"`, c.Hex()),
		fmt.Sprintf(`fill-opacity="%g"`, clamp01(c.A*opacity)),
	}
}

// errWriter keeps the first write error.  The svg package ignores
// errors from the underlying writer.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
