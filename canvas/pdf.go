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
	"math"

	"github.com/jung-kurt/gofpdf"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// PDFOptions control the output of [WritePDF].
type PDFOptions struct {
	// Width and Height give the page size in PDF points.  If either is
	// zero, the page has the size of the scene.
	Width, Height float64

	Background     *Color
	PreserveHeight bool

	// StrokeWidth is used for outlines which don't specify a width.
	// Zero means 1.
	StrokeWidth float64
}

// WritePDF writes v as a one-page PDF document.
func WritePDF(w io.Writer, v *VectorCanvas, opts *PDFOptions) error {
	if opts == nil {
		opts = &PDFOptions{}
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = v.Size.X, v.Size.Y
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineJoinStyle("miter")

	if bg := opts.Background; bg != nil {
		setFill(pdf, *bg, 1)
		pdf.Rect(0, 0, width, height, "F")
	}

	m := viewTransform(v.Size, width, height, opts.PreserveHeight)
	lineScale := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
	defaultWidth := opts.StrokeWidth
	if defaultWidth <= 0 {
		defaultWidth = 1
	}

	var pts []gofpdf.PointType
	for _, e := range v.elements {
		if len(e.Points) < 3 {
			continue
		}
		pts = pts[:0]
		for _, p := range e.Points {
			q := apply(m, p)
			pts = append(pts, gofpdf.PointType{X: q.X, Y: q.Y})
		}
		if f := e.Fill; f != nil {
			setFill(pdf, f.Color, f.Opacity)
			pdf.Polygon(pts, "F")
		}
		if o := e.Outline; o != nil {
			lw := o.Width
			if lw <= 0 {
				lw = defaultWidth
			}
			n := o.Color.NRGBA()
			pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
			pdf.SetAlpha(clamp01(o.Color.A*o.Opacity), "Normal")
			pdf.SetLineWidth(lw * lineScale)
			pdf.Polygon(pts, "D")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("canvas: writing PDF: %w", err)
	}
	return nil
}

func setFill(pdf *gofpdf.Fpdf, c Color, opacity float64) {
	n := c.NRGBA()
	pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	pdf.SetAlpha(clamp01(c.A*opacity), "Normal")
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
