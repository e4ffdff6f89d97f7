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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// VectorCanvas is a scene of polygons in paint order.  Elements can only
// be appended; later elements are painted over earlier ones.
type VectorCanvas struct {
	// Size is the extent of the scene.  The scene covers the rectangle
	// from (0, 0) to Size, with y pointing down.
	Size vec.Vec2

	elements []Element
}

// Element is one closed polygon of a scene.  At least one of Fill and
// Outline should be set.
type Element struct {
	Points  []vec.Vec2
	Fill    *Fill
	Outline *Outline
}

// Fill describes the paint inside a polygon.
type Fill struct {
	Color Color

	// Opacity multiplies the alpha channel of Color.  Values outside
	// [0, 1] are stored as given and clamped when painting.
	Opacity float64
}

// Outline describes a solid line along the polygon boundary.
type Outline struct {
	Color   Color
	Opacity float64

	// Width is the line width in scene units.  Zero selects the default
	// width of the renderer.
	Width float64
}

// NewVectorCanvas returns an empty scene of the given size.
func NewVectorCanvas(width, height float64) *VectorCanvas {
	return &VectorCanvas{Size: vec.Vec2{X: width, Y: height}}
}

// DrawPolygon appends a closed polygon to the scene.  The slice of points
// is copied.
func (v *VectorCanvas) DrawPolygon(points []vec.Vec2, fill *Fill, outline *Outline) {
	v.elements = append(v.elements, Element{
		Points:  slices.Clone(points),
		Fill:    fill,
		Outline: outline,
	})
}

// DrawRect appends the axis-parallel rectangle with corners lo and hi.
func (v *VectorCanvas) DrawRect(lo, hi vec.Vec2, fill *Fill, outline *Outline) {
	v.elements = append(v.elements, Element{
		Points: []vec.Vec2{
			lo,
			{X: hi.X, Y: lo.Y},
			hi,
			{X: lo.X, Y: hi.Y},
		},
		Fill:    fill,
		Outline: outline,
	})
}

// Elements returns the elements of the scene, in paint order.  The slice
// must not be modified.
func (v *VectorCanvas) Elements() []Element {
	return v.elements
}

// Len returns the number of elements in the scene.
func (v *VectorCanvas) Len() int {
	return len(v.elements)
}

// Clone returns a deep copy of the scene.
func (v *VectorCanvas) Clone() *VectorCanvas {
	res := &VectorCanvas{
		Size:     v.Size,
		elements: make([]Element, len(v.elements)),
	}
	for i, e := range v.elements {
		res.elements[i] = e.clone()
	}
	return res
}

func (e Element) clone() Element {
	res := Element{Points: slices.Clone(e.Points)}
	if e.Fill != nil {
		f := *e.Fill
		res.Fill = &f
	}
	if e.Outline != nil {
		o := *e.Outline
		res.Outline = &o
	}
	return res
}

// Path returns the closed outline of the element.
func (e Element) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(e.Points) == 0 {
			return
		}
		var buf [1]vec.Vec2
		cmd := path.CmdMoveTo
		for _, p := range e.Points {
			buf[0] = p
			if !yield(cmd, buf[:]) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// RegularPolygon returns the n corners of a regular polygon around
// center.  Corner i lies at angle rotation + i·2π/n.
func RegularPolygon(center vec.Vec2, radius float64, n int, rotation float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		a := rotation + float64(i)*2*math.Pi/float64(n)
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}
