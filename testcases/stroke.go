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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt, MiterLimit: 10},
		Area:   44 * 8,
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare, MiterLimit: 10},
		Area:   52 * 8,
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound, MiterLimit: 10},
		Area:   44*8 + math.Pi*4*4,
		Tol:    0.015,
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(10, 10), pt(40, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt, MiterLimit: 10},
		Area:   50 * 2,
	},
	{
		Name:   "square_miter",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   36*36 - 28*28,
	},
	{
		Name:   "square_bevel",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinBevel, MiterLimit: 10},
		Area:   36*36 - 28*28 - 4*2,
	},
	{
		Name:   "square_round",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   36*36 - 28*28 - 4*(4-math.Pi),
		Tol:    0.005,
	},
	{
		// A 90° miter is 1.414 times the line width, so a limit of 1.2
		// turns all corners into bevels.
		Name:   "square_miter_limit",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 1.2},
		Area:   36*36 - 28*28 - 4*2,
	},
	{
		Name:   "corner_miter",
		Path:   polyline(pt(16, 16), pt(48, 16), pt(48, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   34*4 + 4*34 - 4*4,
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(pt(48, 48), pt(48, 16), pt(16, 16)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinBevel, MiterLimit: 10},
		Area:   34*4 + 4*34 - 4*4 - 2,
	},
	{
		Name:   "corner_round",
		Path:   polyline(pt(16, 16), pt(48, 16), pt(48, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   34*4 + 4*34 - 4*4 - (4 - math.Pi),
		Tol:    0.005,
	},
	{
		Name:   "diamond_miter",
		Path:   regularPolygon(16.3, 16.7, 8, 4),
		Width:  32,
		Height: 32,
		Op:     Stroke{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   regularOutlineArea(8, 4, 1),
	},
	{
		Name:   "triangle_miter",
		Path:   regularPolygon(24.2, 25.6, 10, 3),
		Width:  48,
		Height: 48,
		Op:     Stroke{Width: 2, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   regularOutlineArea(10, 3, 2),
	},
	{
		Name:   "dot_round",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)).Close().Iter(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapRound, MiterLimit: 10},
		Area:   math.Pi * 5 * 5,
		Tol:    0.08,
	},
	{
		Name:   "dot_square",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)).Close().Iter(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapSquare, MiterLimit: 10},
		Area:   100,
	},
	{
		Name:   "dot_butt",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)).Close().Iter(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapButt, MiterLimit: 10},
		Area:   0,
	},
}

// polyline returns the open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Iter()
}

// regularPolygon returns a closed regular n-gon with circumradius r,
// with the first vertex straight above the centre.
func regularPolygon(cx, cy, r float64, n int) path.Path {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// regularOutlineArea is the area covered by a mitered stroke of width w
// along a regular n-gon with circumradius r.
func regularOutlineArea(r float64, n int, w float64) float64 {
	apothem := r * math.Cos(math.Pi/float64(n))
	return 2 * float64(n) * math.Tan(math.Pi/float64(n)) * apothem * w
}
