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
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   880,
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   880,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   34 * 34,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.5, 10.25, 20.75, 30.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   10.25 * 20.25,
	},
	{
		Name:   "rectangle_clockwise",
		Path:   polygon(pt(10, 10), pt(10, 44), pt(44, 44), pt(44, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   34 * 34,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   starArea(25),
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   starArea(25) - pentagonArea(25*starInnerRatio),
	},
	{
		Name:   "subpixel_triangle",
		Path:   polygon(pt(5.1, 5.1), pt(5.9, 5.2), pt(5.5, 5.8)),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
		Area:   0.5 * math.Abs((5.9-5.1)*(5.8-5.1)-(5.5-5.1)*(5.2-5.1)),
	},
}

// starInnerRatio is the circumradius of the pentagon in the middle of a
// pentagram, relative to the radius of the star points.
var starInnerRatio = math.Cos(2*math.Pi/5) / math.Cos(math.Pi/5)

// fivePointStar builds a self-intersecting five-pointed star, connecting
// every second vertex of a regular pentagon.
func fivePointStar(cx, cy, r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// starArea is the area enclosed by the outline of a pentagram.
func starArea(r float64) float64 {
	return 5 * r * r * starInnerRatio * math.Sin(math.Pi/5)
}

// pentagonArea is the area of a regular pentagon with circumradius r.
func pentagonArea(r float64) float64 {
	return 2.5 * r * r * math.Sin(2*math.Pi/5)
}
