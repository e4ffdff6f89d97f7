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
)

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 20 * 20,
		Tol:    0.02,
	},
	{
		// The region between a parabola and its chord has 2/3 of the
		// area of the control triangle.
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).
			QuadTo(pt(32, 10), pt(54, 50)).
			Close().Iter(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2.0 / 3.0 * 880,
		Tol:    0.02,
	},
	{
		Name:   "circle_large",
		Path:   circle(150, 150, 140),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 140 * 140,
		Tol:    0.005,
	},
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * 4 * (math.Sqrt2 - 1) / 3
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close().Iter()
}
