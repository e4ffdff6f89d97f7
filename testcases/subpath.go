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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "hole_nonzero",
		Path:   frame(true),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   40*40 - 20*20,
	},
	{
		Name:   "hole_same_direction_nonzero",
		Path:   frame(false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   40 * 40,
	},
	{
		Name:   "hole_same_direction_evenodd",
		Path:   frame(false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   40*40 - 20*20,
	},
	{
		Name: "implicit_close",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).LineTo(pt(32, 10)).LineTo(pt(54, 50)).
			MoveTo(pt(2, 2)).LineTo(pt(8, 2)).LineTo(pt(8, 8)).
			Iter(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   880 + 18,
	},
	{
		Name:   "stroke_frame",
		Path:   frame(true),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, MiterLimit: 10},
		Area:   (42*42 - 38*38) + (22*22 - 18*18),
	},
}

// frame is a 40×40 square with a 20×20 square in the middle.  If
// reverse is set, the inner square runs in the opposite direction.
func frame(reverse bool) path.Path {
	p := (&path.Data{}).
		MoveTo(pt(12, 12)).LineTo(pt(52, 12)).LineTo(pt(52, 52)).LineTo(pt(12, 52)).Close()
	if reverse {
		p = p.MoveTo(pt(22, 22)).LineTo(pt(22, 42)).LineTo(pt(42, 42)).LineTo(pt(42, 22)).Close()
	} else {
		p = p.MoveTo(pt(22, 22)).LineTo(pt(42, 22)).LineTo(pt(42, 42)).LineTo(pt(22, 42)).Close()
	}
	return p.Iter()
}
