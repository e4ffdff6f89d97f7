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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestVectorClone(t *testing.T) {
	v := NewVectorCanvas(10, 10)
	v.DrawPolygon([]vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 3, Y: 4}},
		&Fill{Color: White, Opacity: 0.5},
		&Outline{Color: Black, Opacity: 1, Width: 2})

	w := v.Clone()
	if d := cmp.Diff(v.Elements(), w.Elements()); d != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", d)
	}

	w.Elements()[0].Points[0].X = 100
	w.Elements()[0].Fill.Opacity = 1
	w.Elements()[0].Outline.Width = 7
	w.DrawRect(vec.Vec2{}, vec.Vec2{X: 1, Y: 1}, &Fill{Color: Black, Opacity: 1}, nil)

	e := v.Elements()[0]
	if e.Points[0].X != 1 || e.Fill.Opacity != 0.5 || e.Outline.Width != 2 || v.Len() != 1 {
		t.Error("changing the clone changed the original")
	}
}

func TestDrawPolygonCopiesPoints(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	v := NewVectorCanvas(1, 1)
	v.DrawPolygon(pts, &Fill{Color: White, Opacity: 1}, nil)
	pts[0].X = 9
	if v.Elements()[0].Points[0].X != 0 {
		t.Error("DrawPolygon keeps a reference to the caller's slice")
	}
}

func TestElementPath(t *testing.T) {
	e := Element{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}}

	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range e.Path() {
		cmds = append(cmds, cmd)
		pts = append(pts, p...)
	}

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if d := cmp.Diff(wantCmds, cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	if d := cmp.Diff(e.Points, pts); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
}

func TestRegularPolygon(t *testing.T) {
	center := vec.Vec2{X: 5, Y: 7}
	for n := 3; n <= 8; n++ {
		pts := RegularPolygon(center, 2, n, 0.3)
		if len(pts) != n {
			t.Fatalf("%d corners, want %d", len(pts), n)
		}
		side := pts[1].Sub(pts[0]).Length()
		for i, p := range pts {
			if r := p.Sub(center).Length(); math.Abs(r-2) > 1e-12 {
				t.Errorf("n=%d: corner %d at distance %g", n, i, r)
			}
			q := pts[(i+1)%n]
			if s := q.Sub(p).Length(); math.Abs(s-side) > 1e-12 {
				t.Errorf("n=%d: side %d has length %g, want %g", n, i, s, side)
			}
		}
		first := pts[0].Sub(center)
		if a := math.Atan2(first.Y, first.X); math.Abs(a-0.3) > 1e-12 {
			t.Errorf("n=%d: first corner at angle %g", n, a)
		}
	}
}
