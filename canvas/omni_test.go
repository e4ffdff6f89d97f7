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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func testRaster() *RasterCanvas {
	c := NewRasterCanvas(3, 2)
	for y := range 2 {
		for x := range 3 {
			c.Set(x, y, RGB(float64(x)/2, float64(y), 0.5))
		}
	}
	return c
}

func TestKind(t *testing.T) {
	v := FromVector(NewVectorCanvas(1, 1))
	r := FromRaster(NewRasterCanvas(1, 1))
	if v.Kind() != KindVector || r.Kind() != KindRaster {
		t.Errorf("got kinds %v, %v", v.Kind(), r.Kind())
	}
	if _, ok := v.Raster(); ok {
		t.Error("vector canvas reports a raster image")
	}
	if _, ok := r.Vector(); ok {
		t.Error("raster canvas reports a vector scene")
	}
}

func TestVectorizePixels(t *testing.T) {
	r := testRaster()
	v := FromRaster(r).AsVector(Pixels)

	if v.Len() != 6 {
		t.Fatalf("%d elements, want 6", v.Len())
	}
	if v.Size != (vec.Vec2{X: 3, Y: 2}) {
		t.Errorf("scene size %v", v.Size)
	}
	for i, e := range v.Elements() {
		x, y := float64(i%3), float64(i/3)
		want := []vec.Vec2{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}}
		if d := cmp.Diff(want, e.Points); d != "" {
			t.Errorf("element %d (-want +got):\n%s", i, d)
		}
		if e.Fill == nil || e.Fill.Color != r.At(i%3, i/3) || e.Fill.Opacity != 1 {
			t.Errorf("element %d: fill %v", i, e.Fill)
		}
		if e.Outline != nil {
			t.Errorf("element %d has an outline", i)
		}
	}
}

func TestRasterVectorRoundTrip(t *testing.T) {
	r := testRaster()
	v := FromRaster(r).AsVector(Pixels)
	back := FromVector(v).AsRaster(RasterOptions{Width: 3, Height: 2, Antialias: true})
	if d := cmp.Diff(r.Pix(), back.Pix()); d != "" {
		t.Errorf("round trip changed pixels (-want +got):\n%s", d)
	}
}

func TestIntoKeepsMatchingVariant(t *testing.T) {
	r := testRaster()
	if got := FromRaster(r).IntoRaster(RasterOptions{Width: 10, Height: 10}); got != r {
		t.Error("IntoRaster converted a raster image")
	}
	if r.Width() != 3 || r.Height() != 2 {
		t.Error("IntoRaster resized a raster image")
	}

	v := NewVectorCanvas(2, 2)
	if got := FromVector(v).IntoVector(Pixels); got != v {
		t.Error("IntoVector converted a vector scene")
	}
}

func TestAsDoesNotAlias(t *testing.T) {
	r := testRaster()
	o := FromRaster(r)
	got := o.AsRaster(RasterOptions{})
	got.Set(0, 0, White)
	if r.At(0, 0) == White {
		t.Error("AsRaster returned the original image")
	}

	v := NewVectorCanvas(1, 1)
	w := FromVector(v).AsVector(Pixels)
	w.DrawRect(vec.Vec2{}, vec.Vec2{X: 1, Y: 1}, &Fill{Color: White, Opacity: 1}, nil)
	if v.Len() != 0 {
		t.Error("AsVector returned the original scene")
	}
}

func TestIntoRasterSize(t *testing.T) {
	v := NewVectorCanvas(10, 5)
	for i := range 20 {
		v.DrawPolygon(RegularPolygon(vec.Vec2{X: float64(i) / 2, Y: 2.5}, 2, 3+i%3, float64(i)),
			&Fill{Color: RGB(0.1, 0.8, 0.3), Opacity: 0.2 * float64(i)}, nil)
	}

	for _, size := range [][2]int{{1, 1}, {10, 5}, {33, 17}, {17, 33}} {
		for _, ph := range []bool{false, true} {
			r := FromVector(v).IntoRaster(RasterOptions{
				Width: size[0], Height: size[1], Antialias: true, PreserveHeight: ph,
			})
			if r.Width() != size[0] || r.Height() != size[1] {
				t.Errorf("got %dx%d, want %dx%d", r.Width(), r.Height(), size[0], size[1])
			}
		}
	}
}
