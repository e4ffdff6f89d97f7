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
	"bytes"
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSVGAttributes(t *testing.T) {
	v := NewVectorCanvas(10, 10)
	v.DrawRect(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 4, Y: 4},
		&Fill{Color: RGB(1, 0, 0), Opacity: 0.25}, nil)
	v.DrawRect(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 9, Y: 9},
		nil, &Outline{Color: White, Opacity: 3, Width: 2})

	r := &SVGRenderer{Width: 100, Height: 100, Antialias: true}
	buf := &bytes.Buffer{}
	if err := r.Render(buf, v); err != nil {
		t.Fatal(err)
	}
	s := buf.String()

	for _, want := range []string{
		"<svg",
		`viewBox="0.000 0.000 100.000 100.000"`,
		`transform="matrix(10 0 0 10 0 0)"`,
		`fill="#ff0000"`,
		`fill-opacity="0.25"`,
		`fill="none"`,
		`stroke="#ffffff"`,
		`stroke-opacity="1"`,
		`stroke-width="2"`,
		"</svg>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output does not contain %s", want)
		}
	}
	if strings.Contains(s, "crispEdges") {
		t.Error("antialiased output requests crisp edges")
	}
	if n := strings.Count(s, "<polygon"); n != 2 {
		t.Errorf("%d polygons, want 2", n)
	}
}

func TestSVGBackground(t *testing.T) {
	bg := RGB(0, 0, 1)
	r := &SVGRenderer{Width: 20, Height: 10, Background: &bg}
	buf := &bytes.Buffer{}
	if err := r.Render(buf, NewVectorCanvas(2, 1)); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.Contains(s, "<rect") || !strings.Contains(s, `fill="#0000ff"`) {
		t.Errorf("background missing:\n%s", s)
	}
	if !strings.Contains(s, `shape-rendering="crispEdges"`) {
		t.Error("aliased output does not request crisp edges")
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSVGWriteError(t *testing.T) {
	r := &SVGRenderer{Width: 10, Height: 10}
	if err := r.Render(failWriter{}, testScene()); !errors.Is(err, errWrite) {
		t.Errorf("got error %v", err)
	}
}
