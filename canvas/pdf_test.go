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
	"testing"
)

func TestWritePDF(t *testing.T) {
	bg := White
	for _, opts := range []*PDFOptions{
		nil,
		{Width: 200, Height: 100, Background: &bg, PreserveHeight: true, StrokeWidth: 3},
	} {
		buf := &bytes.Buffer{}
		if err := WritePDF(buf, testScene(), opts); err != nil {
			t.Fatal(err)
		}
		out := buf.Bytes()
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 10)])
		}
		if !bytes.Contains(out, []byte("%%EOF")) {
			t.Error("output has no end-of-file marker")
		}
	}
}

func TestApply(t *testing.T) {
	m := viewTransform(testScene().Size, 80, 30, true)
	got := apply(m, testScene().Size)
	// the scene is 40x30: scaled by 1 and shifted right by 20
	if got.X != 60 || got.Y != 30 {
		t.Errorf("got %v", got)
	}
}
