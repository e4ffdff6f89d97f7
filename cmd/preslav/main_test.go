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

package main

import "testing"

func TestParseSize(t *testing.T) {
	for _, test := range []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"1200x800", 1200, 800, true},
		{"1x1", 1, 1, true},
		{"0x10", 0, 0, false},
		{"12", 0, 0, false},
		{"ax3", 0, 0, false},
		{"-4x3", 0, 0, false},
	} {
		w, h, err := parseSize(test.in)
		if (err == nil) != test.ok || w != test.w || h != test.h {
			t.Errorf("%q: got %d, %d, %v", test.in, w, h, err)
		}
	}
}
