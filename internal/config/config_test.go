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

package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart/canvas"
	"seehuhn.de/go/genart/sketch/preslav"
)

func TestDefaultSettings(t *testing.T) {
	got := Default().Settings(200, 100)
	want := preslav.DefaultSettings(200, 100)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("settings (-want +got):\n%s", d)
	}
	if _, ok := Default().Randomness().Seed(); ok {
		t.Error("default configuration is seeded")
	}
}

func TestDecode(t *testing.T) {
	data := []byte(`
input = "in.png"
output = "out.svg"
width = 300
height = 200
seed = 17
background = "#102030"

[preslav]
iterations = 12
max_edge_count = 7
stroke_jitter = 0.5
`)
	c, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if c.Input != "in.png" || c.Output != "out.svg" || c.Width != 300 || c.Height != 200 {
		t.Errorf("got %+v", c)
	}
	if seed, ok := c.Randomness().Seed(); !ok || seed != 17 {
		t.Errorf("seed %d, %t", seed, ok)
	}

	s := c.Settings(300, 200)
	want := preslav.DefaultSettings(300, 200)
	want.ExpectedIterations = 12
	want.MaxEdgeCount = 7
	want.StrokeJitter = 150
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("settings (-want +got):\n%s", d)
	}
	if s.OutputSize != (vec.Vec2{X: 300, Y: 200}) {
		t.Errorf("output size %v", s.OutputSize)
	}

	bg, err := c.BackgroundColor()
	if err != nil {
		t.Fatal(err)
	}
	if bg.Hex() != "#102030" {
		t.Errorf("background %s", bg.Hex())
	}
}

func TestUnknownKey(t *testing.T) {
	for _, data := range []string{
		"colour = \"red\"\n",
		"[preslav]\nedges = 5\n",
		"[halftone]\ndots = 1\n",
	} {
		if _, err := Decode([]byte(data)); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("%q: got error %v", data, err)
		}
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := Decode([]byte("width = \n"))
	if err == nil || errors.Is(err, ErrUnknownKey) {
		t.Errorf("got error %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	c := Default()
	c.Input = "a.jpg"
	c.Output = "b.png"
	c.PDF = "b.pdf"
	c.Width = 640
	c.Height = 480
	c.SetSeed(99)
	c.Background = "#ffffff"
	c.PreserveHeight = true
	c.Preslav.Iterations = 123
	c.Preslav.AlphaIncrease = 0.25

	path := filepath.Join(t.TempDir(), "run.toml")
	if err := c.Write(path); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(c, got); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestLargeSeed(t *testing.T) {
	for _, seed := range []uint64{1 << 63, 1<<63 + 5, math.MaxUint64} {
		c := Default()
		c.SetSeed(seed)

		path := filepath.Join(t.TempDir(), "run.toml")
		if err := c.Write(path); err != nil {
			t.Fatal(err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if s, ok := got.Randomness().Seed(); !ok || s != seed {
			t.Errorf("seed %d: got %d, %t", seed, s, ok)
		}
	}
}

func TestOmitSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := Default().Write(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, _, _ := strings.Cut(line, "=")
		switch strings.TrimSpace(key) {
		case "width", "height", "seed":
			t.Errorf("default run file contains %q", line)
		}
	}

	c := Default()
	c.Width = 10
	c.Height = 20
	if err := c.Write(path); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 10 || got.Height != 20 {
		t.Errorf("size %dx%d", got.Width, got.Height)
	}
}

func TestBadBackground(t *testing.T) {
	c := Default()
	if bg, err := c.BackgroundColor(); bg != nil || err != nil {
		t.Errorf("empty background: %v, %v", bg, err)
	}
	c.Background = "#12345"
	if _, err := c.BackgroundColor(); !errors.Is(err, canvas.ErrInvalidHex) {
		t.Errorf("got error %v", err)
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("no error for missing file")
	}
}
