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

// Package config reads and writes TOML files which describe a painting
// run.
//
// A run file looks like this:
//
//	input = "reference.jpg"
//	output = "picture.png"
//	width = 1200
//	height = 800
//	seed = 42
//	background = "#ffffff"
//
//	[preslav]
//	iterations = 5000
//	stroke_reduction = 0.002
//	stroke_jitter = 0.1
//	initial_stroke_size = 0.75
//
// All keys are optional.  Keys which are not recognised are reported as
// errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart/canvas"
	"seehuhn.de/go/genart/sketch"
	"seehuhn.de/go/genart/sketch/preslav"
)

// ErrUnknownKey is returned by [Read] and [Decode] if the TOML data
// contains keys which are not part of [Config].
var ErrUnknownKey = errors.New("config: unknown key")

// Config describes one painting run.
type Config struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	PDF    string `toml:"pdf,omitempty"`

	// Width and Height give the size of the picture in pixels.  If zero,
	// the size of the reference image is used.
	Width  int `toml:"width,omitzero"`
	Height int `toml:"height,omitzero"`

	// Seed makes the run reproducible.  Without a seed, every run paints
	// a different picture.  TOML integers are signed, so the 64 bits of
	// the seed are stored as an int64; use [Config.SetSeed] to set it
	// from a uint64.
	Seed *int64 `toml:"seed,omitempty"`

	// Background is a hex colour painted under the picture.
	Background     string `toml:"background,omitempty"`
	PreserveHeight bool   `toml:"preserve_height"`

	Preslav Preslav `toml:"preslav"`
}

// Preslav holds the parameters of the Preslav procedure.  Jitter and
// initial stroke size are given as fractions of the picture width, so
// that a run file works for every output size.
type Preslav struct {
	Iterations               int     `toml:"iterations"`
	StrokeReduction          float64 `toml:"stroke_reduction"`
	StrokeJitter             float64 `toml:"stroke_jitter"`
	StrokeInversionThreshold float64 `toml:"stroke_inversion_threshold"`
	InitialAlpha             float64 `toml:"initial_alpha"`
	AlphaIncrease            float64 `toml:"alpha_increase"`
	MinEdgeCount             int     `toml:"min_edge_count"`
	MaxEdgeCount             int     `toml:"max_edge_count"`
	InitialStrokeSize        float64 `toml:"initial_stroke_size"`
}

// Default returns the configuration used when no run file is given.
func Default() *Config {
	s := preslav.DefaultSettings(1, 1)
	return &Config{
		Preslav: Preslav{
			Iterations:               s.ExpectedIterations,
			StrokeReduction:          s.StrokeReduction,
			StrokeJitter:             s.StrokeJitter,
			StrokeInversionThreshold: s.StrokeInversionThreshold,
			InitialAlpha:             s.InitialAlpha,
			AlphaIncrease:            s.AlphaIncrease,
			MinEdgeCount:             s.MinEdgeCount,
			MaxEdgeCount:             s.MaxEdgeCount,
			InitialStrokeSize:        s.InitialStrokeSize,
		},
	}
}

// Read reads a run file.  Keys missing from the file keep their default
// values.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses TOML data on top of the default configuration.
func Decode(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return c, nil
}

// Write writes c as a run file.
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Settings returns the settings of the Preslav procedure for a picture
// of the given size.
func (c *Config) Settings(width, height float64) preslav.Settings {
	p := c.Preslav
	return preslav.Settings{
		OutputSize:               vec.Vec2{X: width, Y: height},
		ExpectedIterations:       p.Iterations,
		StrokeReduction:          p.StrokeReduction,
		StrokeJitter:             p.StrokeJitter * width,
		StrokeInversionThreshold: p.StrokeInversionThreshold,
		InitialAlpha:             p.InitialAlpha,
		AlphaIncrease:            p.AlphaIncrease,
		MinEdgeCount:             p.MinEdgeCount,
		MaxEdgeCount:             p.MaxEdgeCount,
		InitialStrokeSize:        p.InitialStrokeSize * width,
	}
}

// SetSeed selects a reproducible run.  Seeds of 2^63 and above appear
// as negative numbers in the run file.
func (c *Config) SetSeed(seed uint64) {
	v := int64(seed)
	c.Seed = &v
}

// Randomness returns the source of random numbers selected by Seed.
func (c *Config) Randomness() sketch.Randomness {
	if c.Seed == nil {
		return sketch.Entropy()
	}
	return sketch.Seeded(uint64(*c.Seed))
}

// BackgroundColor parses Background.  An empty string gives nil.
func (c *Config) BackgroundColor() (*canvas.Color, error) {
	if c.Background == "" {
		return nil, nil
	}
	col, err := canvas.ParseHex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("config: background: %w", err)
	}
	return &col, nil
}
