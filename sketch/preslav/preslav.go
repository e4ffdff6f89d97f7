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

// Package preslav implements the painting procedure from Preslav Rachev's
// book "Generative Art in Go".
//
// Every step samples the colour of the reference image at a random point
// and paints a semi-transparent regular polygon of that colour nearby.
// Polygons start large and faint and become smaller and more opaque, so
// that the picture is refined from coarse to fine.  Once the polygons are
// small enough, they get an outline which contrasts with their colour.
package preslav

import (
	"image"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/stats"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/canvas"
	"seehuhn.de/go/genart/sketch"
)

// Sketcher paints a picture with the Preslav procedure.
//
// A Sketcher is not safe for concurrent use.  Independent Sketchers can
// run concurrently.
type Sketcher struct {
	settings  Settings
	reference image.Image
	rng       *rand.Rand

	strokeSize float64
	alpha      float64
	scene      *canvas.VectorCanvas
}

var _ sketch.Sketcher = (*Sketcher)(nil)

// New returns a Sketcher with an empty picture.  Run and RunAndDispose
// paint against the reference image.  The random number generator is
// created from randomness once, here.
func New(settings Settings, reference image.Image, randomness sketch.Randomness) *Sketcher {
	return &Sketcher{
		settings:   settings,
		reference:  reference,
		rng:        randomness.New(),
		strokeSize: settings.InitialStrokeSize,
		alpha:      settings.InitialAlpha,
		scene:      canvas.NewVectorCanvas(settings.OutputSize.X, settings.OutputSize.Y),
	}
}

// StrokeSize returns the radius of the next polygon.
func (s *Sketcher) StrokeSize() float64 {
	return s.strokeSize
}

// Alpha returns the fill opacity of the next polygon.
func (s *Sketcher) Alpha() float64 {
	return s.alpha
}

// Step paints one polygon, using colours sampled from input.
func (s *Sketcher) Step(input image.Image) {
	s.checkAlive()
	rng := s.rng
	b := input.Bounds()

	x := rng.Float64() * float64(b.Dx())
	y := rng.Float64() * float64(b.Dy())
	center := vec.Vec2{
		X: x + s.jitter(),
		Y: y + s.jitter(),
	}
	edges := s.settings.MinEdgeCount + rng.IntN(s.settings.MaxEdgeCount-s.settings.MinEdgeCount+1)

	fill := canvas.FromColor(input.At(b.Min.X+int(x), b.Min.Y+int(y)))
	fill.A = 1

	var outline *canvas.Outline
	if s.strokeSize <= s.settings.StrokeInversionThreshold*s.settings.InitialStrokeSize {
		outline = &canvas.Outline{
			Color:   contrastColor(fill),
			Opacity: 2 * s.settings.InitialAlpha,
		}
	}

	rotation := rng.Float64() * 2 * math.Pi
	points := canvas.RegularPolygon(center, s.strokeSize, edges, rotation)
	s.scene.DrawPolygon(points, &canvas.Fill{Color: fill, Opacity: s.alpha}, outline)

	s.strokeSize -= s.settings.StrokeReduction * s.strokeSize
	s.alpha += s.settings.AlphaIncrease
}

// jitter returns a uniform random offset in [-StrokeJitter, StrokeJitter].
func (s *Sketcher) jitter() float64 {
	return (2*s.rng.Float64() - 1) * s.settings.StrokeJitter
}

// contrastColor returns white for dark colours and black for light ones.
// The brightness is the mean of the 8-bit red, green and blue values.
func contrastColor(c canvas.Color) canvas.Color {
	n := c.NRGBA()
	if stats.Mean([]float64{float64(n.R), float64(n.G), float64(n.B)}) < 128 {
		return canvas.White
	}
	return canvas.Black
}

// Render returns a copy of the picture painted so far.
func (s *Sketcher) Render() canvas.OmniCanvas {
	s.checkAlive()
	return canvas.FromVector(s.scene.Clone())
}

// Run takes ExpectedIterations steps against the reference image and
// returns a copy of the picture.  Progress is reported before every
// step as the fraction of steps already taken, so 1 is never reported.
func (s *Sketcher) Run(progress sketch.Progress) canvas.OmniCanvas {
	s.run(progress)
	return s.Render()
}

// RunAndDispose is like Run, but returns the picture without copying it.
// Any later use of s panics.
func (s *Sketcher) RunAndDispose(progress sketch.Progress) canvas.OmniCanvas {
	s.run(progress)
	scene := s.scene
	s.scene = nil
	return canvas.FromVector(scene)
}

func (s *Sketcher) run(progress sketch.Progress) {
	s.checkAlive()
	n := s.settings.ExpectedIterations
	logger := genart.Logger()
	logger.Debug("preslav run started",
		"iterations", n,
		"size", s.settings.OutputSize,
		"strokeSize", s.strokeSize)

	for i := range n {
		progress.Report(float64(i) / float64(n))
		s.Step(s.reference)
	}

	logger.Debug("preslav run finished",
		"polygons", s.scene.Len(),
		"strokeSize", s.strokeSize,
		"alpha", s.alpha)
}

func (s *Sketcher) checkAlive() {
	if s.scene == nil {
		panic("preslav: sketcher used after RunAndDispose")
	}
}
