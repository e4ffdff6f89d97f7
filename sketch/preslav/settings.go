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

package preslav

import "seehuhn.de/go/geom/vec"

// Settings configure a [Sketcher].  The values are not validated.
type Settings struct {
	// OutputSize is the size of the picture.  The reference image is
	// expected to have the same size.
	OutputSize vec.Vec2

	// ExpectedIterations is the number of steps taken by Run and
	// RunAndDispose.  Step can be called any number of times.
	ExpectedIterations int

	// StrokeReduction is the fraction by which the stroke size shrinks
	// after every step.  It should lie in (0, 1).
	StrokeReduction float64

	// StrokeJitter is the largest distance, in each coordinate, between a
	// polygon centre and the point where the reference image is sampled.
	StrokeJitter float64

	// StrokeInversionThreshold is the fraction of InitialStrokeSize below
	// which polygons get a contrasting outline.
	StrokeInversionThreshold float64

	// InitialAlpha is the fill opacity of the first polygon.  Outlines are
	// drawn with opacity 2*InitialAlpha.
	InitialAlpha float64

	// AlphaIncrease is added to the fill opacity after every step.  The
	// opacity is not clamped to 1.
	AlphaIncrease float64

	// MinEdgeCount and MaxEdgeCount give the inclusive range of the
	// number of polygon corners.
	MinEdgeCount, MaxEdgeCount int

	// InitialStrokeSize is the radius of the first polygon.
	InitialStrokeSize float64
}

// DefaultSettings returns the settings used in the book, for a picture
// of the given size.
func DefaultSettings(width, height float64) Settings {
	return Settings{
		OutputSize:               vec.Vec2{X: width, Y: height},
		ExpectedIterations:       5000,
		StrokeReduction:          0.002,
		StrokeJitter:             0.1 * width,
		StrokeInversionThreshold: 0.05,
		InitialAlpha:             0.1,
		AlphaIncrease:            0.06,
		MinEdgeCount:             3,
		MaxEdgeCount:             4,
		InitialStrokeSize:        0.75 * width,
	}
}
