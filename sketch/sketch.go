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

// Package sketch defines the interface of a generative painting procedure.
//
// A procedure paints a picture step by step and reports its progress
// through a [Progress] callback.  The result is a [canvas.OmniCanvas], so
// that the caller can save it in any supported format without knowing
// which procedure produced it.
package sketch

import "seehuhn.de/go/genart/canvas"

// Progress receives the fraction of the work done, a value in [0, 1].
// Within one run, the values passed are non-decreasing.  Whether 1 is
// ever reported depends on the procedure.
type Progress func(fraction float64)

// Report calls p, if p is not nil.
func (p Progress) Report(fraction float64) {
	if p != nil {
		p(fraction)
	}
}

// Sketcher is implemented by generative painting procedures.
type Sketcher interface {
	// Run executes the full procedure and returns a copy of the picture.
	// The progress callback is called before every iteration; it may be
	// nil.  The sketcher can still be used afterwards.
	Run(progress Progress) canvas.OmniCanvas

	// RunAndDispose is like Run, but hands over the picture without
	// copying.  The sketcher must not be used afterwards.
	RunAndDispose(progress Progress) canvas.OmniCanvas
}
