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

package sketch

import (
	"log/slog"
	"math"

	"seehuhn.de/go/genart"
)

// LogProgress returns a Progress which logs a message every time the
// fraction of work done passes a multiple of step.  If logger is nil, the
// package logger from [genart.Logger] is used.
func LogProgress(logger *slog.Logger, step float64) Progress {
	if logger == nil {
		logger = genart.Logger()
	}
	if step <= 0 {
		step = 0.1
	}
	next := 0.0
	return func(fraction float64) {
		if fraction < next {
			return
		}
		logger.Info("progress", "done", math.Round(fraction*1000)/10)
		next = (math.Floor(fraction/step) + 1) * step
	}
}
