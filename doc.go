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

// Package genart generates artwork from raster images by painting many
// semi-transparent polygons.
//
// The work is split into sub-packages:
//   - [seehuhn.de/go/genart/canvas] holds the vector and raster
//     representations of a picture and writes them to files.
//   - [seehuhn.de/go/genart/sketch] defines the interface of a painting
//     procedure, and [seehuhn.de/go/genart/sketch/preslav] implements the
//     Preslav procedure.
//   - [seehuhn.de/go/genart/raster] computes pixel coverage for the
//     renderer.
//
// This package only holds the logger shared by all sub-packages.
package genart
