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

// Package canvas holds pictures as either a vector scene or a raster
// image, and converts between the two.
//
// A [VectorCanvas] is an append-only list of polygons, painted in order.
// A [RasterCanvas] is a grid of floating point RGBA pixels.  An
// [OmniCanvas] holds exactly one of the two; its As* methods convert a
// copy, while its Into* methods may reuse the stored picture.
//
// [OmniCanvas.Save] writes a picture to a file, choosing the format by the
// file name extension:
//
//	bmp, png, jpg, tiff   rendered with antialiasing at the requested size
//	svg                   one square per pixel of a raster image, or the
//	                      polygons of a vector scene
//
// Any other extension gives [ErrUnsupportedFormat] and no file is written.
package canvas
