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
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart"
)

// ErrUnsupportedFormat is returned when a file extension does not name a
// known output format.
var ErrUnsupportedFormat = errors.New("canvas: unsupported output format")

// ErrInvalidSize is returned when an output size is smaller than one
// pixel in either direction.
var ErrInvalidSize = errors.New("canvas: invalid output size")

// svgStrokeWidth is the outline width used for SVG output.
const svgStrokeWidth = 12

// IsSupportedFormat reports whether format, a file extension without the
// leading dot, can be written by Encode and Save.  Formats are case
// sensitive.
func IsSupportedFormat(format string) bool {
	switch format {
	case "bmp", "png", "jpg", "tiff", "svg":
		return true
	default:
		return false
	}
}

// Encode writes o in the given format.  Raster formats (bmp, png, jpg,
// tiff) are rendered at the given size with antialiasing.  SVG output
// uses the Pixels vectorizer for raster images and has no
// antialiasing.  Both components of size must be at least 1.
func (o OmniCanvas) Encode(w io.Writer, format string, size vec.Vec2, background *Color, preserveHeight bool) error {
	if !IsSupportedFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if !(size.X >= 1 && size.Y >= 1) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, size.X, size.Y)
	}

	if format == "svg" {
		r := &SVGRenderer{
			Width:          size.X,
			Height:         size.Y,
			Background:     background,
			PreserveHeight: preserveHeight,
			StrokeWidth:    svgStrokeWidth,
		}
		if err := r.Render(w, o.AsVector(Pixels)); err != nil {
			return fmt.Errorf("canvas: encoding svg: %w", err)
		}
		return nil
	}

	img := o.AsRaster(RasterOptions{
		Width:          int(size.X),
		Height:         int(size.Y),
		Antialias:      true,
		Background:     background,
		PreserveHeight: preserveHeight,
	}).NRGBA()

	var err error
	switch format {
	case "bmp":
		err = bmp.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	case "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	case "tiff":
		err = tiff.Encode(w, img, nil)
	}
	if err != nil {
		return fmt.Errorf("canvas: encoding %s: %w", format, err)
	}
	return nil
}

// Save writes o to a file.  The format is chosen by the file extension,
// see [OmniCanvas.Encode].  If the extension is not supported, an error
// wrapping [ErrUnsupportedFormat] is returned and no file is created.
// The same holds for sizes rejected with [ErrInvalidSize].
//
// The file is either written completely or not at all: the data goes to
// a temporary file first, which is then renamed.
func (o OmniCanvas) Save(path string, size vec.Vec2, background *Color, preserveHeight bool) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !IsSupportedFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	buf := &bytes.Buffer{}
	if err := o.Encode(buf, format, size, background, preserveHeight); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("canvas: saving %s: %w", path, err)
	}

	genart.Logger().Info("canvas saved",
		"path", path, "format", format, "kind", o.Kind(), "bytes", buf.Len())
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
