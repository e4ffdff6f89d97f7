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

// Command preslav paints a picture from a reference image, using
// semi-transparent polygons.
//
// Usage:
//
//	preslav -i reference.jpg -o picture.png [-config run.toml] [-n 5000]
//	    [-seed 42] [-size 1200x800] [-bg '#ffffff'] [-pdf picture.pdf] [-v]
//
// Settings are read from the run file given by -config, if any, and are
// then overridden by the command line flags.  The output format is chosen
// by the extension of the output file: bmp, png, jpg, tiff or svg.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/canvas"
	"seehuhn.de/go/genart/internal/config"
	"seehuhn.de/go/genart/internal/imageio"
	"seehuhn.de/go/genart/sketch"
	"seehuhn.de/go/genart/sketch/preslav"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("preslav: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		input       = flag.String("i", "", "reference image")
		output      = flag.String("o", "", "output file (bmp, png, jpg, tiff or svg)")
		configFile  = flag.String("config", "", "read settings from this TOML file")
		writeConfig = flag.String("write-config", "", "write the effective settings to this TOML file")
		iterations  = flag.Int("n", 0, "number of polygons")
		seed        = flag.Uint64("seed", 0, "seed for reproducible pictures")
		size        = flag.String("size", "", "picture size as WIDTHxHEIGHT")
		background  = flag.String("bg", "", "background colour, e.g. #ffffff")
		pdfFile     = flag.String("pdf", "", "also write the picture as PDF")
		preserve    = flag.Bool("preserve-height", false, "keep the aspect ratio of the picture")
		verbose     = flag.Bool("v", false, "log details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	genart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Read(*configFile)
		if err != nil {
			return err
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Input = *input
		case "o":
			cfg.Output = *output
		case "n":
			cfg.Preslav.Iterations = *iterations
		case "seed":
			cfg.SetSeed(*seed)
		case "size":
			cfg.Width, cfg.Height, err = parseSize(*size)
		case "bg":
			cfg.Background = *background
		case "pdf":
			cfg.PDF = *pdfFile
		case "preserve-height":
			cfg.PreserveHeight = *preserve
		}
	})
	if err != nil {
		return err
	}

	if *writeConfig != "" {
		if err := cfg.Write(*writeConfig); err != nil {
			return err
		}
	}
	if cfg.Input == "" || cfg.Output == "" {
		if *writeConfig != "" {
			return nil
		}
		flag.Usage()
		return errors.New("both an input and an output file are required")
	}

	format := strings.TrimPrefix(filepath.Ext(cfg.Output), ".")
	if !canvas.IsSupportedFormat(format) {
		return fmt.Errorf("%s: %w", cfg.Output, canvas.ErrUnsupportedFormat)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	ref, err := imageio.Load(cfg.Input)
	if err != nil {
		return err
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = ref.Bounds().Dx(), ref.Bounds().Dy()
	}
	fitted := imageio.Fit(ref, width, height)

	settings := cfg.Settings(float64(width), float64(height))
	logger := genart.Logger()
	logger.Debug("settings", "settings", settings, "randomness", cfg.Randomness())

	start := time.Now()
	sk := preslav.New(settings, fitted, cfg.Randomness())
	pic := sk.RunAndDispose(sketch.LogProgress(logger, 0.1))
	logger.Info("picture painted", "polygons", settings.ExpectedIterations, "duration", time.Since(start))

	outSize := vec.Vec2{X: float64(width), Y: float64(height)}
	if err := pic.Save(cfg.Output, outSize, bg, cfg.PreserveHeight); err != nil {
		return err
	}

	if cfg.PDF != "" {
		scene, _ := pic.Vector()
		if err := savePDF(cfg.PDF, scene, bg, cfg.PreserveHeight); err != nil {
			return err
		}
	}
	return nil
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

func savePDF(path string, scene *canvas.VectorCanvas, bg *canvas.Color, preserveHeight bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = canvas.WritePDF(f, scene, &canvas.PDFOptions{
		Background:     bg,
		PreserveHeight: preserveHeight,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	genart.Logger().Info("canvas saved", "path", path, "format", "pdf")
	return nil
}
