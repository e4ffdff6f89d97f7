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

// Command ga-web serves the painting procedures over HTTP.
//
// Reference images are uploaded to /preslav, and the painted pictures are
// served as PNG files from /image/{hash}.  With -mdns, the server is
// announced on the local network as a _genart._tcp service.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/internal/server"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ga-web: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		addr          = flag.String("addr", ":8000", "listen address")
		cacheSize     = flag.Int("cache", 256, "number of pictures kept in memory")
		maxIterations = flag.Int("max-iterations", 20000, "largest number of polygons per picture")
		maxSize       = flag.Int("max-size", 2048, "largest picture side in pixels")
		advertise     = flag.Bool("mdns", false, "announce the server via multicast DNS")
		verbose       = flag.Bool("v", false, "log details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	genart.SetLogger(logger)

	s, err := server.New(server.Options{
		CacheSize:     *cacheSize,
		MaxIterations: *maxIterations,
		MaxSize:       *maxSize,
	})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return err
	}
	logger.Info("listening", "addr", ln.Addr().String())

	if *advertise {
		port := ln.Addr().(*net.TCPAddr).Port
		zone, err := server.Advertise(port)
		if err != nil {
			ln.Close()
			return err
		}
		defer zone.Shutdown()
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
