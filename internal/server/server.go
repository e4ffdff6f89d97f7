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

// Package server implements the web front end: it paints pictures from
// uploaded reference images and serves the resulting PNG files by the
// SHA-256 hash of their content.
package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/canvas"
	"seehuhn.de/go/genart/internal/imageio"
	"seehuhn.de/go/genart/sketch"
	"seehuhn.de/go/genart/sketch/preslav"
)

// Options configure a [Server].  Zero values select the defaults.
type Options struct {
	// CacheSize is the number of PNG images kept in memory.
	CacheSize int

	// MaxIterations limits the number of polygons per picture.
	MaxIterations int

	// MaxSize limits the longer side of a picture, in pixels.
	MaxSize int

	// MaxUpload limits the size of an uploaded reference image, in bytes.
	MaxUpload int64
}

const (
	defaultCacheSize     = 256
	defaultMaxIterations = 20000
	defaultMaxSize       = 2048
	defaultMaxUpload     = 16 << 20

	defaultIterations = 5000
	defaultSize       = 512
)

// Server handles the HTTP requests.  Generated images are stored in a
// fixed-size LRU cache.
type Server struct {
	opts  Options
	cache *lru.Cache
	mux   *http.ServeMux
}

// New returns a Server with an empty cache.
func New(opts Options) (*Server, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = defaultMaxIterations
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = defaultMaxSize
	}
	if opts.MaxUpload <= 0 {
		opts.MaxUpload = defaultMaxUpload
	}

	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		opts:  opts,
		cache: cache,
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /image/{hash}", s.handleImage)
	s.mux.HandleFunc("POST /preslav", s.handlePreslav)
	s.mux.HandleFunc("GET /preslav/ws", s.handlePreslavWS)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Store adds a PNG image to the cache and returns its hash.
func (s *Server) Store(data []byte) [32]byte {
	key := sha256.Sum256(data)
	s.cache.Add(key, data)
	return key
}

// Lookup returns the cached image with the given hash.
func (s *Server) Lookup(key [32]byte) ([]byte, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// ErrHashLength is returned by [ParseHash] for hashes which are not 256
// bits long.
var ErrHashLength = errors.New("server: invalid hash length")

// ParseHash decodes a hex-encoded SHA-256 hash.
func ParseHash(s string) ([32]byte, error) {
	var key [32]byte
	data, err := hex.DecodeString(s)
	if err != nil {
		return key, err
	}
	if len(data) != len(key) {
		return key, fmt.Errorf("%w: hash of length %d bits is not valid, expected 256 bits",
			ErrHashLength, 8*len(data))
	}
	copy(key[:], data)
	return key, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, indexText)
}

const indexText = `genart: generative art from raster images

POST /preslav?iterations=N&seed=S&size=PX
    body: a PNG, JPEG, GIF, BMP, TIFF or WebP image
    paints the image and returns {"id": ..., "hash": ...}

GET /preslav/ws
    WebSocket version of POST /preslav, reporting progress

GET /image/{hash}
    returns a painted picture as PNG
`

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	key, err := ParseHash(r.PathValue("hash"))
	if err != nil {
		httpError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	data, ok := s.Lookup(key)
	if !ok {
		httpError(w, r, http.StatusBadRequest, "Value not found.")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// job describes one picture to paint.
type job struct {
	Iterations int     `json:"iterations"`
	Seed       *uint64 `json:"seed,omitempty"`
	Size       int     `json:"size"`
}

// result is sent to the client once a picture is done.
type result struct {
	ID   string `json:"id"`
	Hash string `json:"hash"`
}

// check fills in defaults and enforces the limits of the server.
func (s *Server) check(j *job) error {
	if j.Iterations == 0 {
		j.Iterations = defaultIterations
	}
	if j.Size == 0 {
		j.Size = min(defaultSize, s.opts.MaxSize)
	}
	if j.Iterations < 0 || j.Iterations > s.opts.MaxIterations {
		return fmt.Errorf("iterations must be between 1 and %d", s.opts.MaxIterations)
	}
	if j.Size < 0 || j.Size > s.opts.MaxSize {
		return fmt.Errorf("size must be between 1 and %d", s.opts.MaxSize)
	}
	return nil
}

// paint runs the Preslav procedure on the reference image and stores the
// picture in the cache.
func (s *Server) paint(ref image.Image, j *job, progress sketch.Progress) ([32]byte, error) {
	fitted := imageio.FitWithin(ref, j.Size)
	w, h := float64(fitted.Bounds().Dx()), float64(fitted.Bounds().Dy())

	settings := preslav.DefaultSettings(w, h)
	settings.ExpectedIterations = j.Iterations
	randomness := sketch.Entropy()
	if j.Seed != nil {
		randomness = sketch.Seeded(*j.Seed)
	}

	pic := preslav.New(settings, fitted, randomness).RunAndDispose(progress)

	buf := &bytes.Buffer{}
	bg := canvas.White
	if err := pic.Encode(buf, "png", vec.Vec2{X: w, Y: h}, &bg, false); err != nil {
		return [32]byte{}, err
	}
	return s.Store(buf.Bytes()), nil
}

func httpError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger := genart.Logger()
	if status >= 500 {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", msg)
	} else {
		logger.Warn("bad request", "method", r.Method, "path", r.URL.Path, "status", status, "error", msg)
	}
	http.Error(w, msg, status)
}
