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

package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func referencePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(30 * x), G: uint8(40 * y), B: 200, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestServer(t *testing.T, opts Options) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, body
}

func TestParseHash(t *testing.T) {
	valid := strings.Repeat("0123456789abcdef", 4)
	key, err := ParseHash(valid)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(key[:]) != valid {
		t.Errorf("got %x", key)
	}

	if _, err := ParseHash("xyz"); err == nil || errors.Is(err, ErrHashLength) {
		t.Errorf("malformed hex: %v", err)
	}
	_, err = ParseHash("abcd")
	if !errors.Is(err, ErrHashLength) || !strings.Contains(err.Error(), "16 bits") {
		t.Errorf("short hash: %v", err)
	}
}

func TestImageEndpoint(t *testing.T) {
	s, ts := newTestServer(t, Options{})

	data := []byte("not really a PNG file")
	key := s.Store(data)
	if key != sha256.Sum256(data) {
		t.Fatal("key is not the SHA-256 hash of the data")
	}

	resp, err := http.Get(ts.URL + "/image/" + hex.EncodeToString(key[:]))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	if !bytes.Equal(body, data) {
		t.Errorf("got %q", body)
	}

	missing := strings.Repeat("00", 32)
	for _, test := range []struct {
		hash string
		msg  string
	}{
		{"zz", "invalid byte"},
		{"abcd", "16 bits"},
		{strings.Repeat("ab", 33), "264 bits"},
		{missing, "Value not found."},
	} {
		status, body := get(t, ts.URL+"/image/"+test.hash)
		if status != http.StatusBadRequest {
			t.Errorf("%s: status %d", test.hash, status)
		}
		if !strings.Contains(string(body), test.msg) {
			t.Errorf("%s: body %q does not mention %q", test.hash, body, test.msg)
		}
	}
}

func TestCacheEviction(t *testing.T) {
	s, err := New(Options{CacheSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	a := s.Store([]byte("a"))
	b := s.Store([]byte("b"))
	c := s.Store([]byte("c"))
	if _, ok := s.Lookup(a); ok {
		t.Error("oldest entry was not evicted")
	}
	for _, key := range [][32]byte{b, c} {
		if _, ok := s.Lookup(key); !ok {
			t.Errorf("entry %x missing", key[:4])
		}
	}
}

func postPreslav(t *testing.T, url, query string, body []byte) (int, result) {
	t.Helper()
	resp, err := http.Post(url+"/preslav?"+query, "image/png", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var res result
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode, res
}

func TestPreslav(t *testing.T) {
	_, ts := newTestServer(t, Options{})
	ref := referencePNG(t)

	status, res := postPreslav(t, ts.URL, "iterations=40&seed=1&size=16", ref)
	if status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if res.ID == "" {
		t.Error("no job id")
	}

	status, body := get(t, ts.URL+"/image/"+res.Hash)
	if status != http.StatusOK {
		t.Fatalf("image status %d", status)
	}
	if sum := sha256.Sum256(body); hex.EncodeToString(sum[:]) != res.Hash {
		t.Error("hash does not match the image")
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("image size %dx%d, want 16x12", b.Dx(), b.Dy())
	}

	// equal seeds give byte-identical images
	_, res2 := postPreslav(t, ts.URL, "iterations=40&seed=1&size=16", ref)
	if res2.Hash != res.Hash {
		t.Error("equal seeds gave different images")
	}
	if res2.ID == res.ID {
		t.Error("job ids are reused")
	}
}

func TestPreslavBadRequest(t *testing.T) {
	_, ts := newTestServer(t, Options{MaxIterations: 100, MaxSize: 64})
	ref := referencePNG(t)

	for _, test := range []struct {
		query string
		body  []byte
	}{
		{"iterations=10", []byte("garbage")},
		{"iterations=abc", ref},
		{"iterations=101", ref},
		{"iterations=-1", ref},
		{"size=65", ref},
		{"size=x", ref},
		{"seed=-5", ref},
	} {
		if status, _ := postPreslav(t, ts.URL, test.query, test.body); status != http.StatusBadRequest {
			t.Errorf("%s: status %d", test.query, status)
		}
	}
}

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t, Options{})
	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK || !strings.Contains(string(body), "POST /preslav") {
		t.Errorf("status %d, body %q", status, body)
	}
	if status, _ := get(t, ts.URL+"/nothing"); status != http.StatusNotFound {
		t.Errorf("unknown path: status %d", status)
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/preslav/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPreslavWebSocket(t *testing.T) {
	s, ts := newTestServer(t, Options{})
	conn := dialWS(t, ts)

	seed := uint64(3)
	req := map[string]any{
		"image":      referencePNG(t),
		"iterations": 200,
		"seed":       seed,
		"size":       16,
	}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}

	var progress []float64
	var final wsMessage
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}
		if msg.Error != "" {
			t.Fatal(msg.Error)
		}
		if msg.Progress != nil {
			progress = append(progress, *msg.Progress)
			continue
		}
		final = msg
		break
	}

	if len(progress) < 10 {
		t.Errorf("only %d progress messages", len(progress))
	}
	for i, f := range progress {
		if f < 0 || f >= 1 || (i > 0 && f <= progress[i-1]) {
			t.Errorf("progress %d: %g", i, f)
		}
	}
	if final.ID == "" {
		t.Error("no job id")
	}

	key, err := ParseHash(final.Hash)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Lookup(key); !ok {
		t.Error("picture is not cached")
	}
}

func TestPreslavWebSocketBadImage(t *testing.T) {
	_, ts := newTestServer(t, Options{})
	conn := dialWS(t, ts)

	if err := conn.WriteJSON(map[string]any{"image": []byte("garbage")}); err != nil {
		t.Fatal(err)
	}
	var msg wsMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Error == "" {
		t.Errorf("got %+v", msg)
	}
}
