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
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/internal/imageio"
)

// handlePreslav paints the image in the request body.  The parameters are
// taken from the query string.
func (s *Server) handlePreslav(w http.ResponseWriter, r *http.Request) {
	j, err := parseJob(r)
	if err == nil {
		err = s.check(j)
	}
	if err != nil {
		httpError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUpload)
	ref, err := imageio.Decode(r.Body)
	if err != nil {
		status := http.StatusBadRequest
		if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		httpError(w, r, status, err.Error())
		return
	}

	id := uuid.NewString()
	start := time.Now()
	key, err := s.paint(ref, j, nil)
	if err != nil {
		httpError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	res := result{ID: id, Hash: hex.EncodeToString(key[:])}
	genart.Logger().Info("picture painted",
		"id", id, "hash", res.Hash, "iterations", j.Iterations, "duration", time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func parseJob(r *http.Request) (*job, error) {
	q := r.URL.Query()
	j := &job{}
	var err error
	if v := q.Get("iterations"); v != "" {
		if j.Iterations, err = strconv.Atoi(v); err != nil {
			return nil, errors.New("invalid iterations: " + v)
		}
	}
	if v := q.Get("size"); v != "" {
		if j.Size, err = strconv.Atoi(v); err != nil {
			return nil, errors.New("invalid size: " + v)
		}
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, errors.New("invalid seed: " + v)
		}
		j.Seed = &seed
	}
	return j, nil
}

// wsRequest is the first message of a client on the WebSocket.  The image
// is base64-encoded.
type wsRequest struct {
	Image []byte `json:"image"`
	job
}

// wsMessage is sent by the server on the WebSocket.
type wsMessage struct {
	Progress *float64 `json:"progress,omitempty"`
	ID       string   `json:"id,omitempty"`
	Hash     string   `json:"hash,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// progressStep is the smallest change of progress reported to clients.
const progressStep = 0.01

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// handlePreslavWS paints one picture per connection and streams the
// progress to the client.
func (s *Server) handlePreslavWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		genart.Logger().Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.opts.MaxUpload * 2)

	logger := genart.Logger()
	fail := func(msg string) {
		logger.Warn("websocket request failed", "remote", r.RemoteAddr, "error", msg)
		conn.WriteJSON(wsMessage{Error: msg})
	}

	var req wsRequest
	if err := conn.ReadJSON(&req); err != nil {
		fail("invalid request: " + err.Error())
		return
	}
	if err := s.check(&req.job); err != nil {
		fail(err.Error())
		return
	}
	ref, err := imageio.LoadBytes(req.Image)
	if err != nil {
		fail(err.Error())
		return
	}

	id := uuid.NewString()
	last := -1.0
	var writeErr error
	progress := func(f float64) {
		if writeErr != nil || f-last < progressStep {
			return
		}
		last = f
		writeErr = conn.WriteJSON(wsMessage{Progress: &f})
	}

	start := time.Now()
	key, err := s.paint(ref, &req.job, progress)
	if err != nil {
		fail(err.Error())
		return
	}
	res := wsMessage{ID: id, Hash: hex.EncodeToString(key[:])}
	logger.Info("picture painted",
		"id", id, "hash", res.Hash, "iterations", req.Iterations, "duration", time.Since(start))
	if writeErr != nil {
		logger.Warn("websocket client went away", "id", id, "error", writeErr)
		return
	}

	conn.WriteJSON(res)
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
