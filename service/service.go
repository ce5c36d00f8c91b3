// Copyright 2016 CoreOS, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package service exposes zlib.Decompress over HTTP: POST a zlib stream,
// get the decompressed bytes back, or a structured error.
package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/coreos/go-zlib/flate"
	"github.com/coreos/go-zlib/zlib"
)

// MaxSize bounds how large a request body (and thus decompressed output
// buffer) the handler will accept; a zero value means the default of 64MiB.
type Handler struct {
	MaxSize int64
}

const defaultMaxSize = 64 << 20

// errorResponse is the JSON body returned for any failed decode.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (h *Handler) maxSize() int64 {
	if h.MaxSize > 0 {
		return h.MaxSize
	}
	return defaultMaxSize
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("/decompress", h.decompress)
	mux.HandleFunc("/healthz", h.healthz)
	mux.ServeHTTP(w, r)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) decompress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	limit := h.maxSize()
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if int64(len(body)) > limit {
		writeError(w, http.StatusRequestEntityTooLarge, errors.New("request body exceeds configured size limit"))
		return
	}

	out := make([]byte, limit)
	n, err := zlib.Decompress(body, out)
	for err != nil {
		fe, ok := err.(*flate.Error)
		if !ok {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if fe.Kind == flate.KindOutputOverflow {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, statusForKind(fe.Kind), err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(out[:n])
}

func statusForKind(k flate.Kind) int {
	switch k {
	case flate.KindChecksumMismatch:
		return http.StatusUnprocessableEntity
	case flate.KindOutputOverflow:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	kind := "unknown"
	if fe, ok := err.(*flate.Error); ok {
		kind = fe.Kind.String()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Kind: kind})
}
