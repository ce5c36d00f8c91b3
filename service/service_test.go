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

package service

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// helloStream is the minimal stored-block zlib stream decoding to "hello",
// the same fixture used by the zlib package's own tests.
func helloStream() []byte {
	return []byte{
		0x78, 0x01,
		0x01, 0x05, 0x00, 0xFA, 0xFF,
		'h', 'e', 'l', 'l', 'o',
		0x06, 0x2C, 0x02, 0x15,
	}
}

func TestDecompressHandlerSuccess(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/decompress", bytes.NewReader(helloStream()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "hello" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "hello")
	}
}

func TestDecompressHandlerChecksumMismatch(t *testing.T) {
	bad := helloStream()
	bad[len(bad)-1] ^= 0xFF

	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/decompress", bytes.NewReader(bad))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestDecompressHandlerTooLarge(t *testing.T) {
	h := &Handler{MaxSize: 4}
	req := httptest.NewRequest(http.MethodPost, "/decompress", bytes.NewReader(helloStream()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHealthz(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
