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

package zlib

import (
	"testing"

	"github.com/coreos/go-zlib/flate"
)

func TestAdler32Vectors(t *testing.T) {
	cases := []struct {
		data []byte
		want uint32
	}{
		{nil, 1},
		{[]byte("a"), 0x00620062},
		{[]byte("abc"), 0x024d0127},
	}
	for _, c := range cases {
		if got := adler32(c.data, 1); got != c.want {
			t.Errorf("adler32(%q) = %#x, want %#x", c.data, got, c.want)
		}
	}
}

// helloStream is the minimal stored-block zlib stream: header 78 01, a
// single stored block holding "hello", and its Adler-32 trailer.
func helloStream() []byte {
	return []byte{
		0x78, 0x01,
		0x01, 0x05, 0x00, 0xFA, 0xFF,
		'h', 'e', 'l', 'l', 'o',
		0x06, 0x2C, 0x02, 0x15,
	}
}

func TestDecompressStoredBlock(t *testing.T) {
	out := make([]byte, 16)
	n, err := Decompress(helloStream(), out)
	if err != nil {
		t.Fatal(err)
	}
	if string(out[:n]) != "hello" {
		t.Errorf("got %q, want %q", out[:n], "hello")
	}
}

func TestDecompressBadCheckBits(t *testing.T) {
	b := append([]byte{0x78, 0x00}, helloStream()[2:]...)
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindInvalidArgument {
		t.Errorf("got %v, want KindInvalidArgument", fe.Kind)
	}
}

func TestDecompressUnsupportedMethod(t *testing.T) {
	b := append([]byte{0x09, 0x15}, helloStream()[2:]...)
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindUnsupportedMethod {
		t.Errorf("got %v, want KindUnsupportedMethod", fe.Kind)
	}
}

func TestDecompressUnsupportedWindowSize(t *testing.T) {
	b := append([]byte{0x88, 0x1C}, helloStream()[2:]...)
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindUnsupportedWindowSize {
		t.Errorf("got %v, want KindUnsupportedWindowSize", fe.Kind)
	}
}

func TestDecompressPresetDictionaryRejected(t *testing.T) {
	b := append([]byte{0x78, 0x20}, helloStream()[2:]...)
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindUnsupportedPresetDictionary {
		t.Errorf("got %v, want KindUnsupportedPresetDictionary", fe.Kind)
	}
}

func TestDecompressChecksumMismatch(t *testing.T) {
	b := helloStream()
	b[len(b)-1] ^= 0xFF
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindChecksumMismatch {
		t.Errorf("got %v, want KindChecksumMismatch", fe.Kind)
	}
}

func TestDecompressTruncatedTrailer(t *testing.T) {
	b := helloStream()
	b = b[:len(b)-4]
	_, err := Decompress(b, make([]byte, 16))
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindTruncatedInput {
		t.Errorf("got %v, want KindTruncatedInput", fe.Kind)
	}
}

func TestDecompressOutputTooSmall(t *testing.T) {
	out := make([]byte, 2)
	_, err := Decompress(helloStream(), out)
	if err == nil {
		t.Fatal("expected error")
	}
	if fe := err.(*flate.Error); fe.Kind != flate.KindOutputOverflow {
		t.Errorf("got %v, want KindOutputOverflow", fe.Kind)
	}
}
