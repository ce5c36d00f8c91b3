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

package flate

import "testing"

func TestBitReaderLSBFirst(t *testing.T) {
	// 0xB3 0x01 little-endian-bit-packed is 1,1,0,0,1,1,0,1, 1,0,0,0,...
	br := NewBitReader([]byte{0xB3, 0x01})

	want := []uint32{1, 1, 0, 0, 1, 1, 0, 1, 1}
	for i, w := range want {
		got, err := br.GetBits(1)
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBitReaderMultiBit(t *testing.T) {
	br := NewBitReader([]byte{0xB3, 0x01})
	got, err := br.GetBits(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x3 {
		t.Errorf("got %#x, want 0x3", got)
	}
	got, err = br.GetBits(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xB {
		t.Errorf("got %#x, want 0xb", got)
	}
}

func TestBitReaderZeroBits(t *testing.T) {
	br := NewBitReader([]byte{0xFF})
	got, err := br.GetBits(0)
	if err != nil || got != 0 {
		t.Errorf("GetBits(0) = %d, %v; want 0, nil", got, err)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	br := NewBitReader([]byte{0x01})
	if _, err := br.GetBits(16); err == nil {
		t.Fatal("expected truncation error")
	} else if fe, ok := err.(*Error); !ok || fe.Kind != KindTruncatedInput {
		t.Errorf("got %v, want KindTruncatedInput", err)
	}
}

func TestBitReaderAlignByte(t *testing.T) {
	br := NewBitReader([]byte{0xFF, 0xAA, 0xBB})
	if _, err := br.GetBits(3); err != nil {
		t.Fatal(err)
	}
	br.AlignByte()
	b, err := br.ReadBytes(2)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0xAA || b[1] != 0xBB {
		t.Errorf("got %x, want aa bb", b)
	}
}

func TestBitReaderGetBits32(t *testing.T) {
	br := NewBitReader([]byte{0x01, 0x02, 0x03, 0x04})
	got, err := br.GetBits(32)
	if err != nil {
		t.Fatal(err)
	}
	want := uint32(0x01) | uint32(0x02)<<8 | uint32(0x03)<<16 | uint32(0x04)<<24
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}
