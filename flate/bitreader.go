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

// BitReader pulls little-endian-packed bits out of an immutable byte slice.
// Bits are LSB-first: a freshly read byte is shifted into the bit buffer at
// the current bit count, and requests for n bits consume the low n bits.
//
// A BitReader is stack-scoped: it borrows src for its entire lifetime and
// allocates nothing.
type BitReader struct {
	src   []byte
	pos   int    // next unread byte in src
	buf   uint32 // pending bits, low-order first
	nbits uint   // number of valid bits in buf
}

// NewBitReader returns a BitReader positioned at the start of src.
func NewBitReader(src []byte) *BitReader {
	return &BitReader{src: src}
}

// GetBits returns the next n bits (0 <= n <= 32) as a little-endian-packed
// integer and consumes them. It refills the bit buffer a byte at a time
// until at least n bits are available, failing with KindTruncatedInput if
// the input is exhausted first.
func (br *BitReader) GetBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	for br.nbits < n {
		if br.pos >= len(br.src) {
			return 0, errAt(KindTruncatedInput, br.pos)
		}
		br.buf |= uint32(br.src[br.pos]) << br.nbits
		br.pos++
		br.nbits += 8
	}
	if n == 32 {
		// Masking with 1<<32-1 is undefined in a 32-bit shift; returning
		// the whole buffer and resetting state sidesteps it.
		v := br.buf
		br.buf, br.nbits = 0, 0
		return v, nil
	}
	mask := uint32(1)<<n - 1
	v := br.buf & mask
	br.buf >>= n
	br.nbits -= n
	return v, nil
}

// AlignByte discards any bits left over from the most recently buffered
// byte. GetBits only ever reads as many bytes as a request needs, so at
// most one partial byte is ever buffered ahead of what has been consumed;
// dropping it is equivalent to rewinding the byte cursor to just past that
// byte, with no bytes lost.
func (br *BitReader) AlignByte() {
	br.buf, br.nbits = 0, 0
}

// ReadBytes reads n raw bytes directly from the byte cursor, bypassing the
// bit buffer. Callers must only do this immediately after AlignByte (or
// before any GetBits call), so that no buffered bits are silently dropped.
func (br *BitReader) ReadBytes(n int) ([]byte, error) {
	if br.pos+n > len(br.src) {
		return nil, errAt(KindTruncatedInput, br.pos)
	}
	b := br.src[br.pos : br.pos+n]
	br.pos += n
	return b, nil
}

// Pos reports the absolute offset, in src, of the next unread byte.
func (br *BitReader) Pos() int {
	return br.pos
}

// Remaining reports how many bytes of src have not yet been consumed.
func (br *BitReader) Remaining() int {
	return len(br.src) - br.pos
}
