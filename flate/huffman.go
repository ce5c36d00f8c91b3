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

// maxCodeLen is the longest Huffman code length DEFLATE permits.
const maxCodeLen = 15

// huffmanTable is a canonical-Huffman lookup built from per-symbol code
// lengths: a count of codes at each length, and the symbols themselves
// sorted by (length, symbol). It decodes one bit at a time via the
// length-indexed walk of RFC 1951's reference decoder (puff.c): simple to
// audit, and fast enough that a two-level chunked table isn't needed here.
type huffmanTable struct {
	maxBits int
	counts  [maxCodeLen + 1]int
	symbols []uint16
}

// isEmpty reports whether the table has no codes at all, meaning this kind
// of symbol (almost always a distance code) never occurs in the block.
func (t *huffmanTable) isEmpty() bool {
	return t == nil || len(t.symbols) == 0
}

// newHuffmanTable builds a canonical Huffman table from one length per
// symbol. A length of 0 means the symbol is unused.
func newHuffmanTable(lengths []int) (*huffmanTable, error) {
	var counts [maxCodeLen + 1]int
	k := len(lengths)
	for _, l := range lengths {
		if l < 0 || l > maxCodeLen {
			return nil, Err(KindOverSubscribed)
		}
		counts[l]++
	}
	if counts[0] == k {
		return &huffmanTable{}, nil
	}

	left := 1
	for l := 1; l <= maxCodeLen; l++ {
		left <<= 1
		left -= counts[l]
		if left < 0 {
			return nil, Err(KindOverSubscribed)
		}
	}
	if left > 0 {
		// An incomplete tree is only legal for the degenerate
		// single-symbol table RFC 1951 allows for a distance alphabet: one
		// used code, of length exactly 1. Anything else incomplete is
		// rejected outright; see the design notes on why tolerating it
		// generally is a bug, not a feature.
		if k-counts[0] != 1 || counts[1] != 1 {
			return nil, Err(KindOverSubscribed)
		}
	}

	var offsets [maxCodeLen + 1]int
	for l := 1; l < maxCodeLen; l++ {
		offsets[l+1] = offsets[l] + counts[l]
	}

	symbols := make([]uint16, k-counts[0])
	next := offsets
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		symbols[next[l]] = uint16(sym)
		next[l]++
	}

	maxBits := 0
	for l := maxCodeLen; l >= 1; l-- {
		if counts[l] != 0 {
			maxBits = l
			break
		}
	}

	return &huffmanTable{maxBits: maxBits, counts: counts, symbols: symbols}, nil
}

// decode reads one Huffman-encoded symbol from br according to t.
//
// The walk tracks, for each code length l in turn, the first code value and
// first symbol index at that length (first_code/first_index); as soon as
// the just-built code falls within the range of codes of length l, the
// matching symbol is known. Bits are consumed exactly up to the decoded
// code's length, never all of maxBits.
func (t *huffmanTable) decode(br *BitReader) (int, error) {
	if t.isEmpty() {
		return 0, Err(KindInvalidSymbol)
	}
	code, firstCode, firstIndex := 0, 0, 0
	for l := 1; l <= t.maxBits; l++ {
		bit, err := br.GetBits(1)
		if err != nil {
			return 0, err
		}
		code = (code << 1) | int(bit)
		c := t.counts[l]
		if code-c < firstCode {
			return int(t.symbols[firstIndex+(code-firstCode)]), nil
		}
		firstCode = (firstCode + c) << 1
		firstIndex += c
	}
	return 0, Err(KindInvalidSymbol)
}
