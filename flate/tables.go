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

// RFC 1951 section 3.2.7: the permutation in which code-length-alphabet
// code lengths are transmitted.
var codeLengthOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

const (
	maxLitSymbols  = 286 // RFC 1951 3.2.5: symbols 0..285 are defined
	maxDistSymbols = 30  // symbols 0..29 are defined
)

// RFC 1951 section 3.2.5: length and distance base values and extra-bit
// counts, indexed by (symbol - 257) for lengths and by symbol for
// distances.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27,
	31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2,
	2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distanceBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129,
	193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distanceExtraBits = [30]int{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6,
	6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

var (
	fixedLitTable  *huffmanTable
	fixedDistTable *huffmanTable
)

// init builds the RFC 1951 section 3.2.6 fixed Huffman tables once, for
// reuse across every fixed-Huffman block any Decode call encounters.
func init() {
	litLengths := make([]int, 288)
	for i := 0; i < 144; i++ {
		litLengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		litLengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		litLengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		litLengths[i] = 8
	}
	t, err := newHuffmanTable(litLengths)
	if err != nil {
		panic("flate: fixed literal table: " + err.Error())
	}
	fixedLitTable = t

	// Distance codes 30 and 31 never occur in valid data but still take
	// part in the fixed code, which keeps the tree complete.
	distLengths := make([]int, 32)
	for i := range distLengths {
		distLengths[i] = 5
	}
	dt, err := newHuffmanTable(distLengths)
	if err != nil {
		panic("flate: fixed distance table: " + err.Error())
	}
	fixedDistTable = dt
}

func fixedTables() (*huffmanTable, *huffmanTable) {
	return fixedLitTable, fixedDistTable
}
