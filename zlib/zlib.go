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

// Package zlib decodes an RFC 1950 zlib stream: a two-byte header, a
// deflate-compressed payload, and a trailing Adler-32 checksum of the
// original bytes.
package zlib

import "github.com/coreos/go-zlib/flate"

const maxWindowSize = 32768

// Decompress parses compressed as a zlib stream and writes the decoded
// bytes into out starting at offset 0, returning the number of bytes
// written. It validates the header, decodes every deflate block via
// flate.Decode, and verifies the trailing Adler-32 checksum before
// reporting success.
func Decompress(compressed []byte, out []byte) (int, error) {
	if len(compressed) < 2 {
		return 0, flate.Err(flate.KindInvalidArgument)
	}

	cmf := compressed[0]
	flg := compressed[1]

	cm := cmf & 0x0F
	if cm != 8 {
		return 0, flate.Err(flate.KindUnsupportedMethod)
	}

	cinfo := cmf >> 4
	windowSize := 1 << (uint(cinfo) + 8)
	if windowSize > maxWindowSize {
		return 0, flate.Err(flate.KindUnsupportedWindowSize)
	}

	header := uint16(cmf)<<8 | uint16(flg)
	if header%31 != 0 {
		return 0, flate.Err(flate.KindInvalidArgument)
	}

	if flg&0x20 != 0 {
		return 0, flate.Err(flate.KindUnsupportedPresetDictionary)
	}

	br := flate.NewBitReader(compressed[2:])
	n, err := flate.Decode(br, out, windowSize)
	if err != nil {
		return n, err
	}

	br.AlignByte()
	if br.Remaining() < 4 {
		return n, flate.Err(flate.KindTruncatedInput)
	}
	trailer, err := br.ReadBytes(4)
	if err != nil {
		return n, err
	}
	want := uint32(trailer[0])<<24 | uint32(trailer[1])<<16 | uint32(trailer[2])<<8 | uint32(trailer[3])
	got := adler32(out[:n], 1)
	if got != want {
		return n, flate.Err(flate.KindChecksumMismatch)
	}
	return n, nil
}
