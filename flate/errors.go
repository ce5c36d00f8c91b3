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

import "fmt"

// Kind discriminates the ways a decode can fail. There is deliberately no
// chain of wrapped causes: a kind plus an optional byte offset is enough to
// act on or report.
type Kind int

const (
	// KindInvalidArgument covers malformed caller input: buffers that are
	// too short to contain a header, or a zlib header whose check bits
	// don't validate.
	KindInvalidArgument Kind = iota
	// KindTruncatedInput means the bit reader or byte cursor ran past the
	// end of the compressed buffer before satisfying a request.
	KindTruncatedInput
	// KindUnsupportedMethod means the zlib CM field was not 8 (deflate).
	KindUnsupportedMethod
	// KindUnsupportedWindowSize means CINFO implied a window over 32768.
	KindUnsupportedWindowSize
	// KindUnsupportedPresetDictionary means FDICT was set.
	KindUnsupportedPresetDictionary
	// KindReservedBlockType means BTYPE was 3.
	KindReservedBlockType
	// KindBlockSizeMismatch means a stored block's LEN and NLEN disagreed.
	KindBlockSizeMismatch
	// KindOverSubscribed covers malformed Huffman code-length tables: an
	// over-subscribed code, an incomplete tree outside the single-symbol
	// carve-out, or a dynamic block header declaring more literal/length
	// or distance codes than the format allows.
	KindOverSubscribed
	// KindMissingEndOfBlock means a dynamic block's literal table has no
	// code for symbol 256.
	KindMissingEndOfBlock
	// KindInvalidSymbol means a Huffman decode produced no match, or a
	// decoded literal/length symbol was out of range.
	KindInvalidSymbol
	// KindBadDistance means a back-reference's distance exceeded either
	// the bytes already written or the window implied by the zlib header.
	KindBadDistance
	// KindOutputOverflow means a write would exceed the caller's output
	// buffer.
	KindOutputOverflow
	// KindChecksumMismatch means the trailing Adler-32 did not match the
	// recomputed checksum of the decompressed output.
	KindChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindTruncatedInput:
		return "truncated input"
	case KindUnsupportedMethod:
		return "unsupported compression method"
	case KindUnsupportedWindowSize:
		return "unsupported window size"
	case KindUnsupportedPresetDictionary:
		return "unsupported preset dictionary"
	case KindReservedBlockType:
		return "reserved block type"
	case KindBlockSizeMismatch:
		return "stored block size mismatch"
	case KindOverSubscribed:
		return "over-subscribed huffman code"
	case KindMissingEndOfBlock:
		return "missing end-of-block code"
	case KindInvalidSymbol:
		return "invalid symbol"
	case KindBadDistance:
		return "bad back-reference distance"
	case KindOutputOverflow:
		return "output buffer overflow"
	case KindChecksumMismatch:
		return "checksum mismatch"
	default:
		return "unknown flate error"
	}
}

// Error reports a decode failure. Offset is the byte offset into the
// compressed input at which the failure was detected, or -1 when no
// particular offset applies.
type Error struct {
	Kind   Kind
	Offset int64
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("flate: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("flate: %s", e.Kind)
}

// Is allows errors.Is(err, flate.Err(KindBadDistance)) style matching
// without comparing offsets.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Err builds a bare Error of the given kind with no offset attached. Useful
// as a comparison target with errors.Is.
func Err(k Kind) *Error {
	return &Error{Kind: k, Offset: -1}
}

func errAt(k Kind, offset int) *Error {
	return &Error{Kind: k, Offset: int64(offset)}
}
