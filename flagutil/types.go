package flagutil

import (
	"errors"
	"strconv"
	"strings"
)

// SizeFlag parses a byte count given as a plain decimal number or a decimal
// number suffixed with K, M, or G (binary multiples: 1K = 1024). This type
// implements the flag.Value interface, for command-line flags bounding the
// size of a decompression output buffer.
type SizeFlag struct {
	val int64
}

func (f *SizeFlag) Bytes() int64 {
	return f.val
}

func (f *SizeFlag) Set(v string) error {
	if v == "" {
		return errors.New("empty size")
	}
	mult := int64(1)
	suffix := v[len(v)-1]
	switch suffix {
	case 'K', 'k':
		mult = 1 << 10
		v = v[:len(v)-1]
	case 'M', 'm':
		mult = 1 << 20
		v = v[:len(v)-1]
	case 'G', 'g':
		mult = 1 << 30
		v = v[:len(v)-1]
	}
	v = strings.TrimSpace(v)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return errors.New("not a size: " + v)
	}
	if n < 0 {
		return errors.New("size must not be negative")
	}
	f.val = n * mult
	return nil
}

func (f *SizeFlag) String() string {
	return strconv.FormatInt(f.val, 10)
}

// OffsetFlag parses a byte offset given as a plain decimal number or a
// 0x-prefixed hexadecimal number. This type implements the flag.Value
// interface, for a CLI flag identifying where in an output stream writing
// should begin.
type OffsetFlag struct {
	val int64
}

func (f *OffsetFlag) Offset() int64 {
	return f.val
}

func (f *OffsetFlag) Set(v string) error {
	if v == "" {
		return errors.New("empty offset")
	}
	base := 10
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		base = 16
		v = v[2:]
	}
	n, err := strconv.ParseInt(v, base, 64)
	if err != nil {
		return errors.New("not an offset: " + v)
	}
	if n < 0 {
		return errors.New("offset must not be negative")
	}
	f.val = n
	return nil
}

func (f *OffsetFlag) String() string {
	return strconv.FormatInt(f.val, 10)
}
