package rlbits

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// maxStringBytes bounds the payload of a single string.
const maxStringBytes = 1024

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadBytes reads n whole bytes. A byte-aligned cursor copies them straight
// out of the buffer; otherwise each byte is assembled from 8-bit reads.
// Both paths return the same bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, n)
	}
	if boundsChecked && n > r.Remaining()/8 {
		return nil, fmt.Errorf("%w: %d bytes at position %d of %d",
			ErrOutOfBounds, n, r.BitPos(), r.buf.sizeInBits)
	}
	out := make([]byte, 0, n)
	if r.ByteAligned() {
		out = r.buf.appendBytes(out, r.BytePos(), n)
		r.moveTo(r.BitPos() + n*8)
		return out, nil
	}
	for i := 0; i < n; i++ {
		out = append(out, byte(r.bits(8)))
	}
	return out, nil
}

// ReadString decodes a length-prefixed, NUL terminated string.
//
// The prefix is a signed 32-bit length L. A positive L is followed by L
// single-byte characters. A negative L is followed by -2*L bytes of UTF-16LE
// text, which is returned converted to UTF-8. The terminator and anything
// after it are dropped.
//
// Payloads above 1024 bytes fail with ErrInvalidLength, or with
// ErrInvalidVersion when the reader has no version context.
func (r *Reader) ReadString() (string, error) {
	start := r.BitPos()
	length, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}

	wide := length < 0
	n := int64(length)
	if wide {
		n *= -2
	}
	if n > maxStringBytes {
		if r.version.IsZero() {
			return "", fmt.Errorf("%w: string length %d at bit %d with version %s",
				ErrInvalidVersion, length, start, r.version)
		}
		return "", fmt.Errorf("%w: read %d, %d bytes at bit %d",
			ErrInvalidLength, length, n, start)
	}

	raw, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !wide {
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		return string(raw), nil
	}

	text, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding wide string at bit %d: %w", start, err)
	}
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return string(text), nil
}
