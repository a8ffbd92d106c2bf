package rlbits

import "errors"

// ErrOutOfBounds is returned when a read, skip or seek would move the cursor
// outside the buffer's declared bit length.
var ErrOutOfBounds = errors.New("rlbits: read beyond buffer")

// ErrInvalidLength is returned when a decoded string length exceeds the
// sanity bound of maxStringBytes.
var ErrInvalidLength = errors.New("rlbits: invalid string length")

// ErrInvalidVersion is returned instead of ErrInvalidLength when the reader
// carries an all-zero version context. It usually means the caller built the
// reader before parsing the replay header.
var ErrInvalidVersion = errors.New("rlbits: invalid version context")

// ErrInvalidWidth is returned for bit widths a decoder cannot represent.
var ErrInvalidWidth = errors.New("rlbits: invalid bit width")

// ErrInvalidBound is returned by ReadBounded for an empty range.
var ErrInvalidBound = errors.New("rlbits: invalid bounded range")

// ErrInvalidSize is returned when a buffer's bit length does not fit its words.
var ErrInvalidSize = errors.New("rlbits: invalid buffer size")
