// Package rlbits decodes the bit-packed network stream of Rocket League
// replays.
//
// A Reader is a cursor over an immutable word Buffer. Values narrower than a
// byte are read least-significant bit first and may straddle word
// boundaries. On top of the raw ReadBits primitive the package implements the
// compact encodings used by the engine: range-bounded integers, fixed
// compressed floats, quantized vectors, compressed rotators, smallest-three
// quaternions, platform-tagged unique identifiers and length-prefixed
// strings.
//
// Several decoders change behaviour with the replay's engine, licensee and
// net versions, so every Reader carries a Version.
package rlbits

import "fmt"

// Reader is a bit cursor over a Buffer. Readers must be created with
// NewReader or Clone; the zero value has no buffer and is not usable.
//
// A Reader is not safe for concurrent use. It is a small value, so decoding
// independent sections in parallel is done by giving each goroutine its own
// Clone over the shared Buffer.
type Reader struct {
	buf     *Buffer
	word    int  // index of the current word
	bit     uint // 0-31, bit offset within the current word
	version Version
}

var emptyBuffer = &Buffer{}

// NewReader creates a Reader positioned at the first bit of buf. A nil buf
// behaves like an empty buffer.
func NewReader(buf *Buffer, version Version) *Reader {
	if buf == nil {
		buf = emptyBuffer
	}
	return &Reader{buf: buf, version: version}
}

// Clone returns an independent cursor at the same position over the same
// buffer. The underlying words are not copied.
func (r *Reader) Clone() Reader {
	return *r
}

// Version returns the format version context the reader was created with.
func (r *Reader) Version() Version {
	return r.version
}

// Size returns the length of the underlying stream in bits.
func (r *Reader) Size() int {
	return r.buf.sizeInBits
}

// BitPos returns the absolute bit position of the cursor.
func (r *Reader) BitPos() int {
	return r.word*wordBits + int(r.bit)
}

// BytePos returns the index of the byte holding the current bit.
func (r *Reader) BytePos() int {
	return r.word*(wordBits/8) + int(r.bit/8)
}

// Remaining returns the number of bits left before the end of the stream.
func (r *Reader) Remaining() int {
	return r.buf.sizeInBits - r.BitPos()
}

// CanRead reports whether at least one more bit is available.
func (r *Reader) CanRead() bool {
	return r.BitPos() < r.buf.sizeInBits
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (r *Reader) ByteAligned() bool {
	return r.bit%8 == 0
}

// ReadBits reads width bits (0-64) and returns them right-aligned. The first
// bit read is the least significant bit of the result. Reading 0 bits
// returns 0 and leaves the cursor where it is.
func (r *Reader) ReadBits(width uint) (uint64, error) {
	if width == 0 {
		return 0, nil
	}
	if width > 64 {
		return 0, fmt.Errorf("%w: cannot read %d bits into 64", ErrInvalidWidth, width)
	}
	if err := r.check(width); err != nil {
		return 0, err
	}
	return r.bits(width), nil
}

// bits reads width bits without bounds checking. width must be in [1, 64].
func (r *Reader) bits(width uint) uint64 {
	var (
		result uint64
		shift  uint
	)
	for width > 0 {
		take := min(width, wordBits-r.bit)
		chunk := uint64(r.buf.words[r.word] >> r.bit)
		if take < wordBits {
			chunk &= (1 << take) - 1
		}
		result |= chunk << shift
		shift += take
		width -= take
		r.bit += take
		if r.bit == wordBits {
			r.word++
			r.bit = 0
		}
	}
	return result
}

// check verifies that width more bits can be consumed.
func (r *Reader) check(width uint) error {
	if !boundsChecked {
		return nil
	}
	if pos := r.BitPos(); uint64(width) > uint64(r.buf.sizeInBits-pos) {
		return fmt.Errorf("%w: %d bits at position %d of %d",
			ErrOutOfBounds, width, pos, r.buf.sizeInBits)
	}
	return nil
}

// Skip advances the cursor by n bits without decoding them.
func (r *Reader) Skip(n uint) error {
	if err := r.check(n); err != nil {
		return err
	}
	r.moveTo(r.BitPos() + int(n))
	return nil
}

// SeekBackward rewinds the cursor by n bits. It fails without moving if that
// would go before the start of the stream.
func (r *Reader) SeekBackward(n uint) error {
	pos := r.BitPos()
	if uint64(n) > uint64(pos) {
		return fmt.Errorf("%w: cannot rewind %d bits from position %d", ErrOutOfBounds, n, pos)
	}
	r.moveTo(pos - int(n))
	return nil
}

// Seek moves the cursor to the absolute bit position pos, which may be
// anywhere in [0, Size()]. It is the restore half of a BitPos snapshot.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > r.buf.sizeInBits {
		return fmt.Errorf("%w: seek to %d of %d", ErrOutOfBounds, pos, r.buf.sizeInBits)
	}
	r.moveTo(pos)
	return nil
}

func (r *Reader) moveTo(pos int) {
	r.word = pos / wordBits
	r.bit = uint(pos % wordBits)
}
