package rlbits

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// wordBits is the width of one buffer word.
const wordBits = 32

var bo = binary.LittleEndian

// Buffer is an immutable view of 32-bit words holding a replay network
// stream. Bit i of the stream is bit (i % 32) of word i / 32, so a stream
// written as little-endian bytes maps onto the words without reordering.
//
// A Buffer is never modified after construction and is safe to share between
// any number of Readers and goroutines.
type Buffer struct {
	words      []uint32
	sizeInBits int

	// view aliases words as bytes on little-endian hosts, nil otherwise.
	view []byte
}

// NewBuffer wraps words without copying them. sizeInBits is the number of
// valid bits in the stream; it may be smaller than len(words)*32 when the
// last word is only partially filled. The caller must not modify words
// afterwards.
func NewBuffer(words []uint32, sizeInBits int) (*Buffer, error) {
	if sizeInBits < 0 || sizeInBits > len(words)*wordBits {
		return nil, fmt.Errorf("%w: %d bits do not fit %d words",
			ErrInvalidSize, sizeInBits, len(words))
	}
	b := &Buffer{words: words, sizeInBits: sizeInBits}
	if !cpu.IsBigEndian && len(words) > 0 {
		b.view = unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*4)
	}
	return b, nil
}

// BufferFromBytes copies data into a word buffer. The resulting size is
// len(data)*8 bits; the last word is zero padded.
func BufferFromBytes(data []byte) *Buffer {
	words := make([]uint32, (len(data)+3)/4)
	full := len(data) / 4
	for i := 0; i < full; i++ {
		words[i] = bo.Uint32(data[i*4:])
	}
	if tail := data[full*4:]; len(tail) > 0 {
		var last [4]byte
		copy(last[:], tail)
		words[full] = bo.Uint32(last[:])
	}
	b, _ := NewBuffer(words, len(data)*8)
	return b
}

// Size returns the length of the stream in bits.
func (b *Buffer) Size() int {
	return b.sizeInBits
}

// Words returns the number of words backing the buffer.
func (b *Buffer) Words() int {
	return len(b.words)
}

// appendBytes appends n bytes starting at byte offset off. The range must
// already be bounds checked against the stream size.
func (b *Buffer) appendBytes(dst []byte, off, n int) []byte {
	if b.view != nil {
		return append(dst, b.view[off:off+n]...)
	}
	for i := off; i < off+n; i++ {
		dst = append(dst, byte(b.words[i/4]>>(uint(i%4)*8)))
	}
	return dst
}
