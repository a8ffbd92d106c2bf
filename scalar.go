package rlbits

import (
	"fmt"
	"math"
	"unsafe"
)

// Integer is the set of fixed-width integer types ReadN can produce.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// ReadN reads width bits into T. A width of 0 reads the natural width of
// T. Signed results are not sign extended from narrower widths: the raw bits
// are converted as if they were the low bits of T.
func ReadN[T Integer](r *Reader, width uint) (T, error) {
	natural := uint(unsafe.Sizeof(T(0))) * 8
	if width == 0 {
		width = natural
	}
	if width > natural {
		return 0, fmt.Errorf("%w: %d bits do not fit a %d-bit integer", ErrInvalidWidth, width, natural)
	}
	v, err := r.ReadBits(width)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// ReadBool reads a single bit.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v != 0, err
}

// ReadUint8 reads 8 bits.
func (r *Reader) ReadUint8() (uint8, error) { return ReadN[uint8](r, 0) }

// ReadUint16 reads 16 bits.
func (r *Reader) ReadUint16() (uint16, error) { return ReadN[uint16](r, 0) }

// ReadUint32 reads 32 bits.
func (r *Reader) ReadUint32() (uint32, error) { return ReadN[uint32](r, 0) }

// ReadUint64 reads 64 bits.
func (r *Reader) ReadUint64() (uint64, error) { return ReadN[uint64](r, 0) }

// ReadInt8 reads 8 bits as a two's complement value.
func (r *Reader) ReadInt8() (int8, error) { return ReadN[int8](r, 0) }

// ReadInt16 reads 16 bits as a two's complement value.
func (r *Reader) ReadInt16() (int16, error) { return ReadN[int16](r, 0) }

// ReadInt32 reads 32 bits as a two's complement value.
func (r *Reader) ReadInt32() (int32, error) { return ReadN[int32](r, 0) }

// ReadInt64 reads 64 bits as a two's complement value.
func (r *Reader) ReadInt64() (int64, error) { return ReadN[int64](r, 0) }

// ReadFloat32 reads 32 bits and returns them as an IEEE-754 binary32 value.
// The bit pattern is copied, not converted.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFixedFloat decodes a fixed compressed float in [-maxValue, maxValue]
// stored as a bounded integer of numBits bits (2-31) with a bias of
// 2^(numBits-1).
func (r *Reader) ReadFixedFloat(maxValue int32, numBits int) (float32, error) {
	if numBits < 2 || numBits > 31 {
		return 0, fmt.Errorf("%w: fixed float with %d bits", ErrInvalidWidth, numBits)
	}
	maxBitValue := int32(1)<<(numBits-1) - 1
	bias := int32(1) << (numBits - 1)
	serIntMax := uint32(1) << numBits

	delta, err := r.ReadBounded(serIntMax)
	if err != nil {
		return 0, err
	}
	unscaled := float32(int32(delta) - bias)

	if maxValue > maxBitValue {
		// Range wider than the integer half-range: scale up.
		invScale := float32(maxValue) / float32(maxBitValue)
		return unscaled * invScale, nil
	}
	scale := float32(maxBitValue) / float32(maxValue)
	invScale := 1 / scale
	return unscaled * invScale, nil
}
