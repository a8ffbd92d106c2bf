package rlbits

import "fmt"

// ReadBounded decodes an integer known to lie in [0, max).
//
// The engine writes floor(log2(max)) bits, least significant first, followed
// by one more bit only when the value decoded so far could still be extended
// by the next power of two without reaching max. A max that is an exact
// power of two therefore never costs the extra bit.
func (r *Reader) ReadBounded(max uint32) (uint32, error) {
	if max == 0 {
		return 0, fmt.Errorf("%w: max must be at least 1", ErrInvalidBound)
	}
	maxBits := msbDeBruijn32(max)

	v, err := r.ReadBits(uint(maxBits))
	if err != nil {
		return 0, err
	}
	result := uint32(v)

	if uint64(result)+1<<maxBits < uint64(max) {
		extra, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		result |= uint32(extra) << maxBits
	}
	return result, nil
}
