package rlbits

// deBruijnPosition maps the top five bits of (folded * 0x07C4ACDD) to the
// position of the most significant set bit.
var deBruijnPosition = [32]uint8{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

// msbDeBruijn32 returns the zero-based index of the most significant set bit
// of v. The result for v == 0 is undefined (it happens to be 0); callers must
// pass v > 0.
func msbDeBruijn32(v uint32) uint32 {
	// Round down to one less than a power of two.
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return uint32(deBruijnPosition[(v*0x07C4ACDD)>>27])
}
