//go:build !rlbits_unchecked

package rlbits

// boundsChecked enables the per-read stream length check. Build with the
// rlbits_unchecked tag to drop it.
const boundsChecked = true
