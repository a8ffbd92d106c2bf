//go:build rlbits_unchecked

package rlbits

// boundsChecked is off: reads past the declared stream size return padding
// bits from the last word or panic with an index error past the last word.
const boundsChecked = false
