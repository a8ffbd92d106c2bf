package rlbits

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// bitWriter builds test streams in the reader's bit order.
type bitWriter struct {
	words []uint32
	n     int
}

func (w *bitWriter) put(v uint64, width uint) *bitWriter {
	for i := uint(0); i < width; i++ {
		if w.n/wordBits == len(w.words) {
			w.words = append(w.words, 0)
		}
		if v>>i&1 == 1 {
			w.words[w.n/wordBits] |= 1 << (w.n % wordBits)
		}
		w.n++
	}
	return w
}

func (w *bitWriter) putBytes(b ...byte) *bitWriter {
	for _, c := range b {
		w.put(uint64(c), 8)
	}
	return w
}

func (w *bitWriter) reader(t testing.TB, v Version) *Reader {
	t.Helper()
	buf, err := NewBuffer(w.words, w.n)
	require.NoError(t, err)
	return NewReader(buf, v)
}

// refBits reads width bits at pos one bit at a time.
func refBits(words []uint32, pos int, width uint) uint64 {
	var v uint64
	for i := uint(0); i < width; i++ {
		p := pos + int(i)
		bit := words[p/wordBits] >> (p % wordBits) & 1
		v |= uint64(bit) << i
	}
	return v
}

func randomWords(seed int64, n int) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	words := make([]uint32, n)
	for i := range words {
		words[i] = rng.Uint32()
	}
	return words
}

func randomReader(t testing.TB, seed int64, n int) (*Reader, []uint32) {
	t.Helper()
	words := randomWords(seed, n)
	buf, err := NewBuffer(words, n*wordBits)
	require.NoError(t, err)
	return NewReader(buf, Version{Engine: 868, Licensee: 32, Net: 10}), words
}

func skipUnchecked(t *testing.T) {
	t.Helper()
	if !boundsChecked {
		t.Skip("bounds checks disabled by build tag")
	}
}
