package rlbits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func ExampleReader() {
	// Three flag bits followed by a byte-aligned 16-bit value and a string.
	data := []byte{0b101, 0x34, 0x12, 3, 0, 0, 0, 'h', 'i', 0}
	r := NewReader(BufferFromBytes(data), Version{Engine: 868, Licensee: 32, Net: 10})

	a, _ := r.ReadBool()
	b, _ := r.ReadBool()
	c, _ := r.ReadBool()
	_ = r.Skip(5)
	v, _ := r.ReadUint16()
	s, _ := r.ReadString()

	fmt.Println(a, b, c)
	fmt.Printf("%#x %q %d\n", v, s, r.BitPos())

	// Output:
	// true false true
	// 0x1234 "hi" 80
}

func TestReadBitsZeroWidth(t *testing.T) {
	assert := assert.New(t)
	r, _ := randomReader(t, 1, 2)
	require.NoError(t, r.Skip(5))

	v, err := r.ReadBits(0)
	assert.NoError(err)
	assert.Equal(uint64(0), v)
	assert.Equal(5, r.BitPos())
}

func TestReadBitsInvalidWidth(t *testing.T) {
	r, _ := randomReader(t, 1, 4)
	_, err := r.ReadBits(65)
	assert.ErrorIs(t, err, ErrInvalidWidth)
	assert.Equal(t, 0, r.BitPos())
}

func TestReadBitsMatchesReference(t *testing.T) {
	r, words := randomReader(t, 42, 16)
	for width := uint(1); width <= 64; width++ {
		for _, start := range []int{0, 1, 7, 31, 32, 33, 63, 95, 200} {
			t.Run(fmt.Sprintf("w%02d_at%03d", width, start), func(t *testing.T) {
				require.NoError(t, r.Seek(start))
				got, err := r.ReadBits(width)
				require.NoError(t, err)
				assert.Equal(t, refBits(words, start, width), got)
				assert.Equal(t, start+int(width), r.BitPos())
			})
		}
	}
}

func TestReadBitsSequential(t *testing.T) {
	assert := assert.New(t)
	w := &bitWriter{}
	w.put(0x5, 3).put(0xABCDE, 20).put(0x1, 1).put(0xDEADBEEFCAFEF00D, 64).put(0x3FF, 10)
	r := w.reader(t, Version{})

	for _, step := range []struct {
		width uint
		want  uint64
	}{
		{3, 0x5}, {20, 0xABCDE}, {1, 1}, {64, 0xDEADBEEFCAFEF00D}, {10, 0x3FF},
	} {
		v, err := r.ReadBits(step.width)
		assert.NoError(err)
		assert.Equal(step.want, v)
	}
	assert.False(r.CanRead())
	assert.Equal(0, r.Remaining())
}

func TestReadBitsReread(t *testing.T) {
	r, _ := randomReader(t, 3, 8)
	require.NoError(t, r.Skip(13))
	for width := uint(1); width <= 64; width++ {
		pos := r.BitPos()
		first, err := r.ReadBits(width)
		require.NoError(t, err)
		require.NoError(t, r.SeekBackward(width))
		assert.Equal(t, pos, r.BitPos())
		second, err := r.ReadBits(width)
		require.NoError(t, err)
		assert.Equal(t, first, second, "width %d", width)
		require.NoError(t, r.Seek(13))
	}
}

func TestReadBitsOutOfBounds(t *testing.T) {
	skipUnchecked(t)
	assert := assert.New(t)
	w := &bitWriter{}
	w.put(0x3FF, 10)
	r := w.reader(t, Version{})

	_, err := r.ReadBits(11)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(10, r.Size())

	v, err := r.ReadBits(10)
	assert.NoError(err)
	assert.Equal(uint64(0x3FF), v)

	_, err = r.ReadBits(1)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestReadBitsPartialWordBoundary(t *testing.T) {
	skipUnchecked(t)
	buf, err := NewBuffer([]uint32{0xffffffff, 0xffffffff}, 40)
	require.NoError(t, err)
	r := NewReader(buf, Version{})

	v, err := r.ReadBits(40)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<40-1, v)
	assert.False(t, r.CanRead())
	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNilBuffer(t *testing.T) {
	skipUnchecked(t)
	r := NewReader(nil, Version{})
	assert.False(t, r.CanRead())
	assert.Equal(t, 0, r.Size())
	_, err := r.ReadBool()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSkip(t *testing.T) {
	assert := assert.New(t)
	r, words := randomReader(t, 9, 4)

	assert.NoError(r.Skip(0))
	assert.Equal(0, r.BitPos())
	assert.NoError(r.Skip(31))
	assert.NoError(r.Skip(1))
	assert.Equal(32, r.BitPos())
	assert.NoError(r.Skip(70))
	assert.Equal(102, r.BitPos())
	assert.Equal(12, r.BytePos())

	v, err := r.ReadBits(5)
	assert.NoError(err)
	assert.Equal(refBits(words, 102, 5), v)

	assert.NoError(r.Skip(uint(r.Remaining())))
	assert.False(r.CanRead())
}

func TestSkipOutOfBounds(t *testing.T) {
	skipUnchecked(t)
	r, _ := randomReader(t, 9, 1)
	assert.ErrorIs(t, r.Skip(33), ErrOutOfBounds)
	assert.Equal(t, 0, r.BitPos())

	require.NoError(t, r.Skip(10))
	for _, n := range []uint{^uint(0), ^uint(0) - 5, ^uint(0)>>1 + 1, 23} {
		assert.ErrorIs(t, r.Skip(n), ErrOutOfBounds, "skip %d", n)
		assert.Equal(t, 10, r.BitPos(), "skip %d moved the cursor", n)
	}
	_, err := r.ReadBits(23)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.NoError(t, r.Skip(22))
}

func TestSeekBackward(t *testing.T) {
	assert := assert.New(t)
	r, _ := randomReader(t, 11, 4)
	require.NoError(t, r.Skip(70))

	assert.NoError(r.SeekBackward(6))
	assert.Equal(64, r.BitPos())
	assert.NoError(r.SeekBackward(33))
	assert.Equal(31, r.BitPos())
	assert.NoError(r.SeekBackward(31))
	assert.Equal(0, r.BitPos())

	assert.ErrorIs(r.SeekBackward(1), ErrOutOfBounds)
	assert.Equal(0, r.BitPos())
}

func TestSeek(t *testing.T) {
	assert := assert.New(t)
	r, _ := randomReader(t, 12, 2)

	assert.NoError(r.Seek(64))
	assert.False(r.CanRead())
	assert.NoError(r.Seek(17))
	assert.Equal(17, r.BitPos())
	assert.Equal(2, r.BytePos())
	assert.False(r.ByteAligned())
	assert.ErrorIs(r.Seek(65), ErrOutOfBounds)
	assert.ErrorIs(r.Seek(-1), ErrOutOfBounds)
	assert.Equal(17, r.BitPos())
}

func TestClone(t *testing.T) {
	assert := assert.New(t)
	r, words := randomReader(t, 5, 4)
	require.NoError(t, r.Skip(7))

	c := r.Clone()
	v, err := c.ReadBits(40)
	assert.NoError(err)
	assert.Equal(refBits(words, 7, 40), v)
	assert.Equal(47, c.BitPos())
	assert.Equal(7, r.BitPos())
	assert.Same(r.buf, c.buf)
	assert.Equal(r.Version(), c.Version())
}

func TestCloneConcurrentDecode(t *testing.T) {
	const sections = 8
	r, words := randomReader(t, 77, 256)
	sectionBits := r.Size() / sections

	var results [sections][]uint64
	var g errgroup.Group
	for i := 0; i < sections; i++ {
		i := i
		c := r.Clone()
		g.Go(func() error {
			if err := c.Seek(i*sectionBits + 3); err != nil {
				return err
			}
			for c.BitPos()+29 <= (i+1)*sectionBits {
				v, err := c.ReadBits(29)
				if err != nil {
					return err
				}
				results[i] = append(results[i], v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		pos := i*sectionBits + 3
		for _, v := range got {
			assert.Equal(t, refBits(words, pos, 29), v)
			pos += 29
		}
	}
}

func BenchmarkReadBits(b *testing.B) {
	for _, width := range []uint{1, 7, 32, 64} {
		b.Run(fmt.Sprintf("width_%d", width), func(b *testing.B) {
			r, _ := randomReader(b, 1, 4096)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if r.Remaining() < int(width) {
					_ = r.Seek(0)
				}
				_, _ = r.ReadBits(width)
			}
		})
	}
}
