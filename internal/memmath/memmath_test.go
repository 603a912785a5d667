package memmath

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

const maxUintptr = ^uintptr(0)

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uintptr{1, 2, 4, 1 << 12, 1 << (bits.UintSize - 1)} {
		assert.True(t, IsPowerOfTwo(n), "IsPowerOfTwo(%d)", n)
	}
	for _, n := range []uintptr{0, 3, 6, 12, 1<<12 + 1, maxUintptr} {
		assert.False(t, IsPowerOfTwo(n), "IsPowerOfTwo(%d)", n)
	}
}

func TestAlignDown(t *testing.T) {
	assert.Equal(t, uintptr(0x1000), AlignDown(0x1fff, 0x1000))
	assert.Equal(t, uintptr(0x2000), AlignDown(0x2000, 0x1000))
	assert.Equal(t, uintptr(0), AlignDown(0xfff, 0x1000))
	assert.Equal(t, uintptr(42), AlignDown(42, 1))
}

func TestAlignUp(t *testing.T) {
	cases := []struct {
		addr, align, want uintptr
	}{
		{0x1001, 8, 0x1008},
		{0x1008, 8, 0x1008},
		{0, 0x1000, 0},
		{1, 0x1000, 0x1000},
		{42, 1, 42},
		{42, 0, 42},
		// Non-power-of-two alignments round to exact multiples.
		{10, 3, 12},
		{12, 3, 12},
		{101, 100, 200},
	}
	for _, c := range cases {
		got, ok := AlignUp(c.addr, c.align)
		assert.True(t, ok, "AlignUp(%#x, %d) should fit", c.addr, c.align)
		assert.Equal(t, c.want, got, "AlignUp(%#x, %d)", c.addr, c.align)
	}
}

func TestAlignUp_Overflow(t *testing.T) {
	_, ok := AlignUp(maxUintptr-1, 0x1000)
	assert.False(t, ok, "rounding past the address width must report failure")

	// The top address itself is a multiple of 2, so no rounding happens.
	got, ok := AlignUp(maxUintptr, 1)
	assert.True(t, ok)
	assert.Equal(t, maxUintptr, got)
}

func TestCheckedAdd(t *testing.T) {
	sum, ok := CheckedAdd(1, 2)
	assert.True(t, ok)
	assert.Equal(t, uintptr(3), sum)

	_, ok = CheckedAdd(maxUintptr, 1)
	assert.False(t, ok)

	sum, ok = CheckedAdd(maxUintptr-1, 1)
	assert.True(t, ok)
	assert.Equal(t, maxUintptr, sum)
}

func TestCheckedMul(t *testing.T) {
	prod, ok := CheckedMul(0x1000, 0x1000)
	assert.True(t, ok)
	assert.Equal(t, uintptr(0x1000000), prod)

	_, ok = CheckedMul(maxUintptr, 2)
	assert.False(t, ok)

	prod, ok = CheckedMul(maxUintptr, 1)
	assert.True(t, ok)
	assert.Equal(t, maxUintptr, prod)

	prod, ok = CheckedMul(maxUintptr, 0)
	assert.True(t, ok)
	assert.Zero(t, prod)
}
