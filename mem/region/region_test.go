package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdevkit/earlymem/mem"
)

func TestReserve_RoundTrip(t *testing.T) {
	r, err := Reserve(64 * mem.KiB)
	require.NoError(t, err)

	assert.NotZero(t, r.Base(), "reserved region should have a base address")
	assert.Equal(t, 64*mem.KiB, r.Size())
	assert.Len(t, r.Bytes(), int(64*mem.KiB))

	// The mapping is writable end to end.
	b := r.Bytes()
	b[0] = 0xff
	b[len(b)-1] = 0xee
	assert.Equal(t, byte(0xff), r.Bytes()[0])

	require.NoError(t, r.Release())
	assert.Zero(t, r.Base(), "released region has no base")
	assert.Zero(t, r.Size())
}

func TestReserve_ZeroSize(t *testing.T) {
	_, err := Reserve(0)
	assert.ErrorIs(t, err, ErrZeroSize)
}

func TestRegion_Slice(t *testing.T) {
	r, err := Reserve(4 * mem.KiB)
	require.NoError(t, err)
	defer r.Release()

	base := r.Base()

	buf, err := r.Slice(base, 16)
	require.NoError(t, err)
	require.Len(t, buf, 16)
	copy(buf, "slice")
	assert.Equal(t, []byte("slice"), r.Bytes()[:5], "slice aliases the mapping")

	buf, err = r.Slice(base.Add(4*mem.KiB-1), 1)
	require.NoError(t, err, "last byte should be addressable")
	require.Len(t, buf, 1)

	// Empty tail slice is fine, anything past it is not.
	_, err = r.Slice(base.Add(4*mem.KiB), 0)
	assert.NoError(t, err)
	_, err = r.Slice(base.Add(4*mem.KiB), 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.Slice(base.Add(1), 4*mem.KiB)
	assert.ErrorIs(t, err, ErrOutOfRange)
	if base > 0 {
		_, err = r.Slice(base-1, 1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestRegion_DoubleRelease(t *testing.T) {
	r, err := Reserve(4 * mem.KiB)
	require.NoError(t, err)

	require.NoError(t, r.Release())
	require.NoError(t, r.Release(), "double release is a no-op")
}
