// Package region reserves contiguous anonymous memory ranges used to back
// an early allocator during tests, simulations, and host-side bring-up
// tooling. On unix builds the range is an anonymous private mapping; other
// platforms fall back to a heap-backed slice.
package region

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/osdevkit/earlymem/mem"
)

var (
	// ErrOutOfRange indicates an address range that is not fully inside
	// the region.
	ErrOutOfRange = errors.New("region: address range outside region")

	// ErrZeroSize indicates a reservation request for an empty region.
	ErrZeroSize = errors.New("region: zero size")
)

// Region is a contiguous writable memory range with a stable base address.
// The zero value is an empty, released region.
type Region struct {
	data []byte
}

// Reserve maps a new region of exactly size bytes.
func Reserve(size mem.Size) (*Region, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	data, err := reserve(int(size))
	if err != nil {
		return nil, fmt.Errorf("region: reserve %s: %w", size, err)
	}
	return &Region{data: data}, nil
}

// Base returns the address of the first byte of the region, or 0 when the
// region has been released.
func (r *Region) Base() mem.Addr {
	if len(r.data) == 0 {
		return 0
	}
	return mem.Addr(uintptr(unsafe.Pointer(&r.data[0])))
}

// Size returns the region size in bytes.
func (r *Region) Size() mem.Size {
	return mem.Size(len(r.data))
}

// Bytes returns the whole region as a byte slice. The slice aliases the
// mapping and must not be used after Release.
func (r *Region) Bytes() []byte {
	return r.data
}

// Slice returns the size bytes starting at addr as a byte slice, so
// callers can write through addresses handed out by an allocator without
// any pointer arithmetic of their own.
func (r *Region) Slice(addr mem.Addr, size mem.Size) ([]byte, error) {
	base := r.Base()
	if addr < base {
		return nil, ErrOutOfRange
	}
	off := mem.Size(addr - base)
	if off > r.Size() || size > r.Size()-off {
		return nil, ErrOutOfRange
	}
	return r.data[off : off+size], nil
}

// Release unmaps the region. Releasing twice is a no-op.
func (r *Region) Release() error {
	if r.data == nil {
		return nil
	}
	err := release(r.data)
	r.data = nil
	return err
}
