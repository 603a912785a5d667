package alloc

import (
	"math/bits"

	"github.com/osdevkit/earlymem/internal/memmath"
	"github.com/osdevkit/earlymem/mem"
)

// EarlyAllocator is a dual-direction bump allocator over one contiguous
// address range. Byte allocations grow forward from the low end and page
// allocations grow backward from the high end; see the package
// documentation for the full model.
type EarlyAllocator struct {
	pageSize mem.Size

	start mem.Addr
	end   mem.Addr

	// bytePos is the next free address for byte allocations (grows up).
	bytePos mem.Addr

	// pagePos is the next free boundary for page allocations (grows down).
	pagePos mem.Addr

	// liveCount is the number of live byte allocations. When it drops to
	// zero the whole byte region is reclaimed at once.
	liveCount uint64
}

// NewEarly returns an empty allocator with the given fixed page size.
// The page size must be a non-zero power of two.
func NewEarly(pageSize mem.Size) (*EarlyAllocator, error) {
	if !memmath.IsPowerOfTwo(uintptr(pageSize)) {
		return nil, ErrInvalidParam
	}
	return &EarlyAllocator{pageSize: pageSize}, nil
}

// Init hands the allocator its managed region [base, base+size) and resets
// both cursors and the live count. Re-initialization discards prior state.
func (a *EarlyAllocator) Init(base mem.Addr, size mem.Size) {
	a.start = base
	a.end = base.Add(size)
	a.bytePos = a.start
	a.pagePos = a.end
	a.liveCount = 0
}

// AddMemory reports success without altering state. The early allocator
// manages exactly one region and cannot grow; the no-op keeps it
// compatible with the lifecycle contract of allocators that can.
func (a *EarlyAllocator) AddMemory(base mem.Addr, size mem.Size) error {
	return nil
}

// Alloc serves a byte-granularity request by bumping the forward cursor.
// Size and align are clamped to a minimum of 1; align need not be a power
// of two. Fails with ErrNoMemory when the aligned block would overflow the
// address width or run into the page region.
func (a *EarlyAllocator) Alloc(size, align mem.Size) (mem.Addr, error) {
	if size == 0 {
		size = 1
	}
	if align == 0 {
		align = 1
	}
	addr, ok := memmath.AlignUp(uintptr(a.bytePos), uintptr(align))
	if !ok {
		return 0, ErrNoMemory
	}
	next, ok := memmath.CheckedAdd(addr, uintptr(size))
	if !ok || next > uintptr(a.pagePos) {
		return 0, ErrNoMemory
	}
	a.bytePos = mem.Addr(next)
	a.liveCount++
	return mem.Addr(addr), nil
}

// Dealloc releases one byte allocation. The address and size are accepted
// without validation: the allocator tracks only a live count, not
// individual extents. The count saturates at zero, and when it reaches
// zero the entire byte region is reclaimed by resetting the forward
// cursor to start.
func (a *EarlyAllocator) Dealloc(addr mem.Addr, size mem.Size) {
	if a.liveCount > 0 {
		a.liveCount--
	}
	if a.liveCount == 0 {
		a.bytePos = a.start
	}
}

// TotalBytes returns the size of the managed region.
func (a *EarlyAllocator) TotalBytes() mem.Size {
	return a.end.Sub(a.start)
}

// UsedBytes returns the bytes consumed by the byte region.
func (a *EarlyAllocator) UsedBytes() mem.Size {
	return a.bytePos.Sub(a.start)
}

// AvailableBytes returns the bytes left between the two cursors.
func (a *EarlyAllocator) AvailableBytes() mem.Size {
	return a.pagePos.Sub(a.bytePos)
}

// PageSize returns the fixed page size the allocator was constructed with.
func (a *EarlyAllocator) PageSize() mem.Size {
	return a.pageSize
}

// AllocPages serves a page-granularity request by bumping the backward
// cursor. The block is aligned to the larger of the page size and
// 1<<alignPow2, with alignPow2 clamped below the address bit width. Fails
// with ErrInvalidParam for a zero page count and ErrNoMemory when the
// block would underflow the address space or run into the byte region.
func (a *EarlyAllocator) AllocPages(numPages uint, alignPow2 uint) (mem.Addr, error) {
	if numPages == 0 {
		return 0, ErrInvalidParam
	}
	size, ok := memmath.CheckedMul(uintptr(numPages), uintptr(a.pageSize))
	if !ok {
		return 0, ErrNoMemory
	}
	if alignPow2 > bits.UintSize-1 {
		alignPow2 = bits.UintSize - 1
	}
	align := uintptr(1) << alignPow2
	if align < uintptr(a.pageSize) {
		align = uintptr(a.pageSize)
	}
	if uintptr(a.pagePos) < size {
		return 0, ErrNoMemory
	}
	// Aligning the block start (rather than the old cursor) keeps the
	// returned address a multiple of align even when the block size is
	// not a multiple of it.
	blockStart := memmath.AlignDown(uintptr(a.pagePos)-size, align)
	if blockStart < uintptr(a.bytePos) {
		return 0, ErrNoMemory
	}
	a.pagePos = mem.Addr(blockStart)
	return a.pagePos, nil
}

// DeallocPages is a no-op. Page allocations are permanent for the lifetime
// of the region; page space comes back only when the whole allocator is
// discarded at handover.
func (a *EarlyAllocator) DeallocPages(addr mem.Addr, numPages uint) {
}

// TotalPages returns the managed region size in whole pages.
func (a *EarlyAllocator) TotalPages() uint {
	return uint(a.end.Sub(a.start) / a.pageSize)
}

// UsedPages returns the pages consumed by the page region.
func (a *EarlyAllocator) UsedPages() uint {
	return uint(a.end.Sub(a.pagePos) / a.pageSize)
}

// AvailablePages returns the whole pages left between the two cursors.
func (a *EarlyAllocator) AvailablePages() uint {
	return uint(a.pagePos.Sub(a.bytePos) / a.pageSize)
}

// Compile-time contract checks
var (
	_ BaseAllocator = (*EarlyAllocator)(nil)
	_ ByteAllocator = (*EarlyAllocator)(nil)
	_ PageAllocator = (*EarlyAllocator)(nil)
)
