package alloc

import "github.com/osdevkit/earlymem/mem"

// BaseAllocator is the lifecycle contract every allocator in the runtime
// implements.
type BaseAllocator interface {
	// Init hands the allocator its managed region. It must be called
	// exactly once before any allocation; calling it again silently
	// discards all prior state.
	Init(base mem.Addr, size mem.Size)

	// AddMemory offers an additional region to the allocator.
	// Implementations that cannot grow report success without doing
	// anything.
	AddMemory(base mem.Addr, size mem.Size) error
}

// ByteAllocator is the byte-granularity allocation contract.
type ByteAllocator interface {
	// Alloc returns the address of a block of at least size bytes,
	// aligned to a multiple of align. Size and align are clamped to a
	// minimum of 1.
	Alloc(size, align mem.Size) (mem.Addr, error)

	// Dealloc releases a block previously returned by Alloc. The
	// address and size are not validated.
	Dealloc(addr mem.Addr, size mem.Size)

	// TotalBytes returns the size of the managed region.
	TotalBytes() mem.Size

	// UsedBytes returns the bytes consumed by the byte region.
	UsedBytes() mem.Size

	// AvailableBytes returns the bytes left between the byte and page
	// regions.
	AvailableBytes() mem.Size
}

// PageAllocator is the page-granularity allocation contract.
type PageAllocator interface {
	// PageSize returns the fixed page size the allocator was
	// constructed with.
	PageSize() mem.Size

	// AllocPages returns the address of a block of numPages pages,
	// aligned to max(PageSize, 1<<alignPow2).
	AllocPages(numPages uint, alignPow2 uint) (mem.Addr, error)

	// DeallocPages releases a block previously returned by AllocPages.
	// Implementations may treat this as a no-op.
	DeallocPages(addr mem.Addr, numPages uint)

	// TotalPages returns the managed region size in whole pages.
	TotalPages() uint

	// UsedPages returns the pages consumed by the page region.
	UsedPages() uint

	// AvailablePages returns the whole pages left between the byte and
	// page regions.
	AvailablePages() uint
}
