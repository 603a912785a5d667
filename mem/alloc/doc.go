// Package alloc provides the bootstrap-phase memory allocator used between
// physical memory discovery and the handover to the production byte-heap
// and page-frame allocators.
//
// # Overview
//
// EarlyAllocator manages one contiguous address range and serves two
// allocation kinds from opposite ends of it:
//
//	[ bytes-used | available | pages-used ]
//	|            | -->   <-- |            |
//	start     bytePos     pagePos       end
//
// Byte-granularity requests bump bytePos forward from the low end; page
// granularity requests bump pagePos backward from the high end. The two
// cursors converge, and every allocation path enforces the single
// cross-cutting invariant bytePos <= pagePos: a request that would make the
// regions overlap fails with ErrNoMemory and leaves the allocator unchanged.
//
// # Byte reclamation
//
// The allocator keeps no per-allocation ledger. It tracks only a count of
// live byte allocations: Dealloc decrements the count, and when it reaches
// zero the whole byte region is reclaimed at once by resetting bytePos to
// start. Individual deallocations return no space. This is a deliberate
// design for the bootstrap phase, where byte allocations are short-lived
// temporaries (early page tables, boot parameter copies) that are released
// roughly in aggregate, and the entire region is discarded once the real
// allocators take over.
//
// Because there is no ledger, Dealloc does not validate its arguments.
// Freeing an address that was never allocated, freeing twice, or passing a
// mismatched size is absorbed silently; the live count saturates at zero.
//
// # Page allocations
//
// Pages are never reclaimed. DeallocPages is a no-op, and page space is
// recovered only by discarding the allocator wholesale.
//
// # Capability contracts
//
// The surrounding runtime consumes the allocator through three interfaces:
// BaseAllocator (lifecycle), ByteAllocator, and PageAllocator. EarlyAllocator
// implements all three.
//
// # Thread safety
//
// EarlyAllocator is not thread-safe. It is meant for early boot, before
// multiple execution contexts exist, or behind an externally held lock.
package alloc
