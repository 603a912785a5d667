package alloc

import "errors"

var (
	// ErrNoMemory indicates that a request cannot be satisfied: the
	// address width would overflow, or the byte and page regions would
	// collide.
	ErrNoMemory = errors.New("alloc: out of memory")

	// ErrInvalidParam indicates a structurally invalid request, such as a
	// zero page count or a page size that is not a power of two.
	ErrInvalidParam = errors.New("alloc: invalid parameter")
)
