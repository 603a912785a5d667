// Package memmath provides alignment and overflow-checked arithmetic for
// allocator code operating on raw addresses.
package memmath

import "math/bits"

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// AlignDown returns addr rounded down to a multiple of align.
// align must be a non-zero power of two.
//
// Example:
//
//	AlignDown(0x1fff, 0x1000) = 0x1000
//	AlignDown(0x2000, 0x1000) = 0x2000
func AlignDown(addr, align uintptr) uintptr {
	return addr &^ (align - 1)
}

// AlignUp returns addr rounded up to a multiple of align, for any
// align >= 1. ok is false when the rounded address does not fit in the
// address width.
//
// Example:
//
//	AlignUp(0x1001, 8) = 0x1008
//	AlignUp(0x1008, 8) = 0x1008
func AlignUp(addr, align uintptr) (uintptr, bool) {
	if align <= 1 {
		return addr, true
	}
	rem := addr % align
	if rem == 0 {
		return addr, true
	}
	return CheckedAdd(addr, align-rem)
}

// CheckedAdd returns a+b and reports whether the sum fit without wrapping.
func CheckedAdd(a, b uintptr) (uintptr, bool) {
	sum, carry := bits.Add(uint(a), uint(b), 0)
	return uintptr(sum), carry == 0
}

// CheckedMul returns a*b and reports whether the product fit without
// wrapping.
func CheckedMul(a, b uintptr) (uintptr, bool) {
	hi, lo := bits.Mul(uint(a), uint(b))
	return uintptr(lo), hi == 0
}
