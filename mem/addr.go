package mem

import "fmt"

// Addr is an address within (or one past the end of) a managed memory
// region. It has the width of the host address space.
type Addr uintptr

// Size is a byte count with the same width as Addr.
type Size uintptr

// Common size multiples.
const (
	KiB Size = 1 << 10
	MiB Size = 1 << 20
	GiB Size = 1 << 30
)

// Add returns the address size bytes past a. It does not check for
// overflow; allocator code performs its own checked arithmetic.
func (a Addr) Add(size Size) Addr {
	return a + Addr(size)
}

// Sub returns the distance from b up to a, saturating at zero when b is
// past a. This matches how accounting queries treat an uninitialized
// allocator, where every cursor is still zero.
func (a Addr) Sub(b Addr) Size {
	if a < b {
		return 0
	}
	return Size(a - b)
}

// String formats the address as hex, the way boot logs print addresses.
func (a Addr) String() string {
	return fmt.Sprintf("0x%x", uintptr(a))
}

// String formats the size as a byte count with a power-of-two suffix when
// it divides evenly.
func (s Size) String() string {
	switch {
	case s >= GiB && s%GiB == 0:
		return fmt.Sprintf("%dGiB", s/GiB)
	case s >= MiB && s%MiB == 0:
		return fmt.Sprintf("%dMiB", s/MiB)
	case s >= KiB && s%KiB == 0:
		return fmt.Sprintf("%dKiB", s/KiB)
	default:
		return fmt.Sprintf("%dB", uintptr(s))
	}
}
