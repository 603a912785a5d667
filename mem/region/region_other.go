//go:build !unix

package region

// reserve falls back to an ordinary heap allocation when mmap is not
// available. The Region keeps the slice alive, so its base address stays
// stable for the lifetime of the region.
func reserve(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func release(data []byte) error {
	return nil
}
