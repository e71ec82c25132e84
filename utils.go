package robinmap

import "unsafe"

// Returns the smallest capacity that holds n entries without growing.
func CapacityFor(n int) int {
	if n <= 0 {
		return defaultCapacity
	}

	// The last insert sees n-1 entries and must not trigger growth:
	// (n-1)*den < capacity*num.
	return max((n-1)*loadFactorDen/loadFactorNum+1, defaultCapacity)
}

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(Slot[K, V]{}))
}
