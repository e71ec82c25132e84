package robinmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// MakeStringHashFunc returns an unseeded xxhash function for string-like keys.
// Unlike the default one it's stable across processes, so table layouts
// (and iteration order) are reproducible.
func MakeStringHashFunc[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

// homeIndex maps a hash to its home bucket. Capacity doesn't have
// to be a power of two.
func homeIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
