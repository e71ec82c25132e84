// Package linear implements a fixed-size table with plain linear probing.
// It's the baseline Robin Hood displacement is measured against.
package linear

import "errors"

var ErrFull = errors.New("linear: table is full")

type slot[K comparable] struct {
	key  K
	dist int
	used bool
}

// Table never grows and never moves an entry once it's placed:
// a key takes the first free slot after its home bucket.
type Table[K comparable] struct {
	slots []slot[K]
	size  int
	hash  func(K) uint64
}

func New[K comparable](capacity int, hash func(K) uint64) *Table[K] {
	return &Table[K]{
		slots: make([]slot[K], capacity),
		hash:  hash,
	}
}

func (t *Table[K]) home(key K) int {
	return int(t.hash(key) % uint64(len(t.slots)))
}

// Insert puts the key in the first free slot. Returns false if it's already there.
func (t *Table[K]) Insert(key K) (bool, error) {
	idx := t.home(key)

	for dist := 0; dist < len(t.slots); dist++ {
		s := &t.slots[idx]
		if !s.used {
			*s = slot[K]{key: key, dist: dist, used: true}
			t.size++

			return true, nil
		}

		if s.key == key {
			return false, nil
		}

		idx = (idx + 1) % len(t.slots)
	}

	return false, ErrFull
}

func (t *Table[K]) Has(key K) bool {
	idx := t.home(key)

	for range len(t.slots) {
		s := &t.slots[idx]
		if !s.used {
			return false
		}

		if s.key == key {
			return true
		}

		idx = (idx + 1) % len(t.slots)
	}

	return false
}

func (t *Table[K]) Len() int {
	return t.size
}

// Displacement returns the maximum and the mean distance from home bucket.
func (t *Table[K]) Displacement() (int, float64) {
	var maxDist, total int

	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}

		maxDist = max(maxDist, t.slots[i].dist)
		total += t.slots[i].dist
	}

	if t.size == 0 {
		return 0, 0
	}

	return maxDist, float64(total) / float64(t.size)
}
