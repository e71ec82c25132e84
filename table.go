package robinmap

import (
	"fmt"
	"hash/maphash"
)

const (
	defaultCapacity = 4

	// The table grows once size/capacity reaches 3/4.
	loadFactorNum = 3
	loadFactorDen = 4
)

type table[K comparable, V any] struct {
	slots []Slot[K, V]
	size  int

	// Bumped whenever the slot array is replaced or wiped,
	// iterators carry a copy to detect that they went stale.
	gen uint64

	hashFunc  HashFunc[K]
	allocator Allocator[K, V]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default allocator, which simply uses make.
func WithAllocator[K comparable, V any](a Allocator[K, V]) Option[K, V] {
	return func(t *table[K, V]) {
		t.allocator = a
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) error {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.allocator == nil {
		t.allocator = defaultAllocator[K, V]{}
	}

	slots, err := t.allocator.Alloc(capacity)
	if err != nil {
		return fmt.Errorf("robinmap: allocate %d slots: %w", capacity, err)
	}

	resetSlots(slots)
	t.slots = slots
	t.size = 0

	return nil
}

// Len returns the number of entries.
func (t *table[K, V]) Len() int {
	return t.size
}

// Cap returns the number of slots. The table grows before the
// number of entries reaches 3/4 of it.
func (t *table[K, V]) Cap() int {
	return len(t.slots)
}

// find returns the slot index of the key, or -1.
func (t *table[K, V]) find(key K) int {
	return t.findHome(key, homeIndex(t.hashFunc(key), len(t.slots)))
}

func (t *table[K, V]) findHome(key K, home int) int {
	capacity := len(t.slots)

	for dist, idx := int32(0), home; int(dist) < capacity; dist++ {
		s := &t.slots[idx]

		// The key would have displaced a richer resident, so it can't be any further.
		if s.isEmpty() || s.dist < dist {
			return -1
		}

		if s.key == key {
			return idx
		}

		if idx++; idx == capacity {
			idx = 0
		}
	}

	return -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	var v V
	return v, false
}

// emplace inserts the entry, or replaces the value if the key is already
// present. It returns the slot index the key ended up in and whether
// the key is new. Growth only happens for new keys.
func (t *table[K, V]) emplace(key K, value V) (int, bool, error) {
	home := homeIndex(t.hashFunc(key), len(t.slots))

	if idx := t.findHome(key, home); idx >= 0 {
		t.slots[idx].value = value
		return idx, false, nil
	}

	if t.size*loadFactorDen >= len(t.slots)*loadFactorNum {
		if err := t.rehash(len(t.slots) * 2); err != nil {
			return -1, false, err
		}

		home = homeIndex(t.hashFunc(key), len(t.slots))
	}

	idx := place(t.slots, home, key, value)
	t.size++

	return idx, true, nil
}

// place runs the Robin Hood insertion loop and returns the index where the
// given key landed. There must be at least one empty slot.
func place[K comparable, V any](slots []Slot[K, V], home int, key K, value V) int {
	var (
		capacity = len(slots)
		idx      = home
		dist     int32
		landed   = -1
	)

	for {
		s := &slots[idx]

		if s.isEmpty() {
			s.emplace(dist, key, value)
			if landed < 0 {
				landed = idx
			}

			return landed
		}

		// Richer resident gives its slot away and keeps probing instead.
		if s.dist < dist {
			if landed < 0 {
				landed = idx
			}

			s.dist, dist = dist, s.dist
			s.key, key = key, s.key
			s.value, value = value, s.value
		}

		if idx++; idx == capacity {
			idx = 0
		}

		dist++
	}
}

// rehash moves all entries into a new array of the given capacity.
// If allocation fails the table is left untouched.
func (t *table[K, V]) rehash(capacity int) error {
	slots, err := t.allocator.Alloc(capacity)
	if err != nil {
		return fmt.Errorf("robinmap: grow to %d slots: %w", capacity, err)
	}

	resetSlots(slots)

	for i := range t.slots {
		s := &t.slots[i]
		if s.isEmpty() {
			continue
		}

		place(slots, homeIndex(t.hashFunc(s.key), capacity), s.key, s.value)
	}

	old := t.slots
	t.slots = slots
	t.gen++
	t.allocator.Free(old)

	return nil
}

// delete removes the key using backward shift deletion: entries following
// the removed one are moved one slot back until an empty slot or an entry
// sitting in its home bucket is reached. No tombstones are left behind.
func (t *table[K, V]) delete(key K) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	capacity := len(t.slots)
	t.slots[idx].clear()

	for {
		next := idx + 1
		if next == capacity {
			next = 0
		}

		ns := &t.slots[next]
		if ns.isEmpty() || ns.dist == 0 {
			break
		}

		t.slots[idx].emplace(ns.dist-1, ns.key, ns.value)
		ns.clear()
		idx = next
	}

	t.size--

	return true
}

// Reserve grows the table so that n entries fit without a rehash.
func (t *table[K, V]) Reserve(n int) error {
	if capacity := CapacityFor(n); capacity > len(t.slots) {
		return t.rehash(capacity)
	}

	return nil
}

// Reset drops all entries and keeps the capacity.
func (t *table[K, V]) Reset() {
	resetSlots(t.slots)
	t.size = 0
	t.gen++
}

// Close hands the slot array back to the allocator.
// The table must not be used afterwards.
func (t *table[K, V]) Close() {
	if t.slots == nil {
		return
	}

	t.allocator.Free(t.slots)
	t.slots = nil
	t.size = 0
	t.gen++
}

// nextOccupied returns the index of the first occupied slot at or after
// from, or the capacity if there is none.
func (t *table[K, V]) nextOccupied(from int) int {
	for i := from; i < len(t.slots); i++ {
		if !t.slots[i].isEmpty() {
			return i
		}
	}

	return len(t.slots)
}

func (t *table[K, V]) all(yield func(K, V) bool) {
	slots := t.slots

	for i := range slots {
		s := &slots[i]
		if s.isEmpty() {
			continue
		}

		if !yield(s.key, s.value) {
			return
		}
	}
}
