package robinmap

// emptyDist marks a slot that holds no entry.
const emptyDist = -1

// Slot is a single storage cell of the table. It's either empty or holds
// one key/value pair together with its distance from the home bucket.
//
// The zero value of Slot is NOT empty (its distance is 0), so slot arrays
// must go through resetSlots before use. Allocators only hand out memory,
// the table takes care of initialization.
type Slot[K comparable, V any] struct {
	// Robin Hood distance from the home bucket, or emptyDist.
	dist int32

	key   K
	value V
}

func (s *Slot[K, V]) isEmpty() bool {
	return s.dist == emptyDist
}

// emplace stores the entry into an empty slot.
func (s *Slot[K, V]) emplace(dist int32, key K, value V) {
	if s.dist != emptyDist {
		panic("robinmap: emplace into an occupied slot")
	}

	s.dist = dist
	s.key = key
	s.value = value
}

// clear drops the entry, zeroing key and value so that the GC
// doesn't keep anything they reference alive.
func (s *Slot[K, V]) clear() {
	if s.dist == emptyDist {
		panic("robinmap: clear of an empty slot")
	}

	var (
		k K
		v V
	)

	s.key = k
	s.value = v
	s.dist = emptyDist
}

// Key returns the stored key. Calling it on an empty slot returns the zero key.
func (s *Slot[K, V]) Key() K {
	return s.key
}

func (s *Slot[K, V]) Value() V {
	return s.value
}

// Displacement returns the distance from the home bucket, or -1 if the slot is empty.
func (s *Slot[K, V]) Displacement() int {
	return int(s.dist)
}

func resetSlots[K comparable, V any](slots []Slot[K, V]) {
	var empty Slot[K, V]
	empty.dist = emptyDist

	for i := range slots {
		slots[i] = empty
	}
}
