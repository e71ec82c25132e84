// Package robinmap implements a generic open-addressed hash map and set
// using Robin Hood displacement.
package robinmap

import "iter"

// Map is a hash map with open addressing and Robin Hood displacement:
// on collision the entry that is further away from its home bucket keeps
// the slot, which keeps probe sequences short and evenly sized.
// The map grows twice once it's 3/4 full and never shrinks.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given initial capacity (4 if capacity <= 0).
// It panics if the allocator fails, use Init to get the error instead.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	if err := m.Init(capacity, opts...); err != nil {
		panic(err)
	}

	return &m
}

// Init initializes a zero map in place.
func (m *Map[K, V]) Init(capacity int, opts ...Option[K, V]) error {
	return m.init(capacity, opts...)
}

// Insert puts the key into the map, or replaces its value if it's already there.
// Returns an iterator to the entry and whether the key is new.
// An error is returned only if the map had to grow and the allocator failed,
// the map is unchanged in that case.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	idx, inserted, err := m.emplace(key, value)
	if err != nil {
		return m.end(), false, err
	}

	return m.iterAt(idx), inserted, nil
}

// Find returns an iterator to the key, or End() if it's not in the map.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	if idx := m.find(key); idx >= 0 {
		return m.iterAt(idx)
	}

	return m.end()
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Begin returns an iterator to the first entry in storage order.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.begin()
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return m.end()
}

// All iterates over the entries in storage order. The order changes
// whenever the map grows.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.all(func(k K, _ V) bool {
			return yield(k)
		})
	}
}
