package robinmap

import "iter"

// Set is a set of keys on top of the same Robin Hood table as Map,
// with zero-sized values.
//
// Set is not safe for concurrent use.
type Set[K comparable] struct {
	table[K, struct{}]
}

type SetOption[K comparable] = Option[K, struct{}]

// Returns a new set with the given initial capacity (4 if capacity <= 0).
// It panics if the allocator fails, use Init to get the error instead.
func NewSet[K comparable](capacity int, opts ...SetOption[K]) *Set[K] {
	var s Set[K]
	if err := s.Init(capacity, opts...); err != nil {
		panic(err)
	}

	return &s
}

func (s *Set[K]) Init(capacity int, opts ...SetOption[K]) error {
	return s.init(capacity, opts...)
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.find(key) >= 0
}

// Puts a key in the set.
// Returns whether a key is new. It fails only if growing the set failed.
func (s *Set[K]) Put(key K) (bool, error) {
	_, inserted, err := s.emplace(key, struct{}{})

	return inserted, err
}

func (s *Set[K]) Delete(key K) bool {
	return s.delete(key)
}

// All iterates over the keys in storage order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.all(func(k K, _ struct{}) bool {
			return yield(k)
		})
	}
}
