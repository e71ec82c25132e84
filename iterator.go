package robinmap

// Iterator is a forward cursor over the occupied slots of a map,
// in storage order. Iterators are comparable with ==, an iterator
// returned by Find for a missing key is equal to End().
//
// A rehash (growth, Reserve, Reset) invalidates every iterator, using
// one afterwards panics. Inserts and deletes can also move entries
// within the array without a rehash, the iterator won't notice that,
// so don't keep iterators across modifications.
type Iterator[K comparable, V any] struct {
	t   *table[K, V]
	idx int
	gen uint64
}

func (t *table[K, V]) iterAt(idx int) Iterator[K, V] {
	return Iterator[K, V]{t: t, idx: idx, gen: t.gen}
}

func (t *table[K, V]) begin() Iterator[K, V] {
	return t.iterAt(t.nextOccupied(0))
}

func (t *table[K, V]) end() Iterator[K, V] {
	return t.iterAt(len(t.slots))
}

func (it Iterator[K, V]) check() {
	if it.t == nil {
		panic("robinmap: use of a zero iterator")
	}

	if it.gen != it.t.gen {
		panic("robinmap: use of an iterator invalidated by rehash")
	}
}

// slot returns the slot under the cursor, panicking at the end
// or if the slot was emptied behind the iterator's back.
func (it Iterator[K, V]) slot() *Slot[K, V] {
	it.check()

	if it.idx >= len(it.t.slots) {
		panic("robinmap: dereference of the end iterator")
	}

	s := &it.t.slots[it.idx]
	if s.isEmpty() {
		panic("robinmap: iterator points to an empty slot")
	}

	return s
}

// Done reports whether the iterator reached the end.
func (it Iterator[K, V]) Done() bool {
	it.check()

	return it.idx >= len(it.t.slots)
}

// Next moves to the next occupied slot, or to the end.
func (it *Iterator[K, V]) Next() {
	it.check()

	if it.idx >= len(it.t.slots) {
		panic("robinmap: advancing past the end")
	}

	it.idx = it.t.nextOccupied(it.idx + 1)
}

func (it Iterator[K, V]) Key() K {
	return it.slot().key
}

func (it Iterator[K, V]) Value() V {
	return it.slot().value
}

// SetValue replaces the value in place. The key and its position stay the same.
func (it Iterator[K, V]) SetValue(v V) {
	it.slot().value = v
}
