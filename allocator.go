package robinmap

import (
	"errors"
	"fmt"
)

// ErrAllocLimit is returned by the limit allocator when a request
// doesn't fit into its slot budget.
var ErrAllocLimit = errors.New("robinmap: allocation limit exceeded")

// Allocator acquires and releases slot arrays for a table.
// Every slice returned by Alloc is handed back to Free exactly once,
// either when the table grows or when it's closed.
//
// Alloc doesn't need to initialize the slots.
type Allocator[K comparable, V any] interface {
	Alloc(n int) ([]Slot[K, V], error)
	Free(slots []Slot[K, V])
}

type defaultAllocator[K comparable, V any] struct{}

func (defaultAllocator[K, V]) Alloc(n int) ([]Slot[K, V], error) {
	return make([]Slot[K, V], n), nil
}

func (defaultAllocator[K, V]) Free(_ []Slot[K, V]) {}

// LimitAllocator allocates slot arrays on the heap as long as the number
// of live slots stays within a fixed budget. It's useful to bound the
// memory of a map that is fed by untrusted input.
type LimitAllocator[K comparable, V any] struct {
	maxSlots int
	live     int
}

// Returns a new allocator that never keeps more than maxSlots slots alive.
func NewLimitAllocator[K comparable, V any](maxSlots int) *LimitAllocator[K, V] {
	return &LimitAllocator[K, V]{maxSlots: maxSlots}
}

func (a *LimitAllocator[K, V]) Alloc(n int) ([]Slot[K, V], error) {
	if n < 0 || a.live+n > a.maxSlots {
		return nil, fmt.Errorf("%w: %d live + %d requested > %d", ErrAllocLimit, a.live, n, a.maxSlots)
	}

	a.live += n

	return make([]Slot[K, V], n), nil
}

func (a *LimitAllocator[K, V]) Free(slots []Slot[K, V]) {
	a.live -= len(slots)
}

// Live returns the number of slots currently handed out.
func (a *LimitAllocator[K, V]) Live() int {
	return a.live
}
