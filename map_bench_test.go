package robinmap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	// 6,
	8192,
	1 << 16,
	1 << 20,
}

func BenchmarkMapGet_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=robinMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkRobinMapGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkRobinMapGetMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=robinMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkRobinMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkRobinMapGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapInsert_Grow(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapInsertGrow[uint64], genKeys[uint64]))
	})

	b.Run("variant=robinMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkRobinMapInsertGrow[uint64], genKeys[uint64]))
	})
}

func BenchmarkSetHas_Hit(b *testing.B) {
	b.Run("variant=robinSet", func(b *testing.B) {
		b.Run("K=uint32", benchSimulateLoad(benchmarkRobinSetHasHit[uint32], genKeys[uint32]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkRobinSetHasHit[uint64], genKeys[uint64]))
	})
}

func benchmarkStdMapGetMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, size)
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkRobinMapGetMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int](CapacityFor(size))
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for i, k := range keys {
		_, _, _ = m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(misses[i%len(misses)])
	}
}

func benchmarkStdMapGetHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, size)
	keys := genKeys(0, size)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkRobinMapGetHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int](CapacityFor(size))
	keys := genKeys(0, size)

	for i, k := range keys {
		_, _, _ = m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapInsertGrow[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := make(map[K]int)
		for j, key := range keys {
			m[key] = j
		}
	}
}

func benchmarkRobinMapInsertGrow[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := New[K, int](0)
		for j, key := range keys {
			_, _, _ = m.Insert(key, j)
		}
	}
}

func benchmarkRobinSetHasHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	ss := NewSet[K](CapacityFor(size))
	keys := genKeys(0, size)

	for _, k := range keys {
		_, _ = ss.Put(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ss.Has(keys[i%len(keys)])
	}
}

func genKeys[K comparable](start, end int) []K {
	var k K
	switch any(k).(type) {
	case uint32:
		keys := make([]uint32, end-start)
		for i := range keys {
			keys[i] = uint32(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case uint64:
		keys := make([]uint64, end-start)
		for i := range keys {
			keys[i] = uint64(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return unsafeConvertSlice[K](keys)
	default:
		panic("not reached")
	}
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, size int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
