// Package keygen builds key sets and hash functions used to measure
// probe behaviour: well spread keys, dense runs and deliberately
// clustered ones that collide under a weak hash.
package keygen

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

type Dist string

const (
	Uniform    Dist = "uniform"
	Sequential Dist = "sequential"
	Clustered  Dist = "clustered"
)

// Keys in a clustered set come in runs of this length.
const clusterRun = 16

func ParseDist(s string) (Dist, error) {
	switch d := Dist(s); d {
	case Uniform, Sequential, Clustered:
		return d, nil
	default:
		return "", fmt.Errorf("keygen: unknown distribution %q", s)
	}
}

// Generate returns n unique keys. The same seed gives the same keys.
func Generate(d Dist, n int, seed uint64) []uint64 {
	keys := make([]uint64, 0, n)

	switch d {
	case Sequential:
		for i := range n {
			keys = append(keys, seed+uint64(i))
		}
	case Clustered:
		// Runs of consecutive keys separated by random multiples of the run length.
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		base := uint64(0)
		for len(keys) < n {
			base += clusterRun * (1 + r.Uint64N(64))
			for i := uint64(0); i < clusterRun && len(keys) < n; i++ {
				keys = append(keys, base+i)
			}
		}
	default:
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		seen := make(map[uint64]struct{}, n)
		for len(keys) < n {
			k := r.Uint64()
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	return keys
}

// Hasher returns a hash function for uint64 keys by name:
// "maphash" (seeded, default), "xxhash" or "identity".
func Hasher(name string) (func(uint64) uint64, error) {
	switch name {
	case "", "maphash":
		seed := maphash.MakeSeed()
		return func(k uint64) uint64 {
			return maphash.Comparable(seed, k)
		}, nil
	case "xxhash":
		return func(k uint64) uint64 {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], k)
			return xxhash.Sum64(b[:])
		}, nil
	case "identity":
		return func(k uint64) uint64 {
			return k
		}, nil
	default:
		return nil, fmt.Errorf("keygen: unknown hash %q", name)
	}
}
