package keygen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDist(t *testing.T) {
	for _, s := range []string{"uniform", "sequential", "clustered"} {
		d, err := ParseDist(s)
		require.NoError(t, err)
		assert.Equal(t, Dist(s), d)
	}

	_, err := ParseDist("zipf")
	assert.Error(t, err)
}

func TestGenerate_Unique(t *testing.T) {
	for _, d := range []Dist{Uniform, Sequential, Clustered} {
		t.Run(string(d), func(t *testing.T) {
			keys := Generate(d, 1000, 42)
			require.Len(t, keys, 1000)

			seen := make(map[uint64]struct{}, len(keys))
			for _, k := range keys {
				_, dup := seen[k]
				require.Falsef(t, dup, "duplicate key %d", k)
				seen[k] = struct{}{}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(Uniform, 100, 7)
	b := Generate(Uniform, 100, 7)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed gave different keys (-a +b):\n%s", diff)
	}
}

func TestGenerate_Sequential(t *testing.T) {
	assert.Equal(t, []uint64{10, 11, 12}, Generate(Sequential, 3, 10))
}

func TestHasher(t *testing.T) {
	for _, name := range []string{"", "maphash", "xxhash", "identity"} {
		h, err := Hasher(name)
		require.NoError(t, err)
		assert.Equal(t, h(12345), h(12345))
	}

	id, err := Hasher("identity")
	require.NoError(t, err)
	assert.Equal(t, uint64(77), id(77))

	_, err = Hasher("crc")
	assert.Error(t, err)
}
