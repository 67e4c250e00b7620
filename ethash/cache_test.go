package ethash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceMix is a naive rendition of the mixing passes. It pins the
// in-place, in-order update semantics of MixCache.
func referenceMix(cache Cache) Cache {
	out := make(Cache, len(cache))
	copy(out, cache)
	n := len(out)
	for round := 0; round < CacheRounds; round++ {
		for i := 0; i < n; i++ {
			prev := i - 1
			if prev < 0 {
				prev = n - 1
			}
			v := int(out[i][0] % uint32(n))
			var mixed Record
			for w := 0; w < RecordWords; w++ {
				mixed[w] = out[prev][w] ^ out[v][w]
			}
			b := WordsToBytes(mixed)
			out[i] = BytesToWords(Keccak512(b[:]))
		}
	}
	return out
}

func TestInitialCache(t *testing.T) {
	seed := Keccak256([]byte("seed"))
	cache := InitialCache(seed, 8)
	require.Len(t, cache, 8)

	require.Equal(t, BytesToWords(Keccak512(seed[:])), cache[0])
	for i := 1; i < len(cache); i++ {
		require.Equal(t, HashRecord(cache[i-1]), cache[i], "record %d", i)
	}

	require.Empty(t, InitialCache(seed, 0))
}

func TestMixCache(t *testing.T) {
	for _, n := range []uint64{2, 3, 7, 13, 64} {
		cache := InitialCache(Seed{}, n)
		want := referenceMix(cache)

		MixCache(cache)
		require.Equal(t, want, cache, "n %d", n)
	}
}

func TestMixCacheSingleRecord(t *testing.T) {
	// a lone record is its own predecessor and its own partner, so every pass
	// hashes 64 zero bytes
	cache := InitialCache(Seed{}, 1)
	MixCache(cache)
	require.Equal(t, HashRecord(Record{}), cache[0])
}

func TestMixCacheEmpty(t *testing.T) {
	assert.NotPanics(t, func() { MixCache(nil) })
	assert.NotPanics(t, func() { MixCache(Cache{}) })
}

func TestCacheBytes(t *testing.T) {
	cache := InitialCache(Seed{}, 5)
	b := cache.Bytes()
	require.Len(t, b, 5*RecordBytes)
	for i, r := range cache {
		want := WordsToBytes(r)
		require.Equal(t, want[:], b[i*RecordBytes:(i+1)*RecordBytes])
	}
}

func TestMakeCache(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full epoch 0 caches")
	}

	cache := MakeCache(10000)
	require.Len(t, cache, int(CacheRecords(10000)))
	require.False(t, IsComposite(uint64(len(cache))))

	want := Record{868643959, 3179556070, 1871292480, 2635187316, 2658670881, 3651954940, 864296532,
		4161655205, 1170742362, 1613380156, 3420562092, 2441378987, 2714353747, 536405404, 2918860778, 540860293}
	require.Equal(t, want, cache[100])

	// every block in the epoch yields the same cache
	assert.Equal(t, cache, MakeCache(0))
	assert.Equal(t, cache, MakeCache(EpochLength-1))
}
