package ethash

// MakeCache builds the complete cache for the epoch containing blockNumber.
//
// The result is a pure function of Epoch(blockNumber). Nothing is retained
// between calls and the returned cache is owned by the caller.
func MakeCache(blockNumber uint64) Cache {
	cache := InitialCache(SeedHash(blockNumber), CacheRecords(blockNumber))
	MixCache(cache)
	return cache
}

// InitialCache returns the n record hash chain rooted at seed:
//
//	cache[0] = keccak512(seed)
//	cache[i] = keccak512(bytes(cache[i-1]))
//
// A zero n gives an empty cache.
func InitialCache(seed Seed, n uint64) Cache {
	if n == 0 {
		return Cache{}
	}
	h := newRecordHasher()

	cache := make(Cache, n)
	cache[0] = h.hashBytes(seed[:])
	for i := uint64(1); i < n; i++ {
		cache[i] = h.hashRecord(&cache[i-1])
	}
	return cache
}

// MixCache applies CacheRounds passes of RandMemoHash over cache, in place.
//
// Within a pass records are replaced in increasing index order and each
// replacement is visible to the next index. So record i > 0 mixes with the
// value its predecessor took in this pass, while record 0 mixes with the last
// record as left by the previous pass. The traversal must stay sequential.
func MixCache(cache Cache) {
	n := uint64(len(cache))
	if n == 0 {
		return
	}
	h := newRecordHasher()

	for round := 0; round < CacheRounds; round++ {
		for i := uint64(0); i < n; i++ {
			v := uint64(cache[i][0]) % n
			mixed := cache[(i+n-1)%n].Xor(cache[v])
			cache[i] = h.hashRecord(&mixed)
		}
	}
}

// Bytes returns the serialized cache, records concatenated in index order.
func (c Cache) Bytes() []byte {
	b := make([]byte, len(c)*RecordBytes)
	for i := range c {
		c[i].putBytes(b[i*RecordBytes:])
	}
	return b
}
