package ethash

// SeedHash returns the seed for the epoch containing blockNumber: the zero seed
// re-hashed with keccak-256 once per elapsed epoch. All blocks of an epoch
// share a seed.
func SeedHash(blockNumber uint64) Seed {
	var seed Seed
	hasher := NewKeccak256()
	for i := uint64(0); i < Epoch(blockNumber); i++ {
		hasher.Reset()
		_, _ = hasher.Write(seed[:])
		hasher.Sum(seed[:0])
	}
	return seed
}
