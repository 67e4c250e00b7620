package ethash

import "errors"

const (
	// RecordWords is the number of 32 bit words in a cache record.
	RecordWords = 16

	// RecordBytes is the serialized width of a record, and the width of a
	// keccak-512 digest.
	RecordBytes = 4 * RecordWords

	// SeedBytes is the width of a seed, and of a keccak-256 digest.
	SeedBytes = 32

	// EpochLength is the number of blocks sharing one seed (and so one cache).
	EpochLength uint64 = 30000

	// CacheBytesInit is the cache size, in bytes, at epoch 0 before the prime
	// adjustment.
	CacheBytesInit uint64 = 16777216

	// CacheBytesGrowth is added to the cache size for each epoch.
	CacheBytesGrowth uint64 = 131072

	// CacheRounds is the number of mixing passes made over the initial
	// chained hash table.
	CacheRounds = 3
)

// Record is one 512 bit cache slot.
type Record [RecordWords]uint32

// Seed is the root of the chained hash for an epoch.
type Seed [SeedBytes]byte

// Cache is the ordered table of records for one epoch. Record i depends on
// records (i-1) mod n and Record[i][0] mod n, so the order is significant.
type Cache []Record

var (
	ErrBadRecordSize = errors.New("ethash: record must be 64 bytes")
)
