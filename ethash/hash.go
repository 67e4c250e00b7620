package ethash

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Both digests are the legacy keccak variants (0x01 padding), which differ
// from the FIPS-202 SHA3 functions of the same width.

// NewKeccak256 returns a legacy keccak-256 hasher.
func NewKeccak256() hash.Hash { return sha3.NewLegacyKeccak256() }

// NewKeccak512 returns a legacy keccak-512 hasher.
func NewKeccak512() hash.Hash { return sha3.NewLegacyKeccak512() }

// Keccak256 computes keccak-256(data)
func Keccak256(data []byte) Seed {
	hasher := NewKeccak256()
	_, _ = hasher.Write(data)

	var out Seed
	hasher.Sum(out[:0])
	return out
}

// Keccak512 computes keccak-512(data)
func Keccak512(data []byte) [RecordBytes]byte {
	hasher := NewKeccak512()
	_, _ = hasher.Write(data)

	var out [RecordBytes]byte
	hasher.Sum(out[:0])
	return out
}

// HashRecord computes keccak-512 over the little-endian serialization of r and
// returns the digest reinterpreted as a record.
func HashRecord(r Record) Record {
	h := newRecordHasher()
	return h.hashRecord(&r)
}

// recordHasher re-uses one keccak-512 state and scratch buffers across the
// many thousands of record hashes of a single build. It is not safe for
// concurrent use; each build owns its own.
type recordHasher struct {
	hasher hash.Hash
	in     [RecordBytes]byte
	out    [RecordBytes]byte
}

func newRecordHasher() *recordHasher {
	return &recordHasher{hasher: NewKeccak512()}
}

// hashBytes hashes an arbitrary buffer and returns the digest as a record.
func (h *recordHasher) hashBytes(data []byte) Record {
	h.hasher.Reset()
	_, _ = h.hasher.Write(data)
	h.hasher.Sum(h.out[:0])

	var r Record
	r.setBytes(h.out[:])
	return r
}

func (h *recordHasher) hashRecord(r *Record) Record {
	r.putBytes(h.in[:])
	return h.hashBytes(h.in[:])
}
