package ethash

import "encoding/binary"

// PutWordLE writes a single word in little-endian layout, least significant
// byte at the lowest address.
func PutWordLE(dst []byte, w uint32) { binary.LittleEndian.PutUint32(dst, w) }

// WordLE reads a single little-endian word.
func WordLE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// WordsToBytes serializes the record, each word little-endian, words in index
// order.
func WordsToBytes(r Record) [RecordBytes]byte {
	var b [RecordBytes]byte
	r.putBytes(b[:])
	return b
}

// BytesToWords is the inverse of WordsToBytes.
func BytesToWords(b [RecordBytes]byte) Record {
	var r Record
	r.setBytes(b[:])
	return r
}

// RecordFromBytes decodes a record from a slice which must be exactly
// RecordBytes long.
func RecordFromBytes(b []byte) (Record, error) {
	if len(b) != RecordBytes {
		return Record{}, ErrBadRecordSize
	}
	var r Record
	r.setBytes(b)
	return r, nil
}

// Xor returns the word-wise exclusive or of r and other.
func (r Record) Xor(other Record) Record {
	var x Record
	for i := range r {
		x[i] = r[i] ^ other[i]
	}
	return x
}

// putBytes requires len(dst) >= RecordBytes
func (r *Record) putBytes(dst []byte) {
	for i, w := range r {
		PutWordLE(dst[4*i:], w)
	}
}

// setBytes requires len(b) >= RecordBytes
func (r *Record) setBytes(b []byte) {
	for i := range r {
		r[i] = WordLE(b[4*i:])
	}
}
