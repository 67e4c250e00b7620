package ethash

import "math"

// Epoch returns the epoch number for blockNumber.
func Epoch(blockNumber uint64) uint64 {
	return blockNumber / EpochLength
}

// IsComposite reports whether candidate has a divisor in
// [2, floor(sqrt(candidate)) + 1).
//
// The square root is taken in float64 and truncated. Candidates 0 and 1 are
// never reported composite: the divisor range is empty for both. Changing
// either of these details changes the cache sizes, so they are kept exactly.
func IsComposite(candidate uint64) bool {
	maximalDivisor := uint64(math.Sqrt(float64(candidate))) + 1
	for i := uint64(2); i < maximalDivisor; i++ {
		if candidate%i == 0 {
			return true
		}
	}
	return false
}

// CacheSize returns the cache size in bytes for blockNumber.
//
// The size grows linearly per epoch and is then walked down, one record at a
// time, until the record count is not composite. The result is always a
// multiple of RecordBytes.
func CacheSize(blockNumber uint64) uint64 {
	size := CacheBytesInit + CacheBytesGrowth*Epoch(blockNumber) - RecordBytes
	for IsComposite(size / RecordBytes) {
		size -= RecordBytes
	}
	return size
}

// CacheRecords returns the number of records in the cache for blockNumber.
func CacheRecords(blockNumber uint64) uint64 {
	return CacheSize(blockNumber) / RecordBytes
}
