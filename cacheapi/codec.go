package cacheapi

import (
	"fmt"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/forestrie/go-ethashcache/ethash"
)

// NewCacheCodec returns the deterministic codec used for cache payloads.
func NewCacheCodec() (commoncbor.CBORCodec, error) {
	codec, err := commoncbor.NewCBORCodec(
		commoncbor.NewDeterministicEncOpts(),
		commoncbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return commoncbor.CBORCodec{}, err
	}
	return codec, nil
}

// DecodeBlockNumber decodes a single CBOR unsigned integer. CBOR null and
// undefined are rejected along with every other non integer.
func DecodeBlockNumber(data []byte) (uint64, error) {
	var blockNumber *uint64
	if err := cbor.Unmarshal(data, &blockNumber); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecodeBlockNumber, err)
	}
	if blockNumber == nil {
		return 0, fmt.Errorf("%w: null or undefined", ErrDecodeBlockNumber)
	}
	return *blockNumber, nil
}

// EncodeBlockNumber is the request encoding DecodeBlockNumber accepts.
func EncodeBlockNumber(blockNumber uint64) ([]byte, error) {
	return cbor.Marshal(blockNumber)
}

// EncodeCache encodes the cache as an array of 16 element arrays of unsigned
// integers.
func EncodeCache(codec commoncbor.CBORCodec, cache ethash.Cache) ([]byte, error) {
	return codec.MarshalCBOR(cache)
}

// DecodeCache is the inverse of EncodeCache.
func DecodeCache(codec commoncbor.CBORCodec, data []byte) (ethash.Cache, error) {
	var records [][]uint32
	if err := codec.UnmarshalInto(data, &records); err != nil {
		return nil, err
	}

	cache := make(ethash.Cache, len(records))
	for i, words := range records {
		if len(words) != ethash.RecordWords {
			return nil, fmt.Errorf("%w: record %d has %d", ErrBadRecordWidth, i, len(words))
		}
		copy(cache[i][:], words)
	}
	return cache, nil
}
