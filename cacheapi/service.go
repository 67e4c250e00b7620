// Package cacheapi exposes ethash cache construction as a narrow call surface:
// a block number in, a complete cache out, with CBOR encodings for callers
// on the far side of a process boundary.
package cacheapi

import (
	"fmt"
	"sync"
	"time"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ethashcache/ethash"
)

// Service builds ethash caches for callers, subject to Cfg.
type Service struct {
	Cfg   Config
	Log   logger.Logger
	codec commoncbor.CBORCodec

	// makeCache is ethash.MakeCache outside of tests
	makeCache func(blockNumber uint64) ethash.Cache
}

// NewService creates a Service logging to log.
func NewService(cfg Config, log logger.Logger) (*Service, error) {
	codec, err := NewCacheCodec()
	if err != nil {
		return nil, err
	}
	s := &Service{
		Cfg:       cfg,
		Log:       log,
		codec:     codec,
		makeCache: ethash.MakeCache,
	}
	return s, nil
}

// Codec returns the codec used for cache payloads.
func (s *Service) Codec() commoncbor.CBORCodec { return s.codec }

// CheckBlockNumber returns ErrEpochOutOfRange if blockNumber falls in an
// epoch the service does not serve.
func (s *Service) CheckBlockNumber(blockNumber uint64) error {
	epoch := ethash.Epoch(blockNumber)
	if epoch >= s.Cfg.maxEpochs() {
		return fmt.Errorf("%w: block %d is in epoch %d, limit %d",
			ErrEpochOutOfRange, blockNumber, epoch, s.Cfg.maxEpochs())
	}
	return nil
}

// MakeCache builds the cache for blockNumber. Either the complete cache is
// returned or an error is returned before any work is done.
func (s *Service) MakeCache(blockNumber uint64) (ethash.Cache, error) {
	if err := s.CheckBlockNumber(blockNumber); err != nil {
		return nil, err
	}

	start := time.Now()
	cache := s.makeCache(blockNumber)
	s.Log.Debugf("MakeCache: block %d, epoch %d, records %d, elapsed %v",
		blockNumber, ethash.Epoch(blockNumber), len(cache), time.Since(start))
	return cache, nil
}

// MakeCaches builds the caches for several block numbers at once. Each build
// runs on its own goroutine and owns its cache outright. All block numbers
// are checked before any build starts, so the result is all or nothing.
func (s *Service) MakeCaches(blockNumbers []uint64) ([]ethash.Cache, error) {
	for _, blockNumber := range blockNumbers {
		if err := s.CheckBlockNumber(blockNumber); err != nil {
			return nil, err
		}
	}

	caches := make([]ethash.Cache, len(blockNumbers))
	var wg sync.WaitGroup
	for i, blockNumber := range blockNumbers {
		wg.Add(1)
		go func(i int, blockNumber uint64) {
			defer wg.Done()
			caches[i] = s.makeCache(blockNumber)
		}(i, blockNumber)
	}
	wg.Wait()

	s.Log.Debugf("MakeCaches: %d caches", len(caches))
	return caches, nil
}

// MakeCacheCBOR decodes a CBOR encoded block number, builds its cache and
// returns the cache CBOR encoded (see EncodeCache).
func (s *Service) MakeCacheCBOR(payload []byte) ([]byte, error) {
	blockNumber, err := DecodeBlockNumber(payload)
	if err != nil {
		s.Log.Infof("MakeCacheCBOR: %v", err)
		return nil, err
	}

	cache, err := s.MakeCache(blockNumber)
	if err != nil {
		s.Log.Infof("MakeCacheCBOR: %v", err)
		return nil, err
	}
	return EncodeCache(s.codec, cache)
}
