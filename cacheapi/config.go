package cacheapi

// DefaultMaxEpochs matches the length of the precomputed size tables carried
// by other ethash implementations.
const DefaultMaxEpochs = 2048

// Config is the Service policy.
type Config struct {
	// MaxEpochs is the number of epochs served, starting from epoch 0. A
	// cache grows by 128KiB per epoch, so this also bounds the memory a
	// single request can demand. Zero selects DefaultMaxEpochs.
	MaxEpochs uint64
}

func (cfg Config) maxEpochs() uint64 {
	if cfg.MaxEpochs == 0 {
		return DefaultMaxEpochs
	}
	return cfg.MaxEpochs
}
