package ethash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedHash(t *testing.T) {
	require.Equal(t, Seed{}, SeedHash(0))
	require.Equal(t, Seed{}, SeedHash(EpochLength-1))

	seed1 := SeedHash(EpochLength)
	require.Equal(t,
		"290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563",
		hex.EncodeToString(seed1[:]))
	require.Equal(t, seed1, SeedHash(2*EpochLength-1))

	require.Equal(t, Keccak256(seed1[:]), SeedHash(2*EpochLength))
}

func TestSeedHashChain(t *testing.T) {
	var want Seed
	for epoch := uint64(0); epoch < 8; epoch++ {
		require.Equal(t, want, SeedHash(epoch*EpochLength+epoch), "epoch %d", epoch)
		want = Keccak256(want[:])
	}
}
