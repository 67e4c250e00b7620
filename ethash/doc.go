package ethash

/*

# Ethash verification cache

This package derives the ethash cache for a block: the table of 512 bit
records that seeds the memory-hard proof-of-work dataset. The output must be
bit identical to every other ethash implementation.

It follows the same "functional primitives" style as the merklelog packages:

- small, composable functions
- explicit byte layouts
- index arithmetic on fixed width records
- no logging, no configuration, no state between calls

## Pipeline

	blockNumber
	    |
	    +-- Epoch = blockNumber / 30000
	    |
	    +-- CacheSize   16MiB + 128KiB*epoch - 64, walked down to a non
	    |               composite record count
	    |
	    +-- SeedHash    keccak256 applied epoch times to 32 zero bytes
	    |
	    +-- InitialCache  keccak512 hash chain from the seed
	    |
	    +-- MixCache      3 sequential RandMemoHash passes, in place

## Record layout

A record is 16 uint32 words. Its byte form is each word little-endian,
concatenated in word order:

	+--------+--------+-- ... --+---------+
	| w0 LE  | w1 LE  |         | w15 LE  |   64 bytes
	+--------+--------+-- ... --+---------+

## Mixing

For each pass, for i = 0 .. n-1 in order:

	v        = cache[i][0] mod n
	mixed    = cache[(i-1) mod n] xor cache[v]
	cache[i] = keccak512(bytes(mixed))

Updates are visible immediately. Index 0 reads the last record as the
previous pass left it; every other index reads its freshly written
predecessor. Parallelising or snapshotting a pass changes the result.

## Hashes

Both hashes are legacy Keccak (the padding used before FIPS-202), not SHA3.

## Sizing quirk

IsComposite treats 0 and 1 as not composite and bounds trial division with a
truncated float64 square root. Both are part of the reference behaviour and
are kept.

*/
