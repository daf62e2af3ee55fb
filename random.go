package santa

import (
	"math/rand/v2"

	"github.com/arloliu/santa/internal/hash"
)

// NewRandom returns a PCG-backed random source for the given seed.
//
// A seed of 0 draws a seed from the runtime's random source, so every call
// yields a different sequence.
//
// Parameters:
//   - seed: Fixed seed, or 0 for a random one
//
// Returns:
//   - Random: Source suitable for WithRandom
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^0x5eed5a17a))
}

// SeedFromPhrase maps a human-friendly phrase to a non-zero seed.
//
// The empty phrase maps to 0 (random seed).
func SeedFromPhrase(phrase string) uint64 {
	return hash.SeedFromPhrase(phrase)
}

// seedFor resolves the effective seed of a config.
func seedFor(cfg *Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}

	return hash.SeedFromPhrase(cfg.SeedPhrase)
}
