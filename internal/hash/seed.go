// Package hash provides stable 64-bit hashing helpers built on XXH3.
package hash

import (
	"github.com/zeebo/xxh3"

	"github.com/arloliu/santa/types"
)

// SeedFromPhrase derives a random seed from a human-memorable phrase.
//
// The same phrase always yields the same seed, so a draw can be reproduced
// by anyone who knows the phrase (e.g. "family-2026"). An empty phrase maps
// to 0, which callers treat as "no seed".
//
// Parameters:
//   - phrase: Arbitrary text
//
// Returns:
//   - uint64: Seed value (0 only for the empty phrase)
func SeedFromPhrase(phrase string) uint64 {
	if phrase == "" {
		return 0
	}

	h := xxh3.HashString(phrase)
	if h == 0 {
		// 0 means "unseeded" to callers.
		return 1
	}

	return h
}

// Fingerprint computes an order-independent digest of an assignment.
//
// Pairs are folded in giver order, each one seeded with the previous hash,
// so two assignments have the same fingerprint iff they map every giver to
// the same recipient. Useful for auditing a draw without revealing it.
//
// Parameters:
//   - a: Assignment to digest
//
// Returns:
//   - uint64: Fingerprint (0 for an empty assignment)
func Fingerprint(a types.Assignment) uint64 {
	if len(a.Pairs) == 0 {
		return 0
	}

	var h uint64
	for _, p := range a.Sorted() {
		h = xxh3.HashStringSeed(string(p.Giver), h)
		h = xxh3.HashStringSeed(string(p.Recipient), h)
	}

	return h
}
