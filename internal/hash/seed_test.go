package hash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/types"
)

func TestSeedFromPhrase(t *testing.T) {
	t.Run("empty phrase means unseeded", func(t *testing.T) {
		require.Zero(t, SeedFromPhrase(""))
	})

	t.Run("same phrase gives same seed", func(t *testing.T) {
		require.Equal(t, SeedFromPhrase("family-2026"), SeedFromPhrase("family-2026"))
		require.NotZero(t, SeedFromPhrase("family-2026"))
	})

	t.Run("phrases are case sensitive", func(t *testing.T) {
		require.NotEqual(t, SeedFromPhrase("Family"), SeedFromPhrase("family"))
	})
}

func TestFingerprint(t *testing.T) {
	a := types.Assignment{Pairs: []types.Pair{
		{Giver: "A", Recipient: "B"},
		{Giver: "B", Recipient: "C"},
		{Giver: "C", Recipient: "A"},
	}}

	t.Run("ignores draw order", func(t *testing.T) {
		shuffled := types.Assignment{Pairs: []types.Pair{
			{Giver: "C", Recipient: "A"},
			{Giver: "A", Recipient: "B"},
			{Giver: "B", Recipient: "C"},
		}}
		require.Equal(t, Fingerprint(a), Fingerprint(shuffled))
	})

	t.Run("differs for different recipients", func(t *testing.T) {
		other := types.Assignment{Pairs: []types.Pair{
			{Giver: "A", Recipient: "C"},
			{Giver: "B", Recipient: "A"},
			{Giver: "C", Recipient: "B"},
		}}
		require.NotEqual(t, Fingerprint(a), Fingerprint(other))
	})

	t.Run("empty assignment is zero", func(t *testing.T) {
		require.Zero(t, Fingerprint(types.Assignment{}))
	})
}
