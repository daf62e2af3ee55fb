package source

import (
	"context"
	"testing"

	"github.com/arloliu/santa/types"
	"github.com/stretchr/testify/require"
)

func TestStatic_LoadRoster(t *testing.T) {
	roster := types.Roster{
		Participants:       []types.Participant{"Sheldon", "Amy", "Leonard"},
		MutualExclusions:   []types.PairExclusion{{A: "Sheldon", B: "Amy"}},
		DirectedExclusions: []types.DirectedExclusion{{From: "Leonard", To: "Sheldon"}},
	}

	t.Run("returns the roster", func(t *testing.T) {
		src := NewStatic(roster)

		result, err := src.LoadRoster(context.Background())

		require.NoError(t, err)
		require.Equal(t, roster, result)
	})

	t.Run("returns an empty roster", func(t *testing.T) {
		src := NewStatic(types.Roster{})

		result, err := src.LoadRoster(context.Background())

		require.NoError(t, err)
		require.Empty(t, result.Participants)
	})

	t.Run("does not share slices with callers", func(t *testing.T) {
		input := roster.Clone()
		src := NewStatic(input)
		input.Participants[0] = "Changed"

		result, err := src.LoadRoster(context.Background())
		require.NoError(t, err)

		// Modify returned slice
		result.Participants[1] = "Mutated"

		result2, _ := src.LoadRoster(context.Background())
		require.Equal(t, roster, result2)
	})
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic(types.Roster{Participants: []types.Participant{"A", "B"}})

	src.Update(types.Roster{Participants: []types.Participant{"A", "B", "C"}})

	result, err := src.LoadRoster(context.Background())
	require.NoError(t, err)
	require.Equal(t, []types.Participant{"A", "B", "C"}, result.Participants)
}
