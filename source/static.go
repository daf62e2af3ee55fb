package source

import (
	"context"
	"sync"

	"github.com/arloliu/santa/types"
)

// Static implements a roster source with an in-memory roster.
type Static struct {
	mu     sync.RWMutex
	roster types.Roster
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The roster is copied, so later changes to the caller's slices are not
// observed. Useful for tests and for rosters assembled in code.
//
// Parameters:
//   - roster: Participants and exclusions
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(types.Roster{
//	    Participants:     []types.Participant{"Sheldon", "Amy", "Leonard"},
//	    MutualExclusions: []types.PairExclusion{{A: "Sheldon", B: "Amy"}},
//	})
//	group, err := santa.NewGroupFromSource(ctx, nil, src)
func NewStatic(roster types.Roster) *Static {
	return &Static{
		roster: roster.Clone(),
	}
}

// LoadRoster returns a copy of the roster.
//
// Returns:
//   - types.Roster: The current roster
//   - error: Always nil (never fails)
func (s *Static) LoadRoster(_ context.Context) (types.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roster.Clone(), nil
}

// Update replaces the roster.
//
// Groups already built from the source are not affected; the next
// LoadRoster call returns the new roster.
//
// Parameters:
//   - roster: New roster
func (s *Static) Update(roster types.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = roster.Clone()
}
