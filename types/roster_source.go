package types

import (
	"context"
	"slices"
)

// PairExclusion names two participants that must not draw each other.
type PairExclusion struct {
	A Participant `json:"a" yaml:"a"`
	B Participant `json:"b" yaml:"b"`
}

// DirectedExclusion names a giver that must not draw a specific recipient.
type DirectedExclusion struct {
	From Participant `json:"from" yaml:"from"`
	To   Participant `json:"to" yaml:"to"`
}

// Roster is a serializable description of a group.
//
// Example YAML:
//
//	participants: [Sheldon, Amy, Leonard, Penny, Rajesh]
//	mutualExclusions:
//	  - {a: Sheldon, b: Amy}
//	directedExclusions:
//	  - {from: Leonard, to: Penny}
type Roster struct {
	Participants       []Participant       `json:"participants" yaml:"participants"`
	MutualExclusions   []PairExclusion     `json:"mutualExclusions,omitempty" yaml:"mutualExclusions"`
	DirectedExclusions []DirectedExclusion `json:"directedExclusions,omitempty" yaml:"directedExclusions"`
}

// RosterSource provides the roster a group is built from.
//
// Implementations may load rosters from static lists, files, or external
// systems. Implementations should be safe for concurrent calls.
type RosterSource interface {
	// LoadRoster returns the current roster.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Roster: Participants and exclusions
	//   - error: Source-specific error (wrapped with ErrInvalidRoster for malformed data)
	LoadRoster(ctx context.Context) (Roster, error)
}

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	return Roster{
		Participants:       slices.Clone(r.Participants),
		MutualExclusions:   slices.Clone(r.MutualExclusions),
		DirectedExclusions: slices.Clone(r.DirectedExclusions),
	}
}
