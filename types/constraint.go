package types

import (
	"fmt"
	"slices"
)

// ConstraintKind distinguishes mutual from directed exclusions.
type ConstraintKind int

const (
	// ConstraintMutual forbids either side from giving to the other.
	ConstraintMutual ConstraintKind = iota

	// ConstraintDirected forbids A from giving to B only.
	ConstraintDirected
)

// String returns a human-readable name for the constraint kind.
func (k ConstraintKind) String() string {
	switch k {
	case ConstraintMutual:
		return "mutual"
	case ConstraintDirected:
		return "directed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Constraint is a single exclusion rule between two participants.
//
// For ConstraintMutual the order of A and B is irrelevant. For
// ConstraintDirected, A is the giver that may not draw B.
type Constraint struct {
	Kind ConstraintKind `json:"kind"`
	A    Participant    `json:"a"`
	B    Participant    `json:"b"`
}

// Forbids reports whether the constraint rules out giver → recipient.
func (c Constraint) Forbids(giver, recipient Participant) bool {
	switch c.Kind {
	case ConstraintMutual:
		return (c.A == giver && c.B == recipient) || (c.A == recipient && c.B == giver)
	case ConstraintDirected:
		return c.A == giver && c.B == recipient
	default:
		return false
	}
}

// String formats the constraint as "A <-> B" or "A -> B".
func (c Constraint) String() string {
	if c.Kind == ConstraintMutual {
		return fmt.Sprintf("%s <-> %s", c.A, c.B)
	}

	return fmt.Sprintf("%s -> %s", c.A, c.B)
}

// Snapshot is an immutable view of a group handed to an assignment strategy.
//
// Participants are in insertion order. Strategies must treat the slices as
// read-only.
type Snapshot struct {
	Participants []Participant
	Constraints  []Constraint
}

// Validate checks the structural invariants of an assignment against the snapshot.
//
// The checks are:
//   - every participant gives exactly once and receives exactly once
//   - nobody gives to themselves
//   - no mutual or directed exclusion is violated
//
// Parameters:
//   - a: Assignment to check
//
// Returns:
//   - error: nil if the assignment is valid for this snapshot
func (s Snapshot) Validate(a Assignment) error {
	if len(a.Pairs) != len(s.Participants) {
		return fmt.Errorf("assignment has %d pairs, expected %d", len(a.Pairs), len(s.Participants))
	}

	gives := make(map[Participant]int, len(s.Participants))
	receives := make(map[Participant]int, len(s.Participants))
	for _, p := range a.Pairs {
		if !slices.Contains(s.Participants, p.Giver) {
			return fmt.Errorf("%w: giver %q", ErrUnknownParticipant, p.Giver)
		}
		if !slices.Contains(s.Participants, p.Recipient) {
			return fmt.Errorf("%w: recipient %q", ErrUnknownParticipant, p.Recipient)
		}
		if p.Giver == p.Recipient {
			return fmt.Errorf("%q is assigned to themselves", p.Giver)
		}
		for _, c := range s.Constraints {
			if c.Forbids(p.Giver, p.Recipient) {
				return fmt.Errorf("pair %s -> %s violates constraint %s", p.Giver, p.Recipient, c)
			}
		}
		gives[p.Giver]++
		receives[p.Recipient]++
	}

	for _, participant := range s.Participants {
		if gives[participant] != 1 {
			return fmt.Errorf("%q gives %d times", participant, gives[participant])
		}
		if receives[participant] != 1 {
			return fmt.Errorf("%q receives %d times", participant, receives[participant])
		}
	}

	return nil
}
