package types

import (
	"cmp"
	"fmt"
	"slices"
)

// Participant identifies one member of a gift-giving group.
//
// Identifiers are opaque and compared with exact, case-sensitive string
// equality. In the common case this is a display name such as "Amy".
type Participant string

// String returns the participant identifier.
func (p Participant) String() string {
	return string(p)
}

// Pair is a single giver → recipient edge of an assignment.
type Pair struct {
	// Giver is the participant buying the gift.
	Giver Participant `json:"giver" yaml:"giver"`

	// Recipient is the participant receiving the gift.
	Recipient Participant `json:"recipient" yaml:"recipient"`
}

// Assignment is the result of a successful resolution.
//
// Pairs are kept in draw order: the order in which givers picked a name from
// the basket during the winning attempt. Every participant of the resolved
// snapshot appears exactly once as a giver and exactly once as a recipient.
type Assignment struct {
	// Pairs lists giver → recipient edges in draw order.
	Pairs []Pair `json:"pairs"`

	// Attempt is the 1-based attempt number that produced this assignment.
	Attempt int `json:"attempt"`
}

// Len returns the number of giver → recipient pairs.
func (a Assignment) Len() int {
	return len(a.Pairs)
}

// RecipientOf returns the participant the giver has to buy a gift for.
//
// Parameters:
//   - giver: Participant to look up
//
// Returns:
//   - Participant: The recipient ("" if the giver is not part of the assignment)
//   - bool: true if the giver was found
func (a Assignment) RecipientOf(giver Participant) (Participant, bool) {
	for _, p := range a.Pairs {
		if p.Giver == giver {
			return p.Recipient, true
		}
	}

	return "", false
}

// GiverOf returns the participant who buys a gift for the recipient.
//
// Parameters:
//   - recipient: Participant to look up
//
// Returns:
//   - Participant: The giver ("" if the recipient is not part of the assignment)
//   - bool: true if the recipient was found
func (a Assignment) GiverOf(recipient Participant) (Participant, bool) {
	for _, p := range a.Pairs {
		if p.Recipient == recipient {
			return p.Giver, true
		}
	}

	return "", false
}

// Validate checks the shape of an assignment without a snapshot.
//
// An assignment is well-formed when it has at least one pair, no pair has an
// empty side, nobody gives to themselves, and every giver and every recipient
// appears once. Snapshot.Validate additionally checks membership and exclusions.
//
// Returns:
//   - error: nil if well-formed, otherwise an error wrapping ErrInvalidAssignment
func (a Assignment) Validate() error {
	if len(a.Pairs) == 0 {
		return fmt.Errorf("%w: no pairs", ErrInvalidAssignment)
	}

	givers := make(map[Participant]struct{}, len(a.Pairs))
	recipients := make(map[Participant]struct{}, len(a.Pairs))
	for _, p := range a.Pairs {
		if p.Giver == "" || p.Recipient == "" {
			return fmt.Errorf("%w: pair %q -> %q has an empty side", ErrInvalidAssignment, p.Giver, p.Recipient)
		}
		if p.Giver == p.Recipient {
			return fmt.Errorf("%w: %q is assigned to themselves", ErrInvalidAssignment, p.Giver)
		}
		if _, ok := givers[p.Giver]; ok {
			return fmt.Errorf("%w: %q gives more than once", ErrInvalidAssignment, p.Giver)
		}
		if _, ok := recipients[p.Recipient]; ok {
			return fmt.Errorf("%w: %q receives more than once", ErrInvalidAssignment, p.Recipient)
		}
		givers[p.Giver] = struct{}{}
		recipients[p.Recipient] = struct{}{}
	}

	return nil
}

// Map returns the assignment as a giver → recipient map.
func (a Assignment) Map() map[Participant]Participant {
	m := make(map[Participant]Participant, len(a.Pairs))
	for _, p := range a.Pairs {
		m[p.Giver] = p.Recipient
	}

	return m
}

// Sorted returns a copy of the pairs ordered by giver.
//
// Useful for stable output where draw order would leak information about
// who drew first.
func (a Assignment) Sorted() []Pair {
	pairs := slices.Clone(a.Pairs)
	slices.SortFunc(pairs, func(x, y Pair) int {
		return cmp.Compare(x.Giver, y.Giver)
	})

	return pairs
}
