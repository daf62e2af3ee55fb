// Package matrix implements the giver × recipient permission matrix used by
// the basket draw.
package matrix

import (
	"fmt"

	"github.com/arloliu/santa/types"
)

// Matrix records which giver may draw which recipient.
//
// Rows are givers, columns are recipients, both indexed by insertion order of
// the participants. The diagonal is always false.
type Matrix struct {
	keys    []types.Participant
	indexes map[types.Participant]int
	allowed [][]bool
}

// New creates a matrix where everybody may draw everybody except themselves.
//
// Parameters:
//   - keys: Participants in insertion order (must be unique)
//
// Returns:
//   - *Matrix: Initialized matrix
//   - error: ErrDuplicateParticipant if keys contain duplicates
func New(keys []types.Participant) (*Matrix, error) {
	size := len(keys)
	m := &Matrix{
		keys:    keys,
		indexes: make(map[types.Participant]int, size),
		allowed: make([][]bool, size),
	}

	for i, key := range keys {
		if _, ok := m.indexes[key]; ok {
			return nil, fmt.Errorf("%w: %q", types.ErrDuplicateParticipant, key)
		}
		m.indexes[key] = i
	}

	for i := range m.allowed {
		row := make([]bool, size)
		for j := range row {
			row[j] = i != j
		}
		m.allowed[i] = row
	}

	return m, nil
}

// FromSnapshot builds a matrix and applies every constraint of the snapshot.
//
// Parameters:
//   - snapshot: Participants and constraints
//
// Returns:
//   - *Matrix: Matrix with exclusions applied
//   - error: ErrUnknownParticipant or ErrInvalidConstraint for bad constraints
func FromSnapshot(snapshot types.Snapshot) (*Matrix, error) {
	m, err := New(snapshot.Participants)
	if err != nil {
		return nil, err
	}

	for _, c := range snapshot.Constraints {
		if err := m.Apply(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Apply clears the cells forbidden by a constraint.
//
// Parameters:
//   - c: Mutual or directed exclusion
//
// Returns:
//   - error: ErrUnknownParticipant if a side is missing, ErrInvalidConstraint if A == B
func (m *Matrix) Apply(c types.Constraint) error {
	if c.A == c.B {
		return fmt.Errorf("%w: %q cannot be excluded from themselves", types.ErrInvalidConstraint, c.A)
	}
	a, ok := m.indexes[c.A]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownParticipant, c.A)
	}
	b, ok := m.indexes[c.B]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownParticipant, c.B)
	}

	switch c.Kind {
	case types.ConstraintMutual:
		m.allowed[a][b] = false
		m.allowed[b][a] = false
	case types.ConstraintDirected:
		m.allowed[a][b] = false
	default:
		return fmt.Errorf("%w: unsupported kind %s", types.ErrInvalidConstraint, c.Kind)
	}

	return nil
}

// Allowed reports whether giver may draw recipient (by index).
func (m *Matrix) Allowed(giver, recipient int) bool {
	return m.allowed[giver][recipient]
}

// Size returns the number of participants.
func (m *Matrix) Size() int {
	return len(m.keys)
}

// Key returns the participant at index i.
func (m *Matrix) Key(i int) types.Participant {
	return m.keys[i]
}

// Options returns the number of recipients a giver may draw when everyone is still available.
func (m *Matrix) Options(giver int) int {
	n := 0
	for _, ok := range m.allowed[giver] {
		if ok {
			n++
		}
	}

	return n
}
