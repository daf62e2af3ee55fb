package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the santa library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%w: %q", ErrX, value).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Group, Resolver, Source, Publisher)
//   - Use consistent messages across similar error types

// Group errors - returned while building a group.
var (
	// ErrInvalidParticipant is returned when a participant identifier is empty.
	ErrInvalidParticipant = errors.New("invalid participant")

	// ErrDuplicateParticipant is returned when a participant is added twice.
	ErrDuplicateParticipant = errors.New("duplicate participant")

	// ErrUnknownParticipant is returned when a constraint references a non-member.
	ErrUnknownParticipant = errors.New("unknown participant")

	// ErrInvalidConstraint is returned when both sides of a constraint are the same participant.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Resolver errors - returned by Assign.
var (
	// ErrInsufficientParticipants is returned when a group has fewer than two participants.
	ErrInsufficientParticipants = errors.New("insufficient participants")

	// ErrResolutionFailed is returned when every attempt ended in a conflict.
	//
	// It does not mean that no valid assignment exists, only that the bounded
	// randomized search did not find one.
	ErrResolutionFailed = errors.New("resolution failed")
)

// ResolutionError reports an exhausted retry budget.
//
// It matches ErrResolutionFailed with errors.Is and carries the number of
// attempts the strategy actually made, which may differ from Config.MaxAttempts
// when a custom strategy is supplied.
type ResolutionError struct {
	Attempts int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: no conflict-free draw after %d attempts", ErrResolutionFailed, e.Attempts)
}

func (e *ResolutionError) Unwrap() error {
	return ErrResolutionFailed
}

// Source errors - returned by roster sources.
var (
	// ErrRosterSourceRequired is returned when a nil roster source is supplied.
	ErrRosterSourceRequired = errors.New("roster source is required")

	// ErrInvalidRoster is returned when a roster cannot be read or decoded.
	ErrInvalidRoster = errors.New("invalid roster")
)

// Publisher errors - returned by assignment publishers.
var (
	// ErrInvalidDrawID is returned when a draw ID is not a valid bucket name fragment.
	ErrInvalidDrawID = errors.New("invalid draw ID")

	// ErrPublishFailed is returned when writing an assignment to NATS KV fails.
	ErrPublishFailed = errors.New("failed to publish assignment")

	// ErrInvalidAssignment is returned when an assignment is empty or structurally broken.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrRecordNotFound is returned when no published record exists for a giver.
	ErrRecordNotFound = errors.New("assignment record not found")

	// ErrConnectivity indicates a NATS/KV connectivity issue.
	// This is used to distinguish network failures from application errors.
	ErrConnectivity = errors.New("connectivity issue")
)

// IsConstraintError reports whether err was caused by invalid group input.
//
// Constraint errors are caller mistakes (duplicate names, unknown references,
// reflexive exclusions); they never succeed on retry.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err wraps one of the group-building sentinels
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrInvalidParticipant) ||
		errors.Is(err, ErrDuplicateParticipant) ||
		errors.Is(err, ErrUnknownParticipant) ||
		errors.Is(err, ErrInvalidConstraint)
}
