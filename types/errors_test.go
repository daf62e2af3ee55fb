package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: %q", ErrDuplicateParticipant, "Amy")
		require.True(t, errors.Is(wrapped, ErrDuplicateParticipant))
		require.False(t, errors.Is(wrapped, ErrUnknownParticipant))

		joined := errors.Join(ErrResolutionFailed, errors.New("additional context"))
		require.True(t, errors.Is(joined, ErrResolutionFailed))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			// Group errors
			ErrInvalidParticipant,
			ErrDuplicateParticipant,
			ErrUnknownParticipant,
			ErrInvalidConstraint,
			ErrInvalidConfig,
			// Resolver errors
			ErrInsufficientParticipants,
			ErrResolutionFailed,
			// Source errors
			ErrRosterSourceRequired,
			ErrInvalidRoster,
			// Publisher errors
			ErrInvalidDrawID,
			ErrPublishFailed,
			ErrInvalidAssignment,
			ErrRecordNotFound,
			ErrConnectivity,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestIsConstraintError(t *testing.T) {
	require.False(t, IsConstraintError(nil))
	require.True(t, IsConstraintError(fmt.Errorf("%w: %q", ErrUnknownParticipant, "Y")))
	require.True(t, IsConstraintError(ErrInvalidConstraint))
	require.True(t, IsConstraintError(ErrDuplicateParticipant))
	require.True(t, IsConstraintError(ErrInvalidParticipant))
	require.False(t, IsConstraintError(ErrResolutionFailed))
	require.False(t, IsConstraintError(ErrInsufficientParticipants))
}

func TestResolutionError(t *testing.T) {
	err := fmt.Errorf("draw: %w", &ResolutionError{Attempts: 42})

	require.ErrorIs(t, err, ErrResolutionFailed)
	require.ErrorContains(t, err, "after 42 attempts")

	var rerr *ResolutionError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, 42, rerr.Attempts)
}
