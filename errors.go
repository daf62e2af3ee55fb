package santa

import "github.com/arloliu/santa/types"

// Re-export sentinel errors from the types package.
//
// Match them with errors.Is; every error returned by the library wraps one
// of these with additional context.
var (
	ErrInvalidParticipant       = types.ErrInvalidParticipant
	ErrDuplicateParticipant     = types.ErrDuplicateParticipant
	ErrUnknownParticipant       = types.ErrUnknownParticipant
	ErrInvalidConstraint        = types.ErrInvalidConstraint
	ErrInvalidConfig            = types.ErrInvalidConfig
	ErrInsufficientParticipants = types.ErrInsufficientParticipants
	ErrResolutionFailed         = types.ErrResolutionFailed
	ErrRosterSourceRequired     = types.ErrRosterSourceRequired
	ErrInvalidRoster            = types.ErrInvalidRoster
	ErrInvalidDrawID            = types.ErrInvalidDrawID
	ErrPublishFailed            = types.ErrPublishFailed
	ErrInvalidAssignment        = types.ErrInvalidAssignment
	ErrRecordNotFound           = types.ErrRecordNotFound
	ErrConnectivity             = types.ErrConnectivity
)

// IsConstraintError reports whether err was caused by invalid group input.
func IsConstraintError(err error) bool {
	return types.IsConstraintError(err)
}
