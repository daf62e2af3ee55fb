package types

// Random is the randomness capability consumed by assignment strategies.
//
// *math/rand/v2.Rand satisfies this interface. Tests inject seeded or scripted
// implementations to make retries and failures deterministic.
type Random interface {
	// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// AssignmentStrategy resolves a giver → recipient assignment for a snapshot.
//
// Strategies implement different resolution algorithms:
//   - BasketDraw: Randomized name drawing with bounded retries
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Never mutate the snapshot
//   - Return either a complete, valid Assignment or an error (no partial results)
//   - Use rng as the only source of randomness
type AssignmentStrategy interface {
	// Assign calculates a complete assignment for the snapshot.
	//
	// Parameters:
	//   - snapshot: Participants and exclusion constraints
	//   - rng: Random source used for all draws
	//
	// Returns:
	//   - Assignment: Complete assignment on success
	//   - error: ErrInsufficientParticipants, ErrResolutionFailed, or a constraint error
	Assign(snapshot Snapshot, rng Random) (Assignment, error)
}
