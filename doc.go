// Package santa resolves Secret Santa draws under exclusion constraints.
//
// A Group holds participants and the exclusions between them. Assign draws
// names from a virtual basket, one giver at a time, and retries with a fresh
// basket when some giver is left without a valid name. The result maps every
// participant to exactly one recipient and is a derangement that honours every
// exclusion.
//
// # Quick Start
//
//	import "github.com/arloliu/santa"
//
//	group, err := santa.NewGroup(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, name := range []santa.Participant{"Sheldon", "Amy", "Leonard", "Penny", "Rajesh"} {
//	    _ = group.Add(name)
//	}
//	_ = group.ExcludePair("Sheldon", "Amy")  // couples don't draw each other
//	_ = group.Exclude("Leonard", "Penny")    // Leonard won't draw Penny, Penny may draw Leonard
//
//	assignment, err := group.Assign()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Mutual and directed exclusions, validated when they are added
//   - Bounded retries (Config.MaxAttempts, default 1000) with ErrResolutionFailed on exhaustion
//   - Injectable randomness (WithRandom, Config.Seed, Config.SeedPhrase) for reproducible draws
//   - Draw tracing (WithTracer) for debugging and narrative front-ends
//   - Rosters from YAML files (package source) and private reveal over NATS KV (package publish)
//
// # Errors
//
// Group-building errors (ErrInvalidParticipant, ErrDuplicateParticipant,
// ErrUnknownParticipant, ErrInvalidConstraint) are returned synchronously and
// leave the group unchanged. Assign returns ErrInsufficientParticipants for
// groups with fewer than two members and ErrResolutionFailed when the retry
// budget is exhausted. Note that the draw is randomized: exhaustion does not
// prove that no valid assignment exists.
//
// # Advanced Usage
//
// Custom strategy with tracing:
//
//	import (
//	    "github.com/arloliu/santa"
//	    "github.com/arloliu/santa/strategy"
//	)
//
//	tracer := &santa.Tracer{
//	    OnAttemptFailed: func(attempt int, giver santa.Participant) {
//	        log.Printf("attempt %d: %s has nobody left to draw", attempt, giver)
//	    },
//	}
//
//	draw := strategy.NewBasketDraw(
//	    strategy.WithMaxAttempts(5000),
//	    strategy.WithTracer(tracer),
//	)
//	group, err := santa.NewGroup(nil, santa.WithStrategy(draw))
//
// See the examples/ directory for complete working examples.
package santa
