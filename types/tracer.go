package types

// Tracer receives the step-by-step decisions of a basket draw.
//
// All callbacks are optional and invoked synchronously on the goroutine
// running the resolution, so they must return quickly. They exist to support
// debugging and narrative front-ends ("Sheldon draws from [Leonard Penny]...").
//
// Callbacks must not retain the slices they receive; the resolver reuses them
// between steps.
//
// Example:
//
//	tracer := &santa.Tracer{
//	    OnDraw: func(attempt int, giver santa.Participant, candidates []santa.Participant) {
//	        fmt.Printf("#%d %s draws from %v\n", attempt, giver, candidates)
//	    },
//	}
//	group, _ := santa.NewGroup(nil, santa.WithTracer(tracer))
type Tracer struct {
	// OnAttemptStarted is called at the start of each attempt with the giver order.
	OnAttemptStarted func(attempt int, order []Participant)

	// OnDraw is called before a giver picks, with the candidates left for them.
	OnDraw func(attempt int, giver Participant, candidates []Participant)

	// OnPick is called after a giver picked a recipient.
	OnPick func(attempt int, giver, recipient Participant)

	// OnAttemptFailed is called when a giver is left without candidates and
	// the attempt is discarded.
	OnAttemptFailed func(attempt int, giver Participant)

	// OnResolved is called once with the winning assignment.
	OnResolved func(assignment Assignment)
}
