package testing

import (
	"slices"
	"sync"

	"github.com/arloliu/santa/types"
)

// DrawEvent is one recorded OnDraw call.
type DrawEvent struct {
	Attempt    int
	Giver      types.Participant
	Candidates []types.Participant
}

// Recorder collects tracer callbacks for assertions.
type Recorder struct {
	mu       sync.Mutex
	orders   [][]types.Participant
	draws    []DrawEvent
	picks    []types.Pair
	failures []types.Participant
	resolved []types.Assignment
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Tracer returns a tracer wired to the recorder.
func (r *Recorder) Tracer() *types.Tracer {
	return &types.Tracer{
		OnAttemptStarted: func(_ int, order []types.Participant) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.orders = append(r.orders, slices.Clone(order))
		},
		OnDraw: func(attempt int, giver types.Participant, candidates []types.Participant) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.draws = append(r.draws, DrawEvent{Attempt: attempt, Giver: giver, Candidates: slices.Clone(candidates)})
		},
		OnPick: func(_ int, giver, recipient types.Participant) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.picks = append(r.picks, types.Pair{Giver: giver, Recipient: recipient})
		},
		OnAttemptFailed: func(_ int, giver types.Participant) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.failures = append(r.failures, giver)
		},
		OnResolved: func(a types.Assignment) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.resolved = append(r.resolved, a)
		},
	}
}

// Attempts returns the number of attempts started.
func (r *Recorder) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.orders)
}

// Orders returns the giver order of every attempt.
func (r *Recorder) Orders() [][]types.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.orders)
}

// Draws returns every recorded draw.
func (r *Recorder) Draws() []DrawEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.draws)
}

// Picks returns every recorded pick, across attempts.
func (r *Recorder) Picks() []types.Pair {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.picks)
}

// Failures returns the givers that aborted an attempt.
func (r *Recorder) Failures() []types.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.failures)
}

// Resolved returns every assignment reported through OnResolved.
func (r *Recorder) Resolved() []types.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.resolved)
}
