package strategy

import (
	"fmt"
	"time"

	"github.com/arloliu/santa/internal/hooks"
	"github.com/arloliu/santa/internal/logger"
	"github.com/arloliu/santa/internal/matrix"
	"github.com/arloliu/santa/internal/metrics"
	"github.com/arloliu/santa/types"
)

// DefaultMaxAttempts is the number of draws tried before giving up.
const DefaultMaxAttempts = 1000

// Resolution results reported to ResolverMetrics.
const (
	ResultSuccess   = "success"
	ResultExhausted = "exhausted"
	ResultRejected  = "rejected"
)

// BasketDraw resolves assignments by repeated randomized name drawing.
type BasketDraw struct {
	maxAttempts int
	tracer      types.Tracer
	logger      types.Logger
	metrics     types.ResolverMetrics
}

var _ types.AssignmentStrategy = (*BasketDraw)(nil)

// BasketDrawOption configures a BasketDraw strategy.
type BasketDrawOption func(*BasketDraw)

// NewBasketDraw creates a new basket draw strategy.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts, WithTracer, WithLogger, WithMetrics)
//
// Returns:
//   - *BasketDraw: Initialized strategy
//
// Example:
//
//	draw := strategy.NewBasketDraw(strategy.WithMaxAttempts(5000))
//	group, _ := santa.NewGroup(nil, santa.WithStrategy(draw))
func NewBasketDraw(opts ...BasketDrawOption) *BasketDraw {
	bd := &BasketDraw{
		maxAttempts: DefaultMaxAttempts,
		tracer:      hooks.NewNop(),
		logger:      logger.NewNop(),
		metrics:     metrics.NewNop(),
	}

	for _, opt := range opts {
		opt(bd)
	}

	return bd
}

// WithMaxAttempts sets the retry budget.
//
// Values below 1 are ignored and the default (1000) is kept.
func WithMaxAttempts(n int) BasketDrawOption {
	return func(bd *BasketDraw) {
		if n >= 1 {
			bd.maxAttempts = n
		}
	}
}

// WithTracer sets the sink receiving every draw decision.
func WithTracer(t *types.Tracer) BasketDrawOption {
	return func(bd *BasketDraw) {
		bd.tracer = hooks.Normalize(t)
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l types.Logger) BasketDrawOption {
	return func(bd *BasketDraw) {
		if l != nil {
			bd.logger = l
		}
	}
}

// WithMetrics sets the resolver metrics collector.
func WithMetrics(m types.ResolverMetrics) BasketDrawOption {
	return func(bd *BasketDraw) {
		if m != nil {
			bd.metrics = m
		}
	}
}

// MaxAttempts returns the configured retry budget.
func (bd *BasketDraw) MaxAttempts() int {
	return bd.maxAttempts
}

// Assign resolves an assignment by drawing names from a basket.
//
// The algorithm:
//  1. Reject snapshots with fewer than two participants
//  2. Build the giver × recipient permission matrix from the constraints
//  3. For each attempt, shuffle the giver order, then let every giver draw
//     uniformly from the names still in the basket that they may give to
//  4. A giver facing an empty basket aborts the attempt; the next attempt
//     starts over with a full basket and a fresh giver order
//  5. The first attempt in which every giver drew a name wins
//
// Parameters:
//   - snapshot: Participants and constraints (not modified)
//   - rng: Random source for shuffles and picks
//
// Returns:
//   - types.Assignment: Complete assignment in draw order
//   - error: ErrInsufficientParticipants, ErrResolutionFailed, or a constraint error
func (bd *BasketDraw) Assign(snapshot types.Snapshot, rng types.Random) (types.Assignment, error) {
	start := time.Now()

	n := len(snapshot.Participants)
	if n < 2 {
		bd.metrics.RecordResolution(ResultRejected, 0, time.Since(start).Seconds())
		return types.Assignment{}, fmt.Errorf("%w: need at least 2, have %d", types.ErrInsufficientParticipants, n)
	}

	m, err := matrix.FromSnapshot(snapshot)
	if err != nil {
		bd.metrics.RecordResolution(ResultRejected, 0, time.Since(start).Seconds())
		return types.Assignment{}, err
	}

	bd.logBlockedGivers(m)

	d := newDraw(m, rng)
	for attempt := 1; attempt <= bd.maxAttempts; attempt++ {
		pairs, ok := bd.attempt(d, attempt)
		bd.metrics.RecordAttempt(ok)
		if !ok {
			continue
		}

		assignment := types.Assignment{Pairs: pairs, Attempt: attempt}
		bd.tracer.OnResolved(assignment)
		bd.logger.Debug("assignment resolved", "attempt", attempt, "participants", n)
		bd.metrics.RecordResolution(ResultSuccess, attempt, time.Since(start).Seconds())

		return assignment, nil
	}

	bd.logger.Debug("giving up", "attempts", bd.maxAttempts, "participants", n)
	bd.metrics.RecordResolution(ResultExhausted, bd.maxAttempts, time.Since(start).Seconds())

	return types.Assignment{}, &types.ResolutionError{Attempts: bd.maxAttempts}
}

// attempt runs a single basket draw. It returns false if some giver was left
// without a valid name.
func (bd *BasketDraw) attempt(d *draw, attempt int) ([]types.Pair, bool) {
	d.reset()

	order := d.orderNames()
	bd.tracer.OnAttemptStarted(attempt, order)
	bd.logger.Debug("attempt started", "attempt", attempt, "order", order)

	pairs := make([]types.Pair, 0, d.m.Size())
	for _, giver := range d.order {
		candidates := d.candidates(giver)
		giverName := d.m.Key(giver)
		names := d.names(candidates)

		bd.tracer.OnDraw(attempt, giverName, names)
		bd.logger.Debug("drawing recipient", "attempt", attempt, "giver", giverName, "candidates", names)

		if len(candidates) == 0 {
			bd.tracer.OnAttemptFailed(attempt, giverName)
			bd.logger.Debug("attempt failed, retrying", "attempt", attempt, "giver", giverName)

			return nil, false
		}

		recipient := candidates[d.rng.IntN(len(candidates))]
		d.take(recipient)
		recipientName := d.m.Key(recipient)

		bd.tracer.OnPick(attempt, giverName, recipientName)
		bd.logger.Debug("picked recipient", "attempt", attempt, "giver", giverName, "recipient", recipientName)

		pairs = append(pairs, types.Pair{Giver: giverName, Recipient: recipientName})
	}

	return pairs, true
}

// logBlockedGivers reports givers whose exclusions leave no one to draw.
// Such a draw still runs its full budget and ends in ErrResolutionFailed.
func (bd *BasketDraw) logBlockedGivers(m *matrix.Matrix) {
	for giver := range m.Size() {
		if m.Options(giver) == 0 {
			bd.logger.Debug("giver has no permitted recipient", "giver", m.Key(giver), "participants", m.Size())
		}
	}
}
