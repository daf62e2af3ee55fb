package santa

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/santa/internal/logger"
	"github.com/arloliu/santa/internal/metrics"
	"github.com/arloliu/santa/strategy"
	"github.com/arloliu/santa/types"
)

// constraintKey identifies a constraint independent of how a mutual pair was spelled.
type constraintKey struct {
	kind types.ConstraintKind
	a, b Participant
}

func keyOf(c Constraint) constraintKey {
	if c.Kind == ConstraintMutual && c.B < c.A {
		return constraintKey{kind: c.Kind, a: c.B, b: c.A}
	}

	return constraintKey{kind: c.Kind, a: c.A, b: c.B}
}

// Group is a set of participants plus the exclusions between them.
//
// Participants keep their insertion order. Constraints are validated when
// they are added, so a Group never holds a constraint that references a
// non-member. Group is safe for concurrent use; Assign never mutates it.
type Group struct {
	cfg Config

	mu           sync.RWMutex
	participants []Participant
	members      map[Participant]struct{}
	constraints  []Constraint
	seen         map[constraintKey]struct{}

	rngMu sync.Mutex
	rng   Random

	strategy AssignmentStrategy
	logger   Logger
}

// NewGroup creates an empty group.
//
// Parameters:
//   - cfg: Configuration (nil means DefaultConfig(); zero fields get defaults)
//   - opts: Optional dependencies (WithStrategy, WithRandom, WithTracer, WithLogger, WithMetrics)
//
// Returns:
//   - *Group: Initialized group
//   - error: ErrInvalidConfig if the configuration is invalid
//
// Example:
//
//	group, err := santa.NewGroup(nil)
//	if err != nil { /* handle */ }
//	_ = group.Add("Sheldon")
//	_ = group.Add("Amy")
//	_ = group.Add("Leonard")
//	_ = group.ExcludePair("Sheldon", "Amy")
//	assignment, err := group.Assign()
func NewGroup(cfg *Config, opts ...Option) (*Group, error) {
	var c Config
	if cfg == nil {
		c = DefaultConfig()
	} else {
		c = *cfg
		SetDefaults(&c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	o := groupOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}
	if o.random == nil {
		o.random = NewRandom(seedFor(&c))
	}
	if o.strategy == nil {
		o.strategy = strategy.NewBasketDraw(
			strategy.WithMaxAttempts(c.MaxAttempts),
			strategy.WithTracer(o.tracer),
			strategy.WithLogger(o.logger),
			strategy.WithMetrics(o.metrics),
		)
	}

	c.ValidateWithWarnings(o.logger)

	return &Group{
		cfg:      c,
		members:  make(map[Participant]struct{}),
		seen:     make(map[constraintKey]struct{}),
		rng:      o.random,
		strategy: o.strategy,
		logger:   o.logger,
	}, nil
}

// NewGroupFromSource creates a group populated from a roster source.
//
// Parameters:
//   - ctx: Context for loading the roster
//   - cfg: Configuration (nil means DefaultConfig())
//   - src: Roster source (required)
//   - opts: Optional dependencies
//
// Returns:
//   - *Group: Group holding the roster's participants and exclusions
//   - error: ErrRosterSourceRequired, a source error, or a constraint error
//
// Example:
//
//	group, err := santa.NewGroupFromSource(ctx, nil, source.NewFile("roster.yaml"))
func NewGroupFromSource(ctx context.Context, cfg *Config, src RosterSource, opts ...Option) (*Group, error) {
	if src == nil {
		return nil, ErrRosterSourceRequired
	}

	g, err := NewGroup(cfg, opts...)
	if err != nil {
		return nil, err
	}

	roster, err := src.LoadRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	if err := g.ApplyRoster(roster); err != nil {
		return nil, err
	}

	return g, nil
}

// Add appends a participant to the group.
//
// Parameters:
//   - p: Participant identifier (non-empty, unique within the group)
//
// Returns:
//   - error: ErrInvalidParticipant for an empty identifier, ErrDuplicateParticipant if already present
func (g *Group) Add(p Participant) error {
	if p == "" {
		return fmt.Errorf("%w: identifier must not be empty", ErrInvalidParticipant)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.members[p]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateParticipant, p)
	}

	g.members[p] = struct{}{}
	g.participants = append(g.participants, p)

	return nil
}

// ExcludePair forbids a and b from drawing each other.
//
// Adding the same pair again (in either order) is a no-op.
//
// Parameters:
//   - a, b: Distinct members of the group
//
// Returns:
//   - error: ErrInvalidConstraint if a == b, ErrUnknownParticipant if either is not a member
func (g *Group) ExcludePair(a, b Participant) error {
	return g.addConstraint(Constraint{Kind: ConstraintMutual, A: a, B: b})
}

// Exclude forbids from drawing to, without restricting the reverse direction.
//
// Adding the same exclusion again is a no-op.
//
// Parameters:
//   - from: Giver that must not draw to
//   - to: Recipient that from must not draw
//
// Returns:
//   - error: ErrInvalidConstraint if from == to, ErrUnknownParticipant if either is not a member
func (g *Group) Exclude(from, to Participant) error {
	return g.addConstraint(Constraint{Kind: ConstraintDirected, A: from, B: to})
}

func (g *Group) addConstraint(c Constraint) error {
	if c.A == c.B {
		return fmt.Errorf("%w: %s excludes itself", ErrInvalidConstraint, c)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range []Participant{c.A, c.B} {
		if _, ok := g.members[p]; !ok {
			return fmt.Errorf("%w: %q in constraint %s", ErrUnknownParticipant, p, c)
		}
	}

	key := keyOf(c)
	if _, ok := g.seen[key]; ok {
		return nil
	}

	g.seen[key] = struct{}{}
	g.constraints = append(g.constraints, c)

	return nil
}

// ApplyRoster adds every participant and exclusion of a roster.
//
// Participants are added first, then mutual and directed exclusions in
// roster order. The first error stops the application; entries applied
// before it remain in the group.
//
// Parameters:
//   - r: Roster to apply
//
// Returns:
//   - error: First error from Add, ExcludePair, or Exclude
func (g *Group) ApplyRoster(r Roster) error {
	for _, p := range r.Participants {
		if err := g.Add(p); err != nil {
			return err
		}
	}

	for _, ex := range r.MutualExclusions {
		if err := g.ExcludePair(ex.A, ex.B); err != nil {
			return err
		}
	}

	for _, ex := range r.DirectedExclusions {
		if err := g.Exclude(ex.From, ex.To); err != nil {
			return err
		}
	}

	return nil
}

// Contains reports whether p is a member of the group.
func (g *Group) Contains(p Participant) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.members[p]

	return ok
}

// Len returns the number of participants.
func (g *Group) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.participants)
}

// Participants returns a copy of the participants in insertion order.
func (g *Group) Participants() []Participant {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.participants)
}

// Constraints returns a copy of the constraints in the order they were added.
func (g *Group) Constraints() []Constraint {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.constraints)
}

// Snapshot returns an immutable copy of the group's current state.
func (g *Group) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		Participants: slices.Clone(g.participants),
		Constraints:  slices.Clone(g.constraints),
	}
}

// Config returns the effective configuration (defaults applied).
func (g *Group) Config() Config {
	return g.cfg
}

// Assign resolves a giver → recipient assignment for the current group.
//
// The group itself is not modified, so Assign may be called repeatedly; each
// call consumes randomness from the group's random source. With a fixed seed,
// the n-th call on identical groups returns identical results.
//
// Returns:
//   - Assignment: Complete assignment satisfying every exclusion
//   - error: ErrInsufficientParticipants for fewer than two participants,
//     ErrResolutionFailed if every attempt ended in a conflict
//
// Example:
//
//	assignment, err := group.Assign()
//	if errors.Is(err, santa.ErrResolutionFailed) {
//	    // constraints are too tight (or unsatisfiable)
//	}
//	for _, p := range assignment.Pairs {
//	    fmt.Printf("%s -> %s\n", p.Giver, p.Recipient)
//	}
func (g *Group) Assign() (Assignment, error) {
	snapshot := g.Snapshot()

	g.rngMu.Lock()
	assignment, err := g.strategy.Assign(snapshot, g.rng)
	g.rngMu.Unlock()

	if err != nil {
		if errors.Is(err, ErrResolutionFailed) {
			g.logger.Warn("assignment failed",
				"participants", len(snapshot.Participants),
				"constraints", len(snapshot.Constraints),
				"error", err,
			)
		}

		return Assignment{}, err
	}

	g.logger.Info("assignment resolved",
		"participants", len(snapshot.Participants),
		"constraints", len(snapshot.Constraints),
		"attempt", assignment.Attempt,
	)

	return assignment, nil
}
