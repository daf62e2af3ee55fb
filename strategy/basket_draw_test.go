package strategy

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	santatest "github.com/arloliu/santa/testing"
	"github.com/arloliu/santa/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolverMetrics struct {
	mu          sync.Mutex
	succeeded   int
	conflicts   int
	resolutions map[string]int
	attempts    []int
}

func newFakeResolverMetrics() *fakeResolverMetrics {
	return &fakeResolverMetrics{resolutions: make(map[string]int)}
}

func (f *fakeResolverMetrics) RecordAttempt(success bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if success {
		f.succeeded++
	} else {
		f.conflicts++
	}
}

func (f *fakeResolverMetrics) RecordResolution(result string, attempts int, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolutions[result]++
	f.attempts = append(f.attempts, attempts)
}

var _ types.ResolverMetrics = (*fakeResolverMetrics)(nil)

// debugCapture keeps the debug messages of a draw.
type debugCapture struct {
	mu     sync.Mutex
	debugs []string
}

func (c *debugCapture) Debug(msg string, _ ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debugs = append(c.debugs, msg)
}

func (c *debugCapture) Info(string, ...any)  {}
func (c *debugCapture) Warn(string, ...any)  {}
func (c *debugCapture) Error(string, ...any) {}
func (c *debugCapture) Fatal(string, ...any) {}

func (c *debugCapture) count(msg string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.debugs {
		if d == msg {
			n++
		}
	}

	return n
}

var _ types.Logger = (*debugCapture)(nil)

func participants(names ...string) []types.Participant {
	out := make([]types.Participant, len(names))
	for i, n := range names {
		out[i] = types.Participant(n)
	}

	return out
}

func mutual(a, b string) types.Constraint {
	return types.Constraint{Kind: types.ConstraintMutual, A: types.Participant(a), B: types.Participant(b)}
}

func directed(from, to string) types.Constraint {
	return types.Constraint{Kind: types.ConstraintDirected, A: types.Participant(from), B: types.Participant(to)}
}

func TestNewBasketDraw(t *testing.T) {
	t.Run("uses the default retry budget", func(t *testing.T) {
		require.Equal(t, DefaultMaxAttempts, NewBasketDraw().MaxAttempts())
		require.Equal(t, 1000, DefaultMaxAttempts)
	})

	t.Run("accepts a custom retry budget", func(t *testing.T) {
		require.Equal(t, 5, NewBasketDraw(WithMaxAttempts(5)).MaxAttempts())
	})

	t.Run("ignores a non-positive retry budget", func(t *testing.T) {
		require.Equal(t, DefaultMaxAttempts, NewBasketDraw(WithMaxAttempts(0)).MaxAttempts())
		require.Equal(t, DefaultMaxAttempts, NewBasketDraw(WithMaxAttempts(-3)).MaxAttempts())
	})

	t.Run("ignores nil collaborators", func(t *testing.T) {
		bd := NewBasketDraw(WithTracer(nil), WithLogger(nil), WithMetrics(nil))
		_, err := bd.Assign(types.Snapshot{Participants: participants("A", "B")}, santatest.NewSeededRandom(1))
		require.NoError(t, err)
	})
}

func TestBasketDraw_Boundaries(t *testing.T) {
	t.Run("rejects an empty group", func(t *testing.T) {
		_, err := NewBasketDraw().Assign(types.Snapshot{}, santatest.NewSeededRandom(1))
		require.ErrorIs(t, err, types.ErrInsufficientParticipants)
	})

	t.Run("rejects a single participant without drawing", func(t *testing.T) {
		rng := santatest.NewScriptedRandom()
		_, err := NewBasketDraw().Assign(types.Snapshot{Participants: participants("A")}, rng)
		require.ErrorIs(t, err, types.ErrInsufficientParticipants)
		require.Zero(t, rng.ShuffleCalls())
		require.Zero(t, rng.PickCalls())
	})

	t.Run("two participants always swap", func(t *testing.T) {
		snap := types.Snapshot{Participants: participants("A", "B")}
		for seed := range uint64(50) {
			a, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(seed))
			require.NoError(t, err)
			require.Equal(t, 1, a.Attempt)

			m := a.Map()
			require.Equal(t, types.Participant("B"), m["A"])
			require.Equal(t, types.Participant("A"), m["B"])
		}
	})

	t.Run("two mutually excluded participants fail after the full budget", func(t *testing.T) {
		rec := santatest.NewRecorder()
		rng := santatest.NewScriptedRandom()
		bd := NewBasketDraw(WithMaxAttempts(7), WithTracer(rec.Tracer()))

		_, err := bd.Assign(types.Snapshot{
			Participants: participants("A", "B"),
			Constraints:  []types.Constraint{mutual("A", "B")},
		}, rng)

		require.ErrorIs(t, err, types.ErrResolutionFailed)
		require.Contains(t, err.Error(), "7 attempts")
		require.Equal(t, 7, rec.Attempts())
		require.Len(t, rec.Failures(), 7)
		require.Empty(t, rec.Resolved())
		require.Equal(t, 7, rng.ShuffleCalls(), "giver order is reshuffled every attempt")
	})

	t.Run("one directed exclusion between two participants is unsolvable", func(t *testing.T) {
		_, err := NewBasketDraw(WithMaxAttempts(20)).Assign(types.Snapshot{
			Participants: participants("A", "B"),
			Constraints:  []types.Constraint{directed("A", "B")},
		}, santatest.NewSeededRandom(3))
		require.ErrorIs(t, err, types.ErrResolutionFailed)
	})

	t.Run("fully excluded triangle fails", func(t *testing.T) {
		logs := &debugCapture{}
		_, err := NewBasketDraw(WithMaxAttempts(50), WithLogger(logs)).Assign(types.Snapshot{
			Participants: participants("A", "B", "C"),
			Constraints:  []types.Constraint{mutual("A", "B"), mutual("B", "C"), mutual("A", "C")},
		}, santatest.NewSeededRandom(9))
		require.ErrorIs(t, err, types.ErrResolutionFailed)
		require.Equal(t, 3, logs.count("giver has no permitted recipient"))
		require.Equal(t, 50, logs.count("attempt started"), "blocked givers do not shorten the budget")
	})

	t.Run("givers with options are not reported", func(t *testing.T) {
		logs := &debugCapture{}
		_, err := NewBasketDraw(WithLogger(logs)).Assign(types.Snapshot{
			Participants: participants("A", "B", "C"),
			Constraints:  []types.Constraint{directed("A", "B")},
		}, santatest.NewSeededRandom(4))
		require.NoError(t, err)
		require.Zero(t, logs.count("giver has no permitted recipient"))
	})
}

func TestBasketDraw_ForcedRecipient(t *testing.T) {
	// A may give to neither B (mutual) nor C (directed), so D is the only option.
	snap := types.Snapshot{
		Participants: participants("A", "B", "C", "D"),
		Constraints:  []types.Constraint{mutual("A", "B"), directed("A", "C")},
	}

	for seed := range uint64(200) {
		a, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(seed))
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, snap.Validate(a), "seed %d", seed)

		recipient, ok := a.RecipientOf("A")
		require.True(t, ok)
		require.Equal(t, types.Participant("D"), recipient, "seed %d", seed)
	}
}

func TestBasketDraw_Properties(t *testing.T) {
	snapshots := map[string]types.Snapshot{
		"unconstrained": {
			Participants: participants("A", "B", "C", "D", "E", "F", "G"),
		},
		"couples": {
			Participants: participants("Sheldon", "Amy", "Leonard", "Penny", "Howard", "Bernadette", "Rajesh"),
			Constraints: []types.Constraint{
				mutual("Sheldon", "Amy"),
				mutual("Leonard", "Penny"),
				mutual("Howard", "Bernadette"),
				directed("Rajesh", "Howard"),
			},
		},
		"directed chain": {
			Participants: participants("A", "B", "C", "D", "E"),
			Constraints:  []types.Constraint{directed("A", "B"), directed("B", "C"), directed("C", "D"), directed("D", "E")},
		},
	}

	for name, snap := range snapshots {
		t.Run(name, func(t *testing.T) {
			for seed := range uint64(100) {
				a, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(seed))
				require.NoError(t, err, "seed %d", seed)
				require.NoError(t, snap.Validate(a), "seed %d", seed)
				require.GreaterOrEqual(t, a.Attempt, 1)
				require.LessOrEqual(t, a.Attempt, DefaultMaxAttempts)
			}
		})
	}
}

func TestBasketDraw_ScriptedRetry(t *testing.T) {
	// Attempt 1: A->B, B->A, then C faces an empty basket.
	// Attempt 2: A->C, B->A, C->B.
	rng := santatest.NewScriptedRandom().WithPicks(0, 0, 1, 0, 0)
	rec := santatest.NewRecorder()
	snap := types.Snapshot{Participants: participants("A", "B", "C")}

	a, err := NewBasketDraw(WithTracer(rec.Tracer())).Assign(snap, rng)
	require.NoError(t, err)

	require.Equal(t, 2, a.Attempt)
	require.Equal(t, []types.Pair{
		{Giver: "A", Recipient: "C"},
		{Giver: "B", Recipient: "A"},
		{Giver: "C", Recipient: "B"},
	}, a.Pairs)

	require.Equal(t, 2, rec.Attempts())
	require.Equal(t, []types.Participant{"C"}, rec.Failures())
	require.Len(t, rec.Resolved(), 1)
	require.Equal(t, a, rec.Resolved()[0])

	draws := rec.Draws()
	require.Len(t, draws, 6)
	assert.Equal(t, participants("B", "C"), draws[0].Candidates)
	assert.Equal(t, participants("A", "C"), draws[1].Candidates)
	assert.Empty(t, draws[2].Candidates)
	assert.Equal(t, 2, draws[3].Attempt)
	assert.Equal(t, participants("B"), draws[5].Candidates)

	require.Equal(t, []types.Pair{
		{Giver: "A", Recipient: "B"},
		{Giver: "B", Recipient: "A"},
		{Giver: "A", Recipient: "C"},
		{Giver: "B", Recipient: "A"},
		{Giver: "C", Recipient: "B"},
	}, rec.Picks())
}

func TestBasketDraw_GiverOrder(t *testing.T) {
	rng := santatest.NewScriptedRandom().WithShuffle(2, 0, 1)
	rec := santatest.NewRecorder()
	snap := types.Snapshot{Participants: participants("A", "B", "C")}

	a, err := NewBasketDraw(WithTracer(rec.Tracer())).Assign(snap, rng)
	require.NoError(t, err)

	// C draws first from [A B] and takes A; A takes B; B takes C.
	require.Equal(t, [][]types.Participant{participants("C", "A", "B")}, rec.Orders())
	require.Equal(t, []types.Pair{
		{Giver: "C", Recipient: "A"},
		{Giver: "A", Recipient: "B"},
		{Giver: "B", Recipient: "C"},
	}, a.Pairs)
}

func TestBasketDraw_InvalidSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap types.Snapshot
		want error
	}{
		{
			name: "duplicate participant",
			snap: types.Snapshot{Participants: participants("A", "B", "A")},
			want: types.ErrDuplicateParticipant,
		},
		{
			name: "constraint on unknown participant",
			snap: types.Snapshot{Participants: participants("A", "B"), Constraints: []types.Constraint{mutual("A", "Z")}},
			want: types.ErrUnknownParticipant,
		},
		{
			name: "reflexive constraint",
			snap: types.Snapshot{Participants: participants("A", "B"), Constraints: []types.Constraint{directed("A", "A")}},
			want: types.ErrInvalidConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFakeResolverMetrics()
			_, err := NewBasketDraw(WithMetrics(m)).Assign(tt.snap, santatest.NewSeededRandom(1))
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, 1, m.resolutions[ResultRejected])
		})
	}
}

func TestBasketDraw_Metrics(t *testing.T) {
	t.Run("records attempts and success", func(t *testing.T) {
		m := newFakeResolverMetrics()
		rng := santatest.NewScriptedRandom().WithPicks(0, 0, 1, 0, 0)

		_, err := NewBasketDraw(WithMetrics(m)).Assign(types.Snapshot{Participants: participants("A", "B", "C")}, rng)
		require.NoError(t, err)

		require.Equal(t, 1, m.succeeded)
		require.Equal(t, 1, m.conflicts)
		require.Equal(t, 1, m.resolutions[ResultSuccess])
		require.Equal(t, []int{2}, m.attempts)
	})

	t.Run("records exhaustion", func(t *testing.T) {
		m := newFakeResolverMetrics()
		_, err := NewBasketDraw(WithMaxAttempts(4), WithMetrics(m)).Assign(types.Snapshot{
			Participants: participants("A", "B"),
			Constraints:  []types.Constraint{mutual("A", "B")},
		}, santatest.NewSeededRandom(1))
		require.ErrorIs(t, err, types.ErrResolutionFailed)

		require.Zero(t, m.succeeded)
		require.Equal(t, 4, m.conflicts)
		require.Equal(t, 1, m.resolutions[ResultExhausted])
		require.Equal(t, []int{4}, m.attempts)
	})

	t.Run("records rejection", func(t *testing.T) {
		m := newFakeResolverMetrics()
		_, err := NewBasketDraw(WithMetrics(m)).Assign(types.Snapshot{Participants: participants("A")}, santatest.NewSeededRandom(1))
		require.True(t, errors.Is(err, types.ErrInsufficientParticipants))
		require.Equal(t, 1, m.resolutions[ResultRejected])
	})
}

func TestBasketDraw_Reproducible(t *testing.T) {
	snap := types.Snapshot{
		Participants: participants("A", "B", "C", "D", "E", "F"),
		Constraints:  []types.Constraint{mutual("A", "B"), directed("C", "D")},
	}

	for seed := range uint64(20) {
		first, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(seed))
		require.NoError(t, err)
		second, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(seed))
		require.NoError(t, err)
		require.Equal(t, first, second, "seed %d", seed)
	}
}

func TestBasketDraw_DoesNotMutateSnapshot(t *testing.T) {
	snap := types.Snapshot{
		Participants: participants("A", "B", "C", "D"),
		Constraints:  []types.Constraint{mutual("A", "B")},
	}
	before := fmt.Sprint(snap)

	_, err := NewBasketDraw().Assign(snap, santatest.NewSeededRandom(5))
	require.NoError(t, err)
	require.Equal(t, before, fmt.Sprint(snap))
}

func BenchmarkBasketDraw(b *testing.B) {
	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("p%02d", i)
	}
	snap := types.Snapshot{Participants: participants(names...)}
	for i := 0; i+1 < len(names); i += 2 {
		snap.Constraints = append(snap.Constraints, mutual(names[i], names[i+1]))
	}

	bd := NewBasketDraw()
	rng := santatest.NewSeededRandom(1)

	for b.Loop() {
		if _, err := bd.Assign(snap, rng); err != nil {
			b.Fatal(err)
		}
	}
}
