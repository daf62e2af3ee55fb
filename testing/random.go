package testing

import (
	"math/rand/v2"
	"sync"

	"github.com/arloliu/santa/types"
)

// NewSeededRandom returns a reproducible random source.
//
// Two sources created with the same seed produce the same sequence, so a
// group resolved with them yields the same assignment.
func NewSeededRandom(seed uint64) types.Random {
	return rand.New(rand.NewPCG(seed, seed^0x5eed5a17a))
}

// ScriptedRandom is a Random that replays scripted values.
//
// IntN returns the scripted picks in order (reduced modulo n) and 0 once the
// script is exhausted. Shuffle applies the scripted permutations in order and
// leaves the sequence untouched once they are exhausted.
type ScriptedRandom struct {
	mu       sync.Mutex
	picks    []int
	shuffles [][]int

	pickCalls    int
	shuffleCalls int
}

var _ types.Random = (*ScriptedRandom)(nil)

// NewScriptedRandom creates a scripted random source with an empty script:
// every pick is 0 and every shuffle is the identity.
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{}
}

// WithPicks appends values returned by successive IntN calls.
func (s *ScriptedRandom) WithPicks(picks ...int) *ScriptedRandom {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.picks = append(s.picks, picks...)

	return s
}

// WithShuffle appends a permutation applied by the next unscripted Shuffle call.
//
// perm[i] is the original index that ends up at position i, so
// WithShuffle(2, 0, 1) turns [A B C] into [C A B].
func (s *ScriptedRandom) WithShuffle(perm ...int) *ScriptedRandom {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shuffles = append(s.shuffles, perm)

	return s
}

// IntN returns the next scripted pick modulo n.
func (s *ScriptedRandom) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	call := s.pickCalls
	s.pickCalls++
	if call >= len(s.picks) {
		return 0
	}

	v := s.picks[call] % n
	if v < 0 {
		v += n
	}

	return v
}

// Shuffle applies the next scripted permutation through swap.
func (s *ScriptedRandom) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	call := s.shuffleCalls
	s.shuffleCalls++
	var perm []int
	if call < len(s.shuffles) {
		perm = s.shuffles[call]
	}
	s.mu.Unlock()

	if len(perm) != n {
		return
	}

	// cur[k] is the original index currently at position k.
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	for i := range n {
		for j := i; j < n; j++ {
			if cur[j] != perm[i] {
				continue
			}
			if j != i {
				swap(i, j)
				cur[i], cur[j] = cur[j], cur[i]
			}

			break
		}
	}
}

// PickCalls returns how many times IntN was called.
func (s *ScriptedRandom) PickCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pickCalls
}

// ShuffleCalls returns how many times Shuffle was called.
func (s *ScriptedRandom) ShuffleCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shuffleCalls
}
