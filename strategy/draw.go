package strategy

import (
	"github.com/arloliu/santa/internal/matrix"
	"github.com/arloliu/santa/types"
)

// draw is the working set of one resolution. Buffers are reused across
// attempts; reset restores a full basket.
type draw struct {
	m   *matrix.Matrix
	rng types.Random

	order     []int  // giver indexes in draw order
	available []bool // available[i] is true while participant i is still in the basket
	cand      []int  // candidate buffer, reused per giver
	nameBuf   []types.Participant
}

func newDraw(m *matrix.Matrix, rng types.Random) *draw {
	n := m.Size()

	return &draw{
		m:         m,
		rng:       rng,
		order:     make([]int, n),
		available: make([]bool, n),
		cand:      make([]int, 0, n),
		nameBuf:   make([]types.Participant, 0, n),
	}
}

// reset refills the basket and reshuffles the giver order from insertion order.
func (d *draw) reset() {
	for i := range d.order {
		d.order[i] = i
		d.available[i] = true
	}
	d.rng.Shuffle(len(d.order), func(i, j int) {
		d.order[i], d.order[j] = d.order[j], d.order[i]
	})
}

// candidates returns the names still in the basket that giver may draw,
// in insertion order.
func (d *draw) candidates(giver int) []int {
	d.cand = d.cand[:0]
	for r, ok := range d.available {
		if ok && d.m.Allowed(giver, r) {
			d.cand = append(d.cand, r)
		}
	}

	return d.cand
}

// take removes a recipient from the basket.
func (d *draw) take(recipient int) {
	d.available[recipient] = false
}

// names maps indexes to participants using the shared name buffer.
func (d *draw) names(idx []int) []types.Participant {
	d.nameBuf = d.nameBuf[:0]
	for _, i := range idx {
		d.nameBuf = append(d.nameBuf, d.m.Key(i))
	}

	return d.nameBuf
}

// orderNames returns the current giver order as a fresh slice.
func (d *draw) orderNames() []types.Participant {
	out := make([]types.Participant, len(d.order))
	for i, g := range d.order {
		out[i] = d.m.Key(g)
	}

	return out
}
