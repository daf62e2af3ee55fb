// Package hooks provides default Tracer implementations.
package hooks

import "github.com/arloliu/santa/types"

// NopTracer implements Tracer callbacks that do nothing.
//
// This is the default implementation used when no custom tracer is provided,
// eliminating the need for nil checks in the resolver hot loop.
type NopTracer struct{}

// Compile-time assertions that NopTracer implements tracer callbacks.
var (
	_ func(int, []types.Participant)                    = (*NopTracer)(nil).OnAttemptStarted
	_ func(int, types.Participant, []types.Participant) = (*NopTracer)(nil).OnDraw
	_ func(int, types.Participant, types.Participant)   = (*NopTracer)(nil).OnPick
	_ func(int, types.Participant)                      = (*NopTracer)(nil).OnAttemptFailed
	_ func(types.Assignment)                            = (*NopTracer)(nil).OnResolved
)

// NewNop creates a tracer whose callbacks are all no-ops.
func NewNop() types.Tracer {
	h := &NopTracer{}
	return types.Tracer{
		OnAttemptStarted: h.OnAttemptStarted,
		OnDraw:           h.OnDraw,
		OnPick:           h.OnPick,
		OnAttemptFailed:  h.OnAttemptFailed,
		OnResolved:       h.OnResolved,
	}
}

// Normalize returns a copy of t with every nil callback replaced by a no-op.
//
// Parameters:
//   - t: User supplied tracer (may be nil)
//
// Returns:
//   - types.Tracer: Tracer safe to call without nil checks
func Normalize(t *types.Tracer) types.Tracer {
	out := NewNop()
	if t == nil {
		return out
	}
	if t.OnAttemptStarted != nil {
		out.OnAttemptStarted = t.OnAttemptStarted
	}
	if t.OnDraw != nil {
		out.OnDraw = t.OnDraw
	}
	if t.OnPick != nil {
		out.OnPick = t.OnPick
	}
	if t.OnAttemptFailed != nil {
		out.OnAttemptFailed = t.OnAttemptFailed
	}
	if t.OnResolved != nil {
		out.OnResolved = t.OnResolved
	}

	return out
}

// OnAttemptStarted is a no-op implementation.
func (h *NopTracer) OnAttemptStarted(_ int, _ []types.Participant) {}

// OnDraw is a no-op implementation.
func (h *NopTracer) OnDraw(_ int, _ types.Participant, _ []types.Participant) {}

// OnPick is a no-op implementation.
func (h *NopTracer) OnPick(_ int, _, _ types.Participant) {}

// OnAttemptFailed is a no-op implementation.
func (h *NopTracer) OnAttemptFailed(_ int, _ types.Participant) {}

// OnResolved is a no-op implementation.
func (h *NopTracer) OnResolved(_ types.Assignment) {}
