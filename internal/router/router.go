// Package router resolves accumulated keystroke tokens to registered
// plugins.
//
// The router is an explicit two-state machine (idle, collecting) over
// the pending token sequence, with a deadline attached to the
// collecting state. Each arriving token either resolves the sequence to
// a plugin, extends it, or abandons it. Unmatched input is not an
// error; it is silently absorbed.
//
// Matching rule: an exact pattern match dispatches immediately, even
// when a longer registered pattern extends the current sequence. A
// longer pattern is therefore reachable only when no shorter registered
// pattern is an exact match for its proper prefixes.
package router

import (
	"sync"
	"time"

	"github.com/dshills/vimkit/internal/plugin"
)

// State is the router's sequence-collection state.
type State uint8

const (
	// StateIdle means no keystrokes are pending.
	StateIdle State = iota

	// StateCollecting means a partial sequence is pending, with a
	// deadline attached.
	StateCollecting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	}
	return "unknown"
}

const escapeToken = "<Esc>"

// DispatchFunc receives a resolved plugin with the pattern that fired
// and the accumulated repeat count (0 when none was typed).
type DispatchFunc func(p plugin.Plugin, pattern string, count int)

// CountGate reports whether repeat counts accumulate right now
// (typically: only in normal and visual modes).
type CountGate func() bool

// Router accumulates keystroke tokens and resolves them against the
// registry's pattern index.
type Router struct {
	mu       sync.Mutex
	registry *plugin.Registry
	timeout  time.Duration
	dispatch DispatchFunc
	gate     CountGate

	state   State
	pending string
	count   int
	timer   *time.Timer

	// gen invalidates deadline callbacks from earlier pending
	// sequences. A fired timer blocked on the mutex must not clear
	// state armed after it.
	gen uint64
}

// New creates a router over the registry. A timeout of zero disables
// the pending-sequence deadline.
func New(registry *plugin.Registry, timeout time.Duration) *Router {
	return &Router{
		registry: registry,
		timeout:  timeout,
	}
}

// SetDispatch sets the callback invoked when a sequence resolves.
func (r *Router) SetDispatch(fn DispatchFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatch = fn
}

// SetCountGate sets the repeat-count gate. A nil gate allows counts.
func (r *Router) SetCountGate(fn CountGate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gate = fn
}

// Handle processes one keystroke token.
func (r *Router) Handle(token string) {
	r.mu.Lock()

	// Escape abandons a pending sequence or count. A bare escape falls
	// through so that plugins registered on <Esc> still fire.
	if token == escapeToken && (r.pending != "" || r.count > 0) {
		r.resetLocked()
		r.mu.Unlock()
		return
	}

	// Leading digits accumulate a repeat count. A lone "0" does not
	// start a count, leaving the pattern free for line-start.
	if r.pending == "" && r.countAllowedLocked() {
		if d, ok := digit(token); ok && !(d == 0 && r.count == 0) {
			r.count = r.count*10 + d
			r.mu.Unlock()
			return
		}
	}

	p, pattern, count := r.stepLocked(token)
	dispatch := r.dispatch
	r.mu.Unlock()

	if p != nil && dispatch != nil {
		dispatch(p, pattern, count)
	}
}

// stepLocked advances the state machine by one token and returns a
// resolved plugin, if any.
func (r *Router) stepLocked(token string) (plugin.Plugin, string, int) {
	seq := r.pending + token

	if p, ok := r.registry.FindByPattern(seq); ok {
		count := r.count
		r.resetLocked()
		return p, seq, count
	}

	if r.registry.HasPrefix(seq) {
		r.pending = seq
		r.state = StateCollecting
		r.armTimerLocked()
		return nil, "", 0
	}

	// Abandoned. Retry the breaking token on its own so that e.g. "gx"
	// followed by a plain motion still moves.
	wasCollecting := r.pending != ""
	r.resetLocked()

	if wasCollecting {
		if p, ok := r.registry.FindByPattern(token); ok {
			return p, token, 0
		}
		if r.registry.HasPrefix(token) {
			r.pending = token
			r.state = StateCollecting
			r.armTimerLocked()
		}
	}
	return nil, "", 0
}

// FindPlugin resolves seq using prefix-based lookup: the longest
// registered pattern that is a prefix of (or equal to) seq wins, so an
// exact-length match always takes precedence over shorter prefixes.
func (r *Router) FindPlugin(seq string) (plugin.Plugin, string, bool) {
	for l := len(seq); l > 0; l-- {
		if p, ok := r.registry.FindByPattern(seq[:l]); ok {
			return p, seq[:l], true
		}
	}
	return nil, "", false
}

// MatchPattern reports whether seq resolves to a registered pattern
// under the prefix-based lookup rule.
func (r *Router) MatchPattern(seq string) bool {
	_, _, ok := r.FindPlugin(seq)
	return ok
}

// Pending returns the pending token sequence.
func (r *Router) Pending() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// PendingCount returns the accumulated repeat count (0 when none).
func (r *Router) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// CurrentState returns the router's sequence-collection state.
func (r *Router) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reset abandons any pending sequence and count.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

// Flush abandons the pending sequence now. Exact matches fire as they
// arrive, so an expired sequence can only be abandoned.
func (r *Router) Flush() {
	r.Reset()
}

// expire is the deadline callback. It abandons the pending sequence
// only when gen still matches the arming generation, so a callback
// that fired before Stop could take effect cannot clear state armed
// afterwards.
func (r *Router) expire(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		r.resetLocked()
	}
}

func (r *Router) resetLocked() {
	r.pending = ""
	r.count = 0
	r.state = StateIdle
	r.gen++
	r.stopTimerLocked()
}

func (r *Router) armTimerLocked() {
	r.stopTimerLocked()
	r.gen++
	if r.timeout > 0 {
		gen := r.gen
		r.timer = time.AfterFunc(r.timeout, func() { r.expire(gen) })
	}
}

func (r *Router) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Router) countAllowedLocked() bool {
	if r.gate == nil {
		return true
	}
	return r.gate()
}

// digit parses a single-character numeric token.
func digit(token string) (int, bool) {
	if len(token) != 1 || token[0] < '0' || token[0] > '9' {
		return 0, false
	}
	return int(token[0] - '0'), true
}
