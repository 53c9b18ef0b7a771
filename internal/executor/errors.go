package executor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/vimkit/internal/plugin"
)

// ErrorEvent describes one execution-time failure.
type ErrorEvent struct {
	ID     string
	Code   plugin.Code
	Plugin string
	Err    error
	Time   time.Time
}

// ErrorListener receives dispatched error events.
type ErrorListener func(ev ErrorEvent)

// ErrorDispatcher fans execution-time errors out to per-code and
// global listeners and counts occurrences by code. A failing plugin
// never aborts the keystroke loop; its error ends up here.
type ErrorDispatcher struct {
	mu      sync.RWMutex
	byCode  map[plugin.Code][]ErrorListener
	global  []ErrorListener
	counts  map[plugin.Code]int64
	lastErr error
}

// NewErrorDispatcher creates an empty dispatcher.
func NewErrorDispatcher() *ErrorDispatcher {
	return &ErrorDispatcher{
		byCode: make(map[plugin.Code][]ErrorListener),
		counts: make(map[plugin.Code]int64),
	}
}

// OnCode registers a listener for one error code.
func (d *ErrorDispatcher) OnCode(code plugin.Code, fn ErrorListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byCode[code] = append(d.byCode[code], fn)
}

// OnAny registers a listener for every error code.
func (d *ErrorDispatcher) OnAny(fn ErrorListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.global = append(d.global, fn)
}

// Dispatch records err and notifies the matching listeners.
func (d *ErrorDispatcher) Dispatch(code plugin.Code, pluginName string, err error) {
	ev := ErrorEvent{
		ID:     uuid.NewString(),
		Code:   code,
		Plugin: pluginName,
		Err:    err,
		Time:   time.Now(),
	}

	d.mu.Lock()
	d.counts[code]++
	d.lastErr = err
	listeners := make([]ErrorListener, 0, len(d.byCode[code])+len(d.global))
	listeners = append(listeners, d.byCode[code]...)
	listeners = append(listeners, d.global...)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// Count returns how many errors carried code.
func (d *ErrorDispatcher) Count(code plugin.Code) int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.counts[code]
}

// Total returns the overall dispatched error count.
func (d *ErrorDispatcher) Total() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var total int64
	for _, n := range d.counts {
		total += n
	}
	return total
}

// LastError returns the most recently dispatched error.
func (d *ErrorDispatcher) LastError() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastErr
}
