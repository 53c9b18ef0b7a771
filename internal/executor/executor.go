// Package executor owns the keystroke-processing loop: it wires the
// plugin registry, the command router, and the single live execution
// context into one session, normalizes incoming key input, and shields
// the loop from failing plugins.
package executor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/vimkit/internal/engine/state"
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/input/key"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
	"github.com/dshills/vimkit/internal/plugins/modecmd"
	"github.com/dshills/vimkit/internal/plugins/motion"
	"github.com/dshills/vimkit/internal/router"
)

// ErrNotRunning is returned when keystrokes arrive outside the
// Start/Stop window.
var ErrNotRunning = errors.New("executor is not running")

// InputCapture diverts keystroke tokens away from the command router
// while an interactive prompt (such as search input) is active.
type InputCapture interface {
	Active() bool
	HandleToken(ctx *execctx.Context, token string) error
}

// Snapshot is the per-keystroke state view handed to the rendering
// collaborator.
type Snapshot struct {
	state.Snapshot

	// PendingKeys is the partially-typed multi-key sequence, if any.
	PendingKeys string

	// SessionID identifies the executor instance.
	SessionID string
}

// Executor drives one editing session.
type Executor struct {
	id       string
	cfg      Config
	registry *plugin.Registry
	router   *router.Router
	state    *state.State
	ctx      *execctx.Context
	errs     *ErrorDispatcher
	metrics  *Metrics
	search   *motion.SearchEngine
	capture  InputCapture
	running  bool
}

// New creates an executor over the given initial buffer text.
func New(text string, cfg Config) *Executor {
	st := state.New(text)
	e := &Executor{
		id:       uuid.NewString(),
		cfg:      cfg,
		registry: plugin.NewRegistry(),
		state:    st,
		ctx:      execctx.New(st),
		errs:     NewErrorDispatcher(),
		metrics:  NewMetrics(),
		search:   motion.NewSearchEngine(),
	}
	e.capture = e.search

	e.router = router.New(e.registry, cfg.SequenceTimeout)
	e.router.SetDispatch(e.execute)
	e.router.SetCountGate(func() bool {
		return e.ctx.IsMode(mode.Normal) || e.ctx.IsMode(mode.Visual)
	})
	return e
}

// ID returns the session identifier.
func (e *Executor) ID() string {
	return e.id
}

// RegisterPlugin validates and registers p. Failures carry
// PLUGIN_REGISTRATION_FAILED and leave the registry unchanged.
func (e *Executor) RegisterPlugin(p plugin.Plugin) error {
	if err := e.registry.Register(p); err != nil {
		name := ""
		if p != nil {
			name = p.Meta().Name
		}
		if plugin.CodeOf(err) != "" {
			return err
		}
		return plugin.NewError(plugin.CodePluginRegistrationFailed, name, err)
	}
	if err := p.Init(e.ctx); err != nil {
		// Registration is all or nothing: a plugin that failed to
		// initialize must not stay dispatchable.
		_ = e.registry.Unregister(p.Meta().Name)
		return plugin.NewError(plugin.CodePluginRegistrationFailed, p.Meta().Name,
			fmt.Errorf("init: %w", err))
	}
	return nil
}

// RegisterDefaults registers the built-in motion and mode-transition
// plugin families.
func (e *Executor) RegisterDefaults() error {
	step := e.cfg.MotionStep
	if step < 1 {
		step = 1
	}
	defaults := motion.All(e.search, step)
	defaults = append(defaults, modecmd.All()...)
	for _, p := range defaults {
		if err := e.RegisterPlugin(p); err != nil {
			return err
		}
	}
	return nil
}

// ApplyKeymaps binds extra key patterns to registered plugins. The
// token form of each pattern is normalized before binding.
func (e *Executor) ApplyKeymaps(keymaps map[string]string) error {
	for pattern, name := range keymaps {
		normalized, err := normalizeSequence(pattern)
		if err != nil {
			return plugin.NewError(plugin.CodeInvalidPattern, name, err)
		}
		if err := e.registry.AddPattern(name, normalized); err != nil {
			return err
		}
	}
	return nil
}

// normalizeSequence normalizes a pattern of one or more tokens. Only
// single-token patterns and plain literal sequences need handling; a
// bracketed token is normalized as a whole.
func normalizeSequence(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "<") {
		return pattern, nil
	}
	return key.Normalize(pattern)
}

// Start begins accepting keystrokes.
func (e *Executor) Start() {
	e.running = true
}

// Stop rejects further keystrokes and abandons any pending sequence.
func (e *Executor) Stop() {
	e.running = false
	e.router.Reset()
}

// Destroy stops the session and tears down every registered plugin.
func (e *Executor) Destroy() {
	e.Stop()
	for _, name := range e.registry.Names() {
		if p, ok := e.registry.Get(name); ok {
			p.Destroy()
		}
	}
	e.registry.Clear()
}

// HandleKeystroke processes one normalized keystroke token.
// Unrecognized sequences are absorbed silently; malformed tokens are
// ignored.
func (e *Executor) HandleKeystroke(token string) error {
	if !e.running {
		return ErrNotRunning
	}
	normalized, err := key.Normalize(token)
	if err != nil {
		return nil
	}
	if e.capture != nil && e.capture.Active() {
		if err := e.capture.HandleToken(e.ctx, normalized); err != nil {
			e.errs.Dispatch(plugin.CodeExecutionFailed, "", err)
		}
		return nil
	}
	e.router.Handle(normalized)
	return nil
}

// HandleKeyEvent converts a key event to token form and processes it.
func (e *Executor) HandleKeyEvent(ev key.Event) error {
	return e.HandleKeystroke(ev.Token())
}

// HandleTcellEvent converts a terminal key event and processes it.
func (e *Executor) HandleTcellEvent(ev *tcell.EventKey) error {
	return e.HandleKeyEvent(key.FromTcell(ev))
}

// execute runs one resolved plugin invocation. Plugin errors and
// recovered panics are dispatched, never propagated, so the keystroke
// loop keeps going.
func (e *Executor) execute(p plugin.Plugin, pattern string, count int) {
	e.ctx.Count = count
	defer func() { e.ctx.Count = 0 }()

	if e.cfg.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				e.metrics.RecordPanic()
				e.errs.Dispatch(plugin.CodeExecutionFailed, p.Meta().Name,
					fmt.Errorf("panic: %v", r))
			}
		}()
	}

	start := time.Now()
	err := p.Execute(e.ctx)
	if e.cfg.EnableMetrics {
		e.metrics.Record(pattern, time.Since(start))
	}
	if err != nil {
		code := plugin.CodeOf(err)
		if code == "" {
			code = plugin.CodeExecutionFailed
		}
		e.errs.Dispatch(code, p.Meta().Name, err)
	}
}

// State returns an isolated snapshot for rendering.
func (e *Executor) State() Snapshot {
	return Snapshot{
		Snapshot:    e.state.Snapshot(),
		PendingKeys: e.router.Pending(),
		SessionID:   e.id,
	}
}

// SetMode forces the session mode.
func (e *Executor) SetMode(m string) error {
	if err := e.ctx.SetMode(m); err != nil {
		return plugin.NewError(plugin.CodeModeError, "", err)
	}
	return nil
}

// Context exposes the live execution context. Callers that hold state
// across keystrokes must Clone it first.
func (e *Executor) Context() *execctx.Context {
	return e.ctx
}

// Registry exposes the plugin registry.
func (e *Executor) Registry() *plugin.Registry {
	return e.registry
}

// Errors exposes the error dispatcher.
func (e *Executor) Errors() *ErrorDispatcher {
	return e.errs
}

// Metrics exposes the execution statistics.
func (e *Executor) Metrics() *Metrics {
	return e.metrics
}

// SetCapture replaces the input-capture collaborator.
func (e *Executor) SetCapture(c InputCapture) {
	e.capture = c
}
