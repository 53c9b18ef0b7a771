package plugin

import "github.com/dshills/vimkit/internal/execctx"

// ActionFunc is the concrete action a plugin performs.
type ActionFunc func(ctx *execctx.Context) error

// ValidateFunc checks that a context is valid for a plugin's action.
type ValidateFunc func(ctx *execctx.Context) bool

// Base supplies the common plugin template: enable state, mode gating,
// and context validation around a concrete action. Execute runs the
// action only when the plugin is enabled, the current mode is supported,
// and the context is valid; otherwise it is a silent no-op.
type Base struct {
	meta     Meta
	action   ActionFunc
	validate ValidateFunc
	enabled  bool
}

// NewBase creates a plugin base around the given action.
// The plugin starts enabled.
func NewBase(meta Meta, action ActionFunc) *Base {
	return &Base{
		meta:    meta,
		action:  action,
		enabled: true,
	}
}

// WithValidator sets an additional context validation check.
func (b *Base) WithValidator(v ValidateFunc) *Base {
	b.validate = v
	return b
}

// Meta implements Plugin.Meta.
func (b *Base) Meta() Meta {
	return b.meta
}

// Init implements Plugin.Init as a no-op.
func (b *Base) Init(ctx *execctx.Context) error {
	return nil
}

// Destroy implements Plugin.Destroy as a no-op.
func (b *Base) Destroy() {}

// Execute implements the execution template.
func (b *Base) Execute(ctx *execctx.Context) error {
	if !b.CanExecute(ctx) {
		return nil
	}
	return b.action(ctx)
}

// CanExecute implements Plugin.CanExecute.
func (b *Base) CanExecute(ctx *execctx.Context) bool {
	if !b.enabled || b.action == nil {
		return false
	}
	if !b.InSupportedMode(ctx) {
		return false
	}
	return b.ValidContext(ctx)
}

// InSupportedMode reports whether the context's mode is in the plugin's
// supported mode list.
func (b *Base) InSupportedMode(ctx *execctx.Context) bool {
	for _, m := range b.meta.Modes {
		if ctx.IsMode(m) {
			return true
		}
	}
	return false
}

// ValidContext runs the optional context validator.
func (b *Base) ValidContext(ctx *execctx.Context) bool {
	if ctx == nil {
		return false
	}
	if b.validate != nil {
		return b.validate(ctx)
	}
	return true
}

// ValidatePattern implements Plugin.ValidatePattern.
// The base accepts any non-empty pattern.
func (b *Base) ValidatePattern(pattern string) bool {
	return pattern != ""
}

// OnRegister implements Plugin.OnRegister as a no-op.
func (b *Base) OnRegister() {}

// OnUnregister implements Plugin.OnUnregister as a no-op.
func (b *Base) OnUnregister() {}

// Enable implements Plugin.Enable.
func (b *Base) Enable() {
	b.enabled = true
}

// Disable implements Plugin.Disable.
func (b *Base) Disable() {
	b.enabled = false
}

// Enabled implements Plugin.Enabled.
func (b *Base) Enabled() bool {
	return b.enabled
}
