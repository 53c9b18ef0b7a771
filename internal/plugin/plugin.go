package plugin

import "github.com/dshills/vimkit/internal/execctx"

// Meta is the readonly metadata every plugin carries.
type Meta struct {
	// Name is the unique plugin identifier.
	Name string

	// Version is the plugin version string.
	Version string

	// Description documents what the plugin does.
	Description string

	// Patterns are the literal keystroke strings the plugin claims
	// (e.g. "h", "gg", "<Esc>").
	Patterns []string

	// Modes are the mode tags in which the plugin may execute.
	Modes []string
}

// Plugin is the capability interface every command implements.
type Plugin interface {
	// Meta returns the plugin's metadata.
	Meta() Meta

	// Init prepares the plugin for use with the given context.
	Init(ctx *execctx.Context) error

	// Destroy releases any resources held by the plugin.
	Destroy()

	// Execute runs the plugin's command against the shared context.
	Execute(ctx *execctx.Context) error

	// CanExecute reports whether Execute would perform the action.
	CanExecute(ctx *execctx.Context) bool

	// ValidatePattern reports whether the plugin accepts the pattern.
	ValidatePattern(pattern string) bool

	// OnRegister is invoked when the plugin is added to a registry.
	OnRegister()

	// OnUnregister is invoked when the plugin is removed from a registry.
	OnUnregister()

	// Enable allows execution.
	Enable()

	// Disable makes Execute a silent no-op.
	Disable()

	// Enabled reports the enable state.
	Enabled() bool
}
