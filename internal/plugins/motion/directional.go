package motion

import (
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
)

// newDirectional builds a single-axis stepping plugin. step scales the
// per-keystroke distance; the repeat count multiplies it further.
func newDirectional(name, pattern, desc string, deltaLine, deltaColumn, step int) plugin.Plugin {
	if step < 1 {
		step = 1
	}
	return plugin.NewBase(plugin.Meta{
		Name:        name,
		Version:     "1.0.0",
		Description: desc,
		Patterns:    []string{pattern},
		Modes:       []string{mode.Normal, mode.Visual},
	}, func(ctx *execctx.Context) error {
		n := ctx.GetCount() * step
		ctx.MoveCursor(deltaLine*n, deltaColumn*n)
		return nil
	})
}

// NewLeft moves the cursor left by step columns per keystroke.
func NewLeft(step int) plugin.Plugin {
	return newDirectional("motion.left", "h", "Move the cursor left", 0, -1, step)
}

// NewDown moves the cursor down by step lines per keystroke.
func NewDown(step int) plugin.Plugin {
	return newDirectional("motion.down", "j", "Move the cursor down", 1, 0, step)
}

// NewUp moves the cursor up by step lines per keystroke.
func NewUp(step int) plugin.Plugin {
	return newDirectional("motion.up", "k", "Move the cursor up", -1, 0, step)
}

// NewRight moves the cursor right by step columns per keystroke.
func NewRight(step int) plugin.Plugin {
	return newDirectional("motion.right", "l", "Move the cursor right", 0, 1, step)
}
