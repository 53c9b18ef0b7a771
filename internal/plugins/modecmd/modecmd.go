// Package modecmd implements the mode-transition plugins: entering
// insert, visual, command, and replace modes, and the Escape return to
// normal mode.
package modecmd

import (
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
)

func newTransition(name, pattern, desc, target string, from []string) plugin.Plugin {
	return plugin.NewBase(plugin.Meta{
		Name:        name,
		Version:     "1.0.0",
		Description: desc,
		Patterns:    []string{pattern},
		Modes:       from,
	}, func(ctx *execctx.Context) error {
		return ctx.SetMode(target)
	})
}

// NewInsert enters insert mode from normal mode.
func NewInsert() plugin.Plugin {
	return newTransition("mode.insert", "i", "Enter insert mode",
		mode.Insert, []string{mode.Normal})
}

// NewVisual enters visual mode from normal mode.
func NewVisual() plugin.Plugin {
	return newTransition("mode.visual", "v", "Enter visual mode",
		mode.Visual, []string{mode.Normal})
}

// NewCommand enters command-line mode from normal mode.
func NewCommand() plugin.Plugin {
	return newTransition("mode.command", ":", "Enter command mode",
		mode.Command, []string{mode.Normal})
}

// NewReplace enters replace mode from normal mode.
func NewReplace() plugin.Plugin {
	return newTransition("mode.replace", "R", "Enter replace mode",
		mode.Replace, []string{mode.Normal})
}

// NewEscape returns to normal mode from any other mode.
func NewEscape() plugin.Plugin {
	return newTransition("mode.normal", "<Esc>", "Return to normal mode",
		mode.Normal, []string{
			mode.Insert, mode.Visual, mode.Command,
			mode.Replace, mode.Select, mode.Search, mode.Normal,
		})
}

// All returns the mode-transition plugin set.
func All() []plugin.Plugin {
	return []plugin.Plugin{
		NewInsert(),
		NewVisual(),
		NewCommand(),
		NewReplace(),
		NewEscape(),
	}
}
