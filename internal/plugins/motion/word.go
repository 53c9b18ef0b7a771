package motion

import (
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
)

// scanFunc advances a flat-text index by one token boundary.
type scanFunc func(r []rune, idx int, cls classifier) int

// newWordMotion builds a plugin that applies scan with the given
// tokenizer, count times, each step operating on the index left by the
// previous one.
func newWordMotion(name, pattern, desc string, scan scanFunc, cls classifier) plugin.Plugin {
	return plugin.NewBase(plugin.Meta{
		Name:        name,
		Version:     "1.0.0",
		Description: desc,
		Patterns:    []string{pattern},
		Modes:       []string{mode.Normal, mode.Visual},
	}, func(ctx *execctx.Context) error {
		b := ctx.Buffer()
		if b.IsEmpty() {
			return nil
		}
		r := flatten(b)
		idx := flatIndex(b, ctx.Cursor())
		for n := ctx.GetCount(); n > 0; n-- {
			next := scan(r, idx, cls)
			if next == idx {
				break
			}
			idx = next
		}
		line, col := flatPosition(b, idx)
		ctx.SetCursor(ctx.Cursor().WithLine(line).WithColumn(col))
		return nil
	})
}

// NewWordForward moves to the start of the next word.
func NewWordForward() plugin.Plugin {
	return newWordMotion("motion.word-forward", "w",
		"Move to the start of the next word", scanTokenStart, wordClass)
}

// NewWordBackward moves to the start of the previous word.
func NewWordBackward() plugin.Plugin {
	return newWordMotion("motion.word-backward", "b",
		"Move to the start of the previous word", scanTokenStartBack, wordClass)
}

// NewWordEnd moves to the end of the current or next word.
func NewWordEnd() plugin.Plugin {
	return newWordMotion("motion.word-end", "e",
		"Move to the end of the word", scanTokenEnd, wordClass)
}

// NewWordEndBackward moves to the end of the previous word.
func NewWordEndBackward() plugin.Plugin {
	return newWordMotion("motion.word-end-backward", "ge",
		"Move to the end of the previous word", scanTokenEndBack, wordClass)
}

// NewBigWordForward moves to the start of the next WORD.
func NewBigWordForward() plugin.Plugin {
	return newWordMotion("motion.bigword-forward", "W",
		"Move to the start of the next WORD", scanTokenStart, bigWordClass)
}

// NewBigWordBackward moves to the start of the previous WORD.
func NewBigWordBackward() plugin.Plugin {
	return newWordMotion("motion.bigword-backward", "B",
		"Move to the start of the previous WORD", scanTokenStartBack, bigWordClass)
}

// NewBigWordEnd moves to the end of the current or next WORD.
func NewBigWordEnd() plugin.Plugin {
	return newWordMotion("motion.bigword-end", "E",
		"Move to the end of the WORD", scanTokenEnd, bigWordClass)
}

// NewBigWordEndBackward moves back to the previous WORD. The landing
// column is the WORD's start, so from mid-token it reaches the token
// head rather than the previous token's tail.
func NewBigWordEndBackward() plugin.Plugin {
	return newWordMotion("motion.bigword-end-backward", "gE",
		"Move back to the previous WORD", scanTokenStartBack, bigWordClass)
}
