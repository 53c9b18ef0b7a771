package motion

import (
	"unicode"

	"github.com/dshills/vimkit/internal/engine/buffer"
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
)

func newAnchor(name, pattern, desc string, action plugin.ActionFunc) plugin.Plugin {
	return plugin.NewBase(plugin.Meta{
		Name:        name,
		Version:     "1.0.0",
		Description: desc,
		Patterns:    []string{pattern},
		Modes:       []string{mode.Normal, mode.Visual},
	}, action)
}

// firstNonBlank returns the column of the first non-whitespace rune on
// line n, or 0 when the line is blank.
func firstNonBlank(b *buffer.Buffer, n int) int {
	text, ok := b.Line(n)
	if !ok {
		return 0
	}
	for i, r := range []rune(text) {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return 0
}

// NewLineStart moves to column 0.
func NewLineStart() plugin.Plugin {
	return newAnchor("motion.line-start", "0", "Move to the first column of the line",
		func(ctx *execctx.Context) error {
			ctx.SetCursor(ctx.Cursor().WithColumn(0))
			return nil
		})
}

// NewFirstNonBlank moves to the first non-whitespace column of the
// line, or column 0 on a blank line.
func NewFirstNonBlank() plugin.Plugin {
	return newAnchor("motion.first-non-blank", "^", "Move to the first non-blank column",
		func(ctx *execctx.Context) error {
			p := ctx.Cursor()
			ctx.SetCursor(p.WithColumn(firstNonBlank(ctx.Buffer(), p.Line)))
			return nil
		})
}

// NewLineEnd moves to the last character of the line.
func NewLineEnd() plugin.Plugin {
	return newAnchor("motion.line-end", "$", "Move to the last column of the line",
		func(ctx *execctx.Context) error {
			p := ctx.Cursor()
			col := ctx.Buffer().LineLen(p.Line) - 1
			if col < 0 {
				col = 0
			}
			ctx.SetCursor(p.WithColumn(col))
			return nil
		})
}

// gotoLine moves to the target line's first non-blank column. An
// explicit repeat count selects a 1-based line number instead of the
// default target.
func gotoLine(ctx *execctx.Context, defaultLine int) {
	b := ctx.Buffer()
	if b.IsEmpty() {
		return
	}
	line := defaultLine
	if ctx.Count > 0 {
		line = ctx.Count - 1
	}
	if line < 0 {
		line = 0
	}
	if max := b.LineCount() - 1; line > max {
		line = max
	}
	ctx.SetCursor(ctx.Cursor().WithLine(line).WithColumn(firstNonBlank(b, line)))
}

// NewBufferTop moves to the first line of the buffer.
func NewBufferTop() plugin.Plugin {
	return newAnchor("motion.buffer-top", "gg", "Move to the first line",
		func(ctx *execctx.Context) error {
			gotoLine(ctx, 0)
			return nil
		})
}

// NewBufferBottom moves to the last line of the buffer.
func NewBufferBottom() plugin.Plugin {
	return newAnchor("motion.buffer-bottom", "G", "Move to the last line",
		func(ctx *execctx.Context) error {
			gotoLine(ctx, ctx.Buffer().LineCount()-1)
			return nil
		})
}

// bracket pairs recognized by the match motion.
var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	')': '(', ']': '[', '}': '{',
}

func isOpenBracket(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// matchBracket finds the partner of the bracket at or after idx,
// counting nesting depth. Returns -1 when no bracket is found on the
// rest of the line or the pair is unbalanced.
func matchBracket(r []rune, idx int) int {
	// Scan forward on the current line for the first bracket.
	for idx < len(r) && r[idx] != '\n' {
		if _, ok := bracketPairs[r[idx]]; ok {
			break
		}
		idx++
	}
	if idx >= len(r) || r[idx] == '\n' {
		return -1
	}

	bracket := r[idx]
	partner := bracketPairs[bracket]
	depth := 0
	if isOpenBracket(bracket) {
		for i := idx; i < len(r); i++ {
			switch r[i] {
			case bracket:
				depth++
			case partner:
				depth--
				if depth == 0 {
					return i
				}
			}
		}
		return -1
	}
	for i := idx; i >= 0; i-- {
		switch r[i] {
		case bracket:
			depth++
		case partner:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// NewMatchBracket jumps to the bracket matching the first bracket at
// or after the cursor on the current line. Unmatched input is a no-op.
func NewMatchBracket() plugin.Plugin {
	return newAnchor("motion.match-bracket", "%", "Jump to the matching bracket",
		func(ctx *execctx.Context) error {
			b := ctx.Buffer()
			if b.IsEmpty() {
				return nil
			}
			r := flatten(b)
			target := matchBracket(r, flatIndex(b, ctx.Cursor()))
			if target < 0 {
				return nil
			}
			line, col := flatPosition(b, target)
			ctx.SetCursor(ctx.Cursor().WithLine(line).WithColumn(col))
			return nil
		})
}
