package motion

import (
	"unicode"

	"github.com/dshills/vimkit/internal/engine/buffer"
	"github.com/dshills/vimkit/internal/engine/cursor"
)

// charClass partitions runes for boundary scanning.
type charClass int

const (
	classWhitespace charClass = iota
	classWord
	classPunct
)

// classifier maps a rune to its scan class.
type classifier func(r rune) charClass

// wordClass is the three-class word tokenizer: alphanumeric runs,
// punctuation runs, and whitespace runs are separate tokens.
func wordClass(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// bigWordClass is the two-class WORD tokenizer: anything that is not
// whitespace belongs to the token.
func bigWordClass(r rune) charClass {
	if unicode.IsSpace(r) {
		return classWhitespace
	}
	return classWord
}

// flatten returns the buffer content as a rune slice with explicit
// line breaks, so scans cross line boundaries uniformly.
func flatten(b *buffer.Buffer) []rune {
	return []rune(b.Content())
}

// flatIndex converts a cursor position to an index into flatten(b).
// A column equal to the line length maps to the line break itself.
func flatIndex(b *buffer.Buffer, p cursor.Position) int {
	idx := 0
	for n := 0; n < p.Line; n++ {
		idx += b.LineLen(n) + 1
	}
	col := p.Column
	if max := b.LineLen(p.Line); col > max {
		col = max
	}
	return idx + col
}

// flatPosition converts an index into flatten(b) back to (line, column).
func flatPosition(b *buffer.Buffer, idx int) (int, int) {
	if idx < 0 {
		idx = 0
	}
	line := 0
	for line < b.LineCount()-1 && idx > b.LineLen(line) {
		idx -= b.LineLen(line) + 1
		line++
	}
	if max := b.LineLen(line); idx > max {
		idx = max
	}
	return line, idx
}

// scanTokenStart moves idx forward to the start of the next token: the
// remainder of the current token is skipped, then whitespace, landing
// on the first rune of the following token. Returns idx unchanged when
// no further token exists.
func scanTokenStart(r []rune, idx int, cls classifier) int {
	n := len(r)
	if idx >= n {
		return idx
	}
	i := idx
	if c := cls(r[i]); c != classWhitespace {
		for i < n && cls(r[i]) == c {
			i++
		}
	}
	for i < n && cls(r[i]) == classWhitespace {
		i++
	}
	if i >= n {
		return idx
	}
	return i
}

// scanTokenEnd moves idx forward to the end of the next token,
// stepping off the current position first so repeated calls walk
// successive token ends.
func scanTokenEnd(r []rune, idx int, cls classifier) int {
	n := len(r)
	i := idx + 1
	if i >= n {
		return idx
	}
	for i < n && cls(r[i]) == classWhitespace {
		i++
	}
	if i >= n {
		return idx
	}
	c := cls(r[i])
	for i+1 < n && cls(r[i+1]) == c {
		i++
	}
	return i
}

// scanTokenStartBack moves idx backward to the start of the previous
// token (or of the current token when idx is mid-token).
func scanTokenStartBack(r []rune, idx int, cls classifier) int {
	if idx <= 0 {
		return 0
	}
	i := idx - 1
	for i > 0 && cls(r[i]) == classWhitespace {
		i--
	}
	if cls(r[i]) == classWhitespace {
		return idx
	}
	c := cls(r[i])
	for i > 0 && cls(r[i-1]) == c {
		i--
	}
	return i
}

// scanTokenEndBack moves idx backward to the nearest preceding
// token-end position: a non-whitespace rune whose successor is
// whitespace, a different class, or the end of text.
func scanTokenEndBack(r []rune, idx int, cls classifier) int {
	n := len(r)
	for i := idx - 1; i >= 0; i-- {
		c := cls(r[i])
		if c == classWhitespace {
			continue
		}
		if i+1 >= n || cls(r[i+1]) != c {
			return i
		}
	}
	return idx
}
