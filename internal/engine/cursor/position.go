package cursor

import (
	"fmt"

	"github.com/dshills/vimkit/internal/engine/buffer"
)

// Position is a cursor location in a buffer.
// Position is an immutable value type; movement methods return copies.
type Position struct {
	// Line is the 0-based line index.
	Line int

	// Column is the 0-based column in runes. Column may equal the line
	// length (the slot just past the last character).
	Column int

	// Desired is the last horizontally intentional column. Vertical
	// movement clamps Column to the target line but leaves Desired alone.
	Desired int
}

// New creates a position, clamping negative inputs to zero.
func New(line, column int) Position {
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	return Position{Line: line, Column: column, Desired: column}
}

// WithColumn returns the position moved horizontally to col.
// Horizontal movement is intentional, so Desired follows Column.
func (p Position) WithColumn(col int) Position {
	if col < 0 {
		col = 0
	}
	p.Column = col
	p.Desired = col
	return p
}

// WithLine returns the position moved to line, keeping Column and Desired.
func (p Position) WithLine(line int) Position {
	if line < 0 {
		line = 0
	}
	p.Line = line
	return p
}

// VerticalTo returns the position moved vertically to line in b,
// applying the sticky-column rule: Column is the desired column clamped
// to the target line's length, Desired is preserved.
func (p Position) VerticalTo(line int, b *buffer.Buffer) Position {
	if b.IsEmpty() {
		return Position{}
	}
	if line < 0 {
		line = 0
	}
	if max := b.LineCount() - 1; line > max {
		line = max
	}

	p.Line = line
	p.Column = p.Desired
	if max := b.LineLen(line); p.Column > max {
		p.Column = max
	}
	return p
}

// ClampTo returns the position clamped to valid coordinates for b.
// For an empty buffer the only valid position is the origin.
func (p Position) ClampTo(b *buffer.Buffer) Position {
	if b.IsEmpty() {
		p.Line = 0
		p.Column = 0
		return p
	}

	if p.Line < 0 {
		p.Line = 0
	}
	if max := b.LineCount() - 1; p.Line > max {
		p.Line = max
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if max := b.LineLen(p.Line); p.Column > max {
		p.Column = max
	}
	return p
}

// Equals returns true if two positions have the same line and column.
func (p Position) Equals(other Position) bool {
	return p.Line == other.Line && p.Column == other.Column
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}
