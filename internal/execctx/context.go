// Package execctx provides the execution context plugins operate on.
//
// The executor creates exactly one live context per session and shares
// it with every plugin invocation. The context is the only path through
// which plugins may read or mutate session state.
package execctx

import (
	"fmt"

	"github.com/dshills/vimkit/internal/engine/buffer"
	"github.com/dshills/vimkit/internal/engine/cursor"
	"github.com/dshills/vimkit/internal/engine/state"
	"github.com/dshills/vimkit/internal/mode"
)

// Context wraps the live session state with controlled accessors.
type Context struct {
	state *state.State

	// Count is the repeat count for the current execution, 0 when the
	// user typed none. GetCount treats 0 as 1.
	Count int
}

// New creates a context over st.
func New(st *state.State) *Context {
	return &Context{state: st}
}

// Buffer returns the text buffer.
func (c *Context) Buffer() *buffer.Buffer {
	return c.state.Buffer()
}

// SetBuffer replaces the text buffer.
func (c *Context) SetBuffer(b *buffer.Buffer) {
	c.state.SetBuffer(b)
}

// Cursor returns the current cursor position.
func (c *Context) Cursor() cursor.Position {
	return c.state.Cursor()
}

// SetCursor sets the cursor, clamped to the buffer.
func (c *Context) SetCursor(p cursor.Position) {
	c.state.SetCursor(p)
}

// MoveCursor moves the cursor by the given line and column deltas,
// bounded to the buffer extents. Vertical movement applies the
// sticky-column rule; horizontal movement records the new column as
// the desired column.
func (c *Context) MoveCursor(deltaLine, deltaColumn int) {
	b := c.state.Buffer()
	if b.IsEmpty() {
		return
	}

	p := c.state.Cursor()
	if deltaLine != 0 {
		p = p.VerticalTo(p.Line+deltaLine, b)
	}
	if deltaColumn != 0 {
		col := p.Column + deltaColumn
		if col < 0 {
			col = 0
		}
		if max := b.LineLen(p.Line); col > max {
			col = max
		}
		p = p.WithColumn(col)
	}
	c.state.SetCursor(p)
}

// Mode returns the current mode tag.
func (c *Context) Mode() string {
	return c.state.Mode()
}

// SetMode sets the mode tag. Unknown mode names are rejected.
func (c *Context) SetMode(m string) error {
	if !mode.Valid(m) {
		return fmt.Errorf("unknown mode: %s", m)
	}
	c.state.SetMode(m)
	return nil
}

// IsMode returns true if the current mode equals m.
func (c *Context) IsMode(m string) bool {
	return c.state.Mode() == m
}

// CurrentLine returns the content of the line under the cursor, or ""
// for an empty buffer.
func (c *Context) CurrentLine() string {
	line, _ := c.state.Buffer().Line(c.state.Cursor().Line)
	return line
}

// LineNumber returns the current cursor line.
func (c *Context) LineNumber() int {
	return c.state.Cursor().Line
}

// YankToRegister stores text in a named register.
func (c *Context) YankToRegister(name rune, text string) {
	c.state.SetRegister(name, text)
}

// Register returns the text in a named register.
// Unset registers report ok=false.
func (c *Context) Register(name rune) (string, bool) {
	return c.state.Register(name)
}

// Clipboard returns the unnamed register's content.
func (c *Context) Clipboard() string {
	text, _ := c.state.Register(state.UnnamedRegister)
	return text
}

// SetClipboard stores text in the unnamed register.
func (c *Context) SetClipboard(text string) {
	c.state.SetRegister(state.UnnamedRegister, text)
}

// SearchPattern returns the last recorded search pattern.
func (c *Context) SearchPattern() string {
	return c.state.SearchPattern()
}

// SearchForward returns the last recorded search direction.
func (c *Context) SearchForward() bool {
	return c.state.SearchForward()
}

// SetSearch records the search pattern and direction.
func (c *Context) SetSearch(pattern string, forward bool) {
	c.state.SetSearch(pattern, forward)
}

// GetCount returns the repeat count, defaulting to 1.
func (c *Context) GetCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// Snapshot captures the wrapped state as an independent value.
func (c *Context) Snapshot() state.Snapshot {
	return c.state.Snapshot()
}

// Clone returns a context over a deep copy of the state. Mutating the
// clone never affects the live session.
func (c *Context) Clone() *Context {
	return &Context{state: c.state.Clone(), Count: c.Count}
}
