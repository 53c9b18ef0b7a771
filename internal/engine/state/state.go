// Package state composes the buffer, cursor, mode, registers, and search
// pattern into the session's single mutable editing state.
package state

import (
	"github.com/dshills/vimkit/internal/engine/buffer"
	"github.com/dshills/vimkit/internal/engine/cursor"
	"github.com/dshills/vimkit/internal/mode"
)

// UnnamedRegister is the register used for clipboard-style yanks.
const UnnamedRegister = '"'

// State is the complete editing state for one session.
type State struct {
	buf       *buffer.Buffer
	cur       cursor.Position
	origin    cursor.Position
	mode      string
	registers map[rune]string

	searchPattern string
	searchForward bool
}

// New creates a state over the given text, cursor at the origin,
// in normal mode.
func New(text string) *State {
	return &State{
		buf:           buffer.New(text),
		mode:          mode.Normal,
		registers:     make(map[rune]string),
		searchForward: true,
	}
}

// Buffer returns the owned buffer.
func (s *State) Buffer() *buffer.Buffer {
	return s.buf
}

// SetBuffer replaces the owned buffer and clamps the cursor to it.
func (s *State) SetBuffer(b *buffer.Buffer) {
	if b == nil {
		b = buffer.Empty()
	}
	s.buf = b
	s.cur = s.cur.ClampTo(b)
}

// Cursor returns the current cursor position.
func (s *State) Cursor() cursor.Position {
	return s.cur
}

// SetCursor sets the cursor, clamped to the buffer.
func (s *State) SetCursor(p cursor.Position) {
	s.cur = p.ClampTo(s.buf)
}

// Mode returns the current mode tag.
func (s *State) Mode() string {
	return s.mode
}

// SetMode sets the mode tag. Unknown names are ignored by callers that
// validate; State itself stores whatever it is given.
func (s *State) SetMode(m string) {
	s.mode = m
}

// Register returns the text in a named register.
func (s *State) Register(name rune) (string, bool) {
	text, ok := s.registers[name]
	return text, ok
}

// SetRegister stores text in a named register.
func (s *State) SetRegister(name rune, text string) {
	s.registers[name] = text
}

// SearchPattern returns the current search pattern.
func (s *State) SearchPattern() string {
	return s.searchPattern
}

// SearchForward returns true if the last search direction was forward.
func (s *State) SearchForward() bool {
	return s.searchForward
}

// SetSearch records the search pattern and direction.
func (s *State) SetSearch(pattern string, forward bool) {
	s.searchPattern = pattern
	s.searchForward = forward
}

// Reset restores the origin cursor and normal mode and clears the
// registers. Buffer content is untouched.
func (s *State) Reset() {
	s.cur = s.origin.ClampTo(s.buf)
	s.mode = mode.Normal
	s.registers = make(map[rune]string)
	s.searchPattern = ""
	s.searchForward = true
}

// Clone returns a structurally independent deep copy. Mutating the
// clone's buffer, cursor, or registers never affects the original.
func (s *State) Clone() *State {
	regs := make(map[rune]string, len(s.registers))
	for k, v := range s.registers {
		regs[k] = v
	}
	return &State{
		buf:           s.buf.Clone(),
		cur:           s.cur,
		origin:        s.origin,
		mode:          s.mode,
		registers:     regs,
		searchPattern: s.searchPattern,
		searchForward: s.searchForward,
	}
}

// Snapshot is a read-only view of the state for external observers.
type Snapshot struct {
	Mode          string
	Line          int
	Column        int
	Content       string
	SearchPattern string
	Registers     map[rune]string
}

// Snapshot captures the current state as an independent value.
func (s *State) Snapshot() Snapshot {
	regs := make(map[rune]string, len(s.registers))
	for k, v := range s.registers {
		regs[k] = v
	}
	return Snapshot{
		Mode:          s.mode,
		Line:          s.cur.Line,
		Column:        s.cur.Column,
		Content:       s.buf.Content(),
		SearchPattern: s.searchPattern,
		Registers:     regs,
	}
}
