package buffer

import "strings"

// Buffer is line-oriented text storage.
type Buffer struct {
	lines []string
}

// New creates a buffer from raw text.
func New(text string) *Buffer {
	b := &Buffer{}
	b.SetContent(text)
	return b
}

// Empty creates a buffer with zero lines.
func Empty() *Buffer {
	return &Buffer{}
}

// SetContent replaces the buffer content wholesale.
// The text is split on newlines; a single trailing empty segment
// produced by a final newline is discarded. Empty text yields zero lines.
func (b *Buffer) SetContent(text string) {
	if text == "" {
		b.lines = nil
		return
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	b.lines = lines
}

// Line returns the line at index n (0-based).
// Returns ("", false) when n is out of range.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 0 || n >= len(b.lines) {
		return "", false
	}
	return b.lines[n], true
}

// LineLen returns the length in runes of line n, or 0 when out of range.
func (b *Buffer) LineLen(n int) int {
	line, ok := b.Line(n)
	if !ok {
		return 0
	}
	return len([]rune(line))
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Content returns the full buffer text with lines joined by newlines.
func (b *Buffer) Content() string {
	return strings.Join(b.lines, "\n")
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Clone returns a structurally independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{}
	if b.lines != nil {
		clone.lines = make([]string, len(b.lines))
		copy(clone.lines, b.lines)
	}
	return clone
}
