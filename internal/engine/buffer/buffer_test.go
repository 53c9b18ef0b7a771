package buffer

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"empty", "", 0},
		{"single line", "hello", 1},
		{"trailing newline", "hello\n", 1},
		{"two lines", "a\nb", 2},
		{"two lines trailing newline", "a\nb\n", 2},
		{"interior blank line", "a\n\nb", 3},
		{"only newline", "\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			if b.LineCount() != tt.lines {
				t.Errorf("expected %d lines, got %d", tt.lines, b.LineCount())
			}
		})
	}
}

func TestLine(t *testing.T) {
	b := New("alpha\nbeta")

	if line, ok := b.Line(0); !ok || line != "alpha" {
		t.Errorf("expected (alpha, true), got (%q, %v)", line, ok)
	}
	if line, ok := b.Line(1); !ok || line != "beta" {
		t.Errorf("expected (beta, true), got (%q, %v)", line, ok)
	}
	if _, ok := b.Line(2); ok {
		t.Error("expected out-of-range lookup to report false")
	}
	if _, ok := b.Line(-1); ok {
		t.Error("expected negative lookup to report false")
	}
}

func TestSetContentEmpty(t *testing.T) {
	b := New("something")
	b.SetContent("")

	if !b.IsEmpty() {
		t.Error("expected empty buffer after SetContent(\"\")")
	}
	if b.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", b.LineCount())
	}
}

func TestContent(t *testing.T) {
	b := New("a\nb\nc\n")
	if got := b.Content(); got != "a\nb\nc" {
		t.Errorf("expected %q, got %q", "a\nb\nc", got)
	}
}

func TestLineLen(t *testing.T) {
	b := New("héllo\n")
	if got := b.LineLen(0); got != 5 {
		t.Errorf("expected rune length 5, got %d", got)
	}
	if got := b.LineLen(9); got != 0 {
		t.Errorf("expected 0 for out of range, got %d", got)
	}
}

func TestClone(t *testing.T) {
	b := New("one\ntwo")
	c := b.Clone()

	c.SetContent("changed")

	if line, _ := b.Line(0); line != "one" {
		t.Errorf("mutating clone affected original: %q", line)
	}
	if b.LineCount() != 2 {
		t.Errorf("expected original to keep 2 lines, got %d", b.LineCount())
	}
}
