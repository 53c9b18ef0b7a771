package key

import "testing"

func TestParseLiteral(t *testing.T) {
	e, err := Parse("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Key != KeyRune || e.Rune != 'a' || e.Mod != ModNone {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestParseUppercaseImpliesShift(t *testing.T) {
	e, err := Parse("G")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Rune != 'G' || !e.Mod.Has(ModShift) {
		t.Errorf("expected shifted G, got %+v", e)
	}
	if e.Token() != "G" {
		t.Errorf("expected token G, got %q", e.Token())
	}
}

func TestParseBracketed(t *testing.T) {
	tests := []struct {
		token string
		want  Event
	}{
		{"<Esc>", NewSpecial(KeyEscape, ModNone)},
		{"<CR>", NewSpecial(KeyEnter, ModNone)},
		{"<BS>", NewSpecial(KeyBackspace, ModNone)},
		{"<C-a>", NewRune('a', ModCtrl)},
		{"<C-A-x>", NewRune('x', ModCtrl|ModAlt)},
		{"<Space>", NewRune(' ', ModNone)},
		{"<lt>", NewRune('<', ModNone)},
		{"<S-Tab>", NewSpecial(KeyTab, ModShift)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			e, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !e.Equals(tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, e)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "ab", "<>", "<Q-x>", "<Bogus>"} {
		if _, err := Parse(token); err == nil {
			t.Errorf("expected error for %q", token)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := []string{"a", "$", "<Esc>", "<CR>", "<C-a>", "<C-A-x>", "<Space>", "<lt>", "<Up>"}

	for _, token := range tokens {
		got, err := Normalize(token)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", token, err)
		}
		if got != token {
			t.Errorf("expected %q to normalize to itself, got %q", token, got)
		}
	}
}

func TestNormalizeCanonicalOrder(t *testing.T) {
	// Modifiers re-serialize in Ctrl, Alt, Shift, Meta order.
	got, err := Normalize("<A-C-x>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<C-A-x>" {
		t.Errorf("expected <C-A-x>, got %q", got)
	}
}
