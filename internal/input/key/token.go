package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	ErrEmptyToken   = errors.New("key: empty token")
	ErrInvalidToken = errors.New("key: invalid token")
)

// Token formats the event as its canonical keystroke token.
// Unmodified printable characters format as themselves; everything else
// uses bracketed notation with modifiers in Ctrl, Alt, Shift, Meta order.
func (e Event) Token() string {
	if e.IsRune() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	base := e.Key.name()
	if e.Key == KeyRune {
		base = string(e.Rune)
		if e.Rune == ' ' {
			base = "Space"
		}
	}
	return "<" + e.Mod.prefix() + base + ">"
}

// Parse parses a keystroke token into an Event.
// Accepted forms: a literal single character ("a", "$"), or bracketed
// notation ("<Esc>", "<C-a>", "<C-A-x>", "<Space>", "<lt>").
func Parse(token string) (Event, error) {
	if token == "" {
		return Event{}, ErrEmptyToken
	}

	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") && len(token) > 2 {
		return parseBracketed(token[1 : len(token)-1])
	}

	runes := []rune(token)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	r := runes[0]
	var mods Modifier
	if unicode.IsUpper(r) {
		mods = ModShift
	}
	return NewRune(r, mods), nil
}

// MustParse parses a token and panics on error.
// Use only for known-valid tokens in initialization code.
func MustParse(token string) Event {
	e, err := Parse(token)
	if err != nil {
		panic("invalid key token: " + token + ": " + err.Error())
	}
	return e
}

// Normalize parses and re-formats a token into its canonical form.
func Normalize(token string) (string, error) {
	e, err := Parse(token)
	if err != nil {
		return "", err
	}
	return e.Token(), nil
}

// parseBracketed parses the inner part of a "<...>" token.
func parseBracketed(inner string) (Event, error) {
	parts := strings.Split(inner, "-")

	var mods Modifier
	base := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidToken, p)
		}
		mods = mods.With(mod)
	}

	if base == "" {
		return Event{}, fmt.Errorf("%w: <%s>", ErrInvalidToken, inner)
	}

	lower := strings.ToLower(base)
	switch lower {
	case "space":
		return NewRune(' ', mods), nil
	case "lt":
		return NewRune('<', mods), nil
	}
	if k, ok := keyFromName[lower]; ok {
		return NewSpecial(k, mods), nil
	}

	runes := []rune(base)
	if len(runes) == 1 {
		r := runes[0]
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
		}
		return NewRune(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidToken, base)
}
