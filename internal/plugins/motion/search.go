package motion

import (
	"github.com/dshills/vimkit/internal/engine/buffer"
	"github.com/dshills/vimkit/internal/engine/cursor"
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/input/key"
	"github.com/dshills/vimkit/internal/mode"
	"github.com/dshills/vimkit/internal/plugin"
)

// SearchEngine accumulates a search pattern one character at a time
// and resolves it against the buffer on confirm. While a search is
// active the executor routes keystroke tokens here instead of through
// the command router.
type SearchEngine struct {
	input     []rune
	forward   bool
	active    bool
	savedPos  cursor.Position
	savedMode string
}

// NewSearchEngine creates an idle search engine.
func NewSearchEngine() *SearchEngine {
	return &SearchEngine{}
}

// Active reports whether pattern input is being captured.
func (s *SearchEngine) Active() bool {
	return s.active
}

// Input returns the pattern typed so far.
func (s *SearchEngine) Input() string {
	return string(s.input)
}

// Begin enters search-input mode, remembering the cursor and mode to
// restore on cancel.
func (s *SearchEngine) Begin(ctx *execctx.Context, forward bool) error {
	s.savedPos = ctx.Cursor()
	s.savedMode = ctx.Mode()
	s.input = s.input[:0]
	s.forward = forward
	s.active = true
	return ctx.SetMode(mode.Search)
}

// AddChar appends one character to the pending pattern.
func (s *SearchEngine) AddChar(r rune) {
	if s.active {
		s.input = append(s.input, r)
	}
}

// RemoveChar deletes the last character of the pending pattern.
func (s *SearchEngine) RemoveChar() {
	if s.active && len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// Confirm commits the pending pattern, records it as the last search,
// and moves the cursor to the first match. An empty pattern just
// leaves search-input mode.
func (s *SearchEngine) Confirm(ctx *execctx.Context) error {
	if !s.active {
		return nil
	}
	pattern := string(s.input)
	if err := s.leave(ctx); err != nil {
		return err
	}
	if pattern == "" {
		return nil
	}
	ctx.SetSearch(pattern, s.forward)
	if pos, ok := findMatch(ctx.Buffer(), ctx.Cursor(), pattern, s.forward); ok {
		ctx.SetCursor(ctx.Cursor().WithLine(pos.Line).WithColumn(pos.Column))
	}
	return nil
}

// Cancel leaves search-input mode and restores the pre-search cursor
// and mode.
func (s *SearchEngine) Cancel(ctx *execctx.Context) error {
	if !s.active {
		return nil
	}
	if err := s.leave(ctx); err != nil {
		return err
	}
	ctx.SetCursor(s.savedPos)
	return nil
}

func (s *SearchEngine) leave(ctx *execctx.Context) error {
	s.active = false
	restore := s.savedMode
	if restore == "" || restore == mode.Search {
		restore = mode.Normal
	}
	return ctx.SetMode(restore)
}

// Next repeats the last confirmed search. reverse flips the stored
// direction. Without a stored pattern it is a no-op.
func (s *SearchEngine) Next(ctx *execctx.Context, reverse bool) error {
	pattern := ctx.SearchPattern()
	if pattern == "" {
		return nil
	}
	forward := ctx.SearchForward()
	if reverse {
		forward = !forward
	}
	if pos, ok := findMatch(ctx.Buffer(), ctx.Cursor(), pattern, forward); ok {
		ctx.SetCursor(ctx.Cursor().WithLine(pos.Line).WithColumn(pos.Column))
	}
	return nil
}

// HandleToken consumes one keystroke token while active. Enter
// confirms, Escape cancels, Backspace deletes, and literal runes
// extend the pattern. Other specials are ignored.
func (s *SearchEngine) HandleToken(ctx *execctx.Context, token string) error {
	if !s.active {
		return nil
	}
	ev, err := key.Parse(token)
	if err != nil {
		return nil
	}
	switch {
	case ev.Key == key.KeyEnter:
		return s.Confirm(ctx)
	case ev.Key == key.KeyEscape:
		return s.Cancel(ctx)
	case ev.Key == key.KeyBackspace:
		s.RemoveChar()
	case ev.IsRune():
		s.AddChar(ev.Rune)
	}
	return nil
}

// findMatch locates the occurrence of pattern nearest the cursor in
// the given direction, starting one column past (or before) the
// cursor and wrapping around the buffer once.
func findMatch(b *buffer.Buffer, from cursor.Position, pattern string, forward bool) (cursor.Position, bool) {
	n := b.LineCount()
	if b.IsEmpty() || n == 0 {
		return cursor.Position{}, false
	}

	pat := []rune(pattern)
	if forward {
		for i := 0; i <= n; i++ {
			ln := (from.Line + i) % n
			text, _ := b.Line(ln)
			start := 0
			if i == 0 {
				start = from.Column + 1
			}
			if col := runeIndex([]rune(text), pat, start); col >= 0 {
				return cursor.New(ln, col), true
			}
		}
		return cursor.Position{}, false
	}

	for i := 0; i <= n; i++ {
		ln := ((from.Line-i)%n + n) % n
		text, _ := b.Line(ln)
		rt := []rune(text)
		end := len(rt)
		if i == 0 {
			end = from.Column
		}
		if col := runeLastIndex(rt, pat, end); col >= 0 {
			return cursor.New(ln, col), true
		}
	}
	return cursor.Position{}, false
}

// runeIndex returns the first rune column at or after start where pat
// occurs in text, or -1. Columns are rune offsets, matching the
// buffer's column model.
func runeIndex(text, pat []rune, start int) int {
	if len(pat) == 0 || start < 0 {
		return -1
	}
	for i := start; i+len(pat) <= len(text); i++ {
		if runesEqual(text[i:i+len(pat)], pat) {
			return i
		}
	}
	return -1
}

// runeLastIndex returns the last rune column strictly before end where
// pat starts, or -1.
func runeLastIndex(text, pat []rune, end int) int {
	if len(pat) == 0 {
		return -1
	}
	if end > len(text) {
		end = len(text)
	}
	for i := end - 1; i >= 0; i-- {
		if i+len(pat) <= len(text) && runesEqual(text[i:i+len(pat)], pat) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newSearchPlugin(name, pattern, desc string, modes []string, action plugin.ActionFunc) plugin.Plugin {
	return plugin.NewBase(plugin.Meta{
		Name:        name,
		Version:     "1.0.0",
		Description: desc,
		Patterns:    []string{pattern},
		Modes:       modes,
	}, action)
}

// NewSearchForward begins forward incremental search.
func NewSearchForward(eng *SearchEngine) plugin.Plugin {
	return newSearchPlugin("search.forward", "/", "Begin forward incremental search",
		[]string{mode.Normal, mode.Visual},
		func(ctx *execctx.Context) error { return eng.Begin(ctx, true) })
}

// NewSearchBackward begins backward incremental search.
func NewSearchBackward(eng *SearchEngine) plugin.Plugin {
	return newSearchPlugin("search.backward", "?", "Begin backward incremental search",
		[]string{mode.Normal, mode.Visual},
		func(ctx *execctx.Context) error { return eng.Begin(ctx, false) })
}

// NewSearchNext repeats the last search in its stored direction.
func NewSearchNext(eng *SearchEngine) plugin.Plugin {
	return newSearchPlugin("search.next", "n", "Repeat the last search",
		[]string{mode.Normal, mode.Visual},
		func(ctx *execctx.Context) error { return eng.Next(ctx, false) })
}

// NewSearchPrev repeats the last search in the opposite direction.
func NewSearchPrev(eng *SearchEngine) plugin.Plugin {
	return newSearchPlugin("search.prev", "N", "Repeat the last search, reversed",
		[]string{mode.Normal, mode.Visual},
		func(ctx *execctx.Context) error { return eng.Next(ctx, true) })
}
