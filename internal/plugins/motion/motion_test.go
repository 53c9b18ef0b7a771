package motion

import (
	"testing"

	"github.com/dshills/vimkit/internal/engine/state"
	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/plugin"
)

func newCtx(t *testing.T, text string, line, col int) *execctx.Context {
	t.Helper()
	ctx := execctx.New(state.New(text))
	ctx.SetCursor(ctx.Cursor().WithLine(line).WithColumn(col))
	return ctx
}

func exec(t *testing.T, p plugin.Plugin, ctx *execctx.Context) {
	t.Helper()
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("%s: %v", p.Meta().Name, err)
	}
}

func assertCursor(t *testing.T, ctx *execctx.Context, line, col int) {
	t.Helper()
	p := ctx.Cursor()
	if p.Line != line || p.Column != col {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", p.Line, p.Column, line, col)
	}
}

func TestRightThreeTimes(t *testing.T) {
	ctx := newCtx(t, "Hello", 0, 0)
	right := NewRight(1)
	for i := 0; i < 3; i++ {
		exec(t, right, ctx)
	}
	assertCursor(t, ctx, 0, 3)
}

func TestDownTwice(t *testing.T) {
	ctx := newCtx(t, "A\nB\nC", 0, 0)
	down := NewDown(1)
	exec(t, down, ctx)
	exec(t, down, ctx)
	assertCursor(t, ctx, 2, 0)
}

func TestLeftAtColumnZeroIsNoOp(t *testing.T) {
	ctx := newCtx(t, "Hello", 0, 0)
	exec(t, NewLeft(1), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestUpAtFirstLineIsNoOp(t *testing.T) {
	ctx := newCtx(t, "A\nB", 0, 1)
	exec(t, NewUp(1), ctx)
	assertCursor(t, ctx, 0, 1)
}

func TestDirectionalWithCount(t *testing.T) {
	ctx := newCtx(t, "abcdefgh", 0, 0)
	ctx.Count = 5
	exec(t, NewRight(1), ctx)
	assertCursor(t, ctx, 0, 5)
}

func TestDirectionalOnEmptyBuffer(t *testing.T) {
	ctx := newCtx(t, "", 0, 0)
	exec(t, NewDown(1), ctx)
	exec(t, NewRight(1), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestStickyColumnAcrossShortLine(t *testing.T) {
	ctx := newCtx(t, "line one\nab\nline three", 0, 6)
	down := NewDown(1)
	exec(t, down, ctx)
	assertCursor(t, ctx, 1, 2)
	exec(t, down, ctx)
	assertCursor(t, ctx, 2, 6)
}

func TestWordForward(t *testing.T) {
	ctx := newCtx(t, "one two three", 0, 0)
	w := NewWordForward()
	exec(t, w, ctx)
	assertCursor(t, ctx, 0, 4)
	exec(t, w, ctx)
	assertCursor(t, ctx, 0, 8)
}

func TestWordForwardStopsAtPunctuation(t *testing.T) {
	ctx := newCtx(t, "hello.world", 0, 0)
	w := NewWordForward()
	exec(t, w, ctx)
	assertCursor(t, ctx, 0, 5)
	exec(t, w, ctx)
	assertCursor(t, ctx, 0, 6)
}

func TestBigWordForwardSkipsPunctuation(t *testing.T) {
	ctx := newCtx(t, "hello.world test", 0, 0)
	exec(t, NewBigWordForward(), ctx)
	assertCursor(t, ctx, 0, 12)
}

func TestWordForwardCrossesLines(t *testing.T) {
	ctx := newCtx(t, "one\n\n  two", 0, 0)
	exec(t, NewWordForward(), ctx)
	assertCursor(t, ctx, 2, 2)
}

func TestWordBackward(t *testing.T) {
	ctx := newCtx(t, "one two three", 0, 8)
	b := NewWordBackward()
	exec(t, b, ctx)
	assertCursor(t, ctx, 0, 4)
	exec(t, b, ctx)
	assertCursor(t, ctx, 0, 0)
	exec(t, b, ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestWordEnd(t *testing.T) {
	ctx := newCtx(t, "one two three", 0, 0)
	e := NewWordEnd()
	exec(t, e, ctx)
	assertCursor(t, ctx, 0, 2)
	exec(t, e, ctx)
	assertCursor(t, ctx, 0, 6)
}

func TestWordEndBackwardSequence(t *testing.T) {
	ctx := newCtx(t, "one two three four", 0, 17)
	ge := NewWordEndBackward()
	want := []int{12, 6, 2}
	for _, col := range want {
		exec(t, ge, ctx)
		assertCursor(t, ctx, 0, col)
	}
}

func TestWordVersusBigWordBackward(t *testing.T) {
	ctx := newCtx(t, "hello.world test", 0, 12)
	exec(t, NewWordEndBackward(), ctx)
	assertCursor(t, ctx, 0, 10)

	ctx = newCtx(t, "hello.world test", 0, 12)
	exec(t, NewBigWordEndBackward(), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestWordEndBackwardAtBufferStart(t *testing.T) {
	ctx := newCtx(t, "one two", 0, 0)
	exec(t, NewWordEndBackward(), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestWordMotionWithCount(t *testing.T) {
	ctx := newCtx(t, "one two three four", 0, 0)
	ctx.Count = 3
	exec(t, NewWordForward(), ctx)
	assertCursor(t, ctx, 0, 14)
}

func TestLineStart(t *testing.T) {
	ctx := newCtx(t, "  indented", 0, 7)
	exec(t, NewLineStart(), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestFirstNonBlank(t *testing.T) {
	ctx := newCtx(t, "   text", 0, 6)
	exec(t, NewFirstNonBlank(), ctx)
	assertCursor(t, ctx, 0, 3)
}

func TestFirstNonBlankOnBlankLine(t *testing.T) {
	ctx := newCtx(t, "   ", 0, 2)
	exec(t, NewFirstNonBlank(), ctx)
	assertCursor(t, ctx, 0, 0)
}

func TestLineEnd(t *testing.T) {
	ctx := newCtx(t, "Hello", 0, 0)
	exec(t, NewLineEnd(), ctx)
	assertCursor(t, ctx, 0, 4)
}

func TestBufferTopAndBottom(t *testing.T) {
	ctx := newCtx(t, "  first\nmiddle\n  last", 1, 3)
	exec(t, NewBufferTop(), ctx)
	assertCursor(t, ctx, 0, 2)
	exec(t, NewBufferBottom(), ctx)
	assertCursor(t, ctx, 2, 2)
}

func TestBufferBottomWithCountTargetsLine(t *testing.T) {
	ctx := newCtx(t, "a\nb\nc\nd", 0, 0)
	ctx.Count = 2
	exec(t, NewBufferBottom(), ctx)
	assertCursor(t, ctx, 1, 0)
}

func TestMatchBracketForward(t *testing.T) {
	ctx := newCtx(t, "call(a, b)", 0, 0)
	exec(t, NewMatchBracket(), ctx)
	assertCursor(t, ctx, 0, 9)
}

func TestMatchBracketBackward(t *testing.T) {
	ctx := newCtx(t, "call(a, b)", 0, 9)
	exec(t, NewMatchBracket(), ctx)
	assertCursor(t, ctx, 0, 4)
}

func TestMatchBracketNested(t *testing.T) {
	ctx := newCtx(t, "f(g(x), y)", 0, 1)
	exec(t, NewMatchBracket(), ctx)
	assertCursor(t, ctx, 0, 9)
}

func TestMatchBracketAcrossLines(t *testing.T) {
	ctx := newCtx(t, "if x {\n  y\n}", 0, 5)
	exec(t, NewMatchBracket(), ctx)
	assertCursor(t, ctx, 2, 0)
}

func TestMatchBracketNoBracketIsNoOp(t *testing.T) {
	ctx := newCtx(t, "plain text", 0, 3)
	exec(t, NewMatchBracket(), ctx)
	assertCursor(t, ctx, 0, 3)
}

func TestSearchConfirmMovesToMatch(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "alpha beta\ngamma beta", 0, 0)

	exec(t, NewSearchForward(eng), ctx)
	if !eng.Active() {
		t.Fatal("engine not active after /")
	}
	for _, r := range "beta" {
		eng.AddChar(r)
	}
	if err := eng.Confirm(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertCursor(t, ctx, 0, 6)
	if ctx.SearchPattern() != "beta" || !ctx.SearchForward() {
		t.Errorf("stored search = %q forward=%v", ctx.SearchPattern(), ctx.SearchForward())
	}
	if ctx.Mode() != "normal" {
		t.Errorf("mode = %q after confirm", ctx.Mode())
	}
}

func TestSearchWrapsToBufferStart(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "target here\nnothing", 1, 3)
	exec(t, NewSearchForward(eng), ctx)
	for _, r := range "target" {
		eng.AddChar(r)
	}
	if err := eng.Confirm(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertCursor(t, ctx, 0, 0)
}

func TestSearchCancelRestoresCursorAndMode(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "alpha beta", 0, 3)
	exec(t, NewSearchForward(eng), ctx)
	eng.AddChar('b')
	if err := eng.Cancel(ctx); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	assertCursor(t, ctx, 0, 3)
	if ctx.Mode() != "normal" {
		t.Errorf("mode = %q after cancel", ctx.Mode())
	}
	if eng.Active() {
		t.Error("engine still active after cancel")
	}
}

func TestSearchRemoveChar(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "abc abd", 0, 0)
	exec(t, NewSearchForward(eng), ctx)
	for _, r := range "abd" {
		eng.AddChar(r)
	}
	eng.RemoveChar()
	if eng.Input() != "ab" {
		t.Fatalf("input = %q, want ab", eng.Input())
	}
	eng.AddChar('c')
	if err := eng.Confirm(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if eng.Input() != "" && eng.Active() {
		t.Error("engine still capturing after confirm")
	}
}

func TestSearchNextAndPrev(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "x one x two x", 0, 0)
	ctx.SetSearch("x", true)

	exec(t, NewSearchNext(eng), ctx)
	assertCursor(t, ctx, 0, 6)
	exec(t, NewSearchNext(eng), ctx)
	assertCursor(t, ctx, 0, 12)
	exec(t, NewSearchPrev(eng), ctx)
	assertCursor(t, ctx, 0, 6)
}

func TestSearchNextWithoutPatternIsNoOp(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "text", 0, 2)
	exec(t, NewSearchNext(eng), ctx)
	assertCursor(t, ctx, 0, 2)
}

func TestSearchBackwardDirection(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "key one key two", 0, 8)
	exec(t, NewSearchBackward(eng), ctx)
	for _, r := range "key" {
		eng.AddChar(r)
	}
	if err := eng.Confirm(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertCursor(t, ctx, 0, 0)
}

func TestSearchTokenHandling(t *testing.T) {
	eng := NewSearchEngine()
	ctx := newCtx(t, "find me", 0, 0)
	exec(t, NewSearchForward(eng), ctx)

	for _, tok := range []string{"m", "x", "<BS>", "e"} {
		if err := eng.HandleToken(ctx, tok); err != nil {
			t.Fatalf("token %q: %v", tok, err)
		}
	}
	if eng.Input() != "me" {
		t.Fatalf("input = %q, want me", eng.Input())
	}
	if err := eng.HandleToken(ctx, "<CR>"); err != nil {
		t.Fatalf("confirm token: %v", err)
	}
	assertCursor(t, ctx, 0, 5)
}
