package luaplug

import (
	"testing"

	"github.com/dshills/vimkit/internal/engine/state"
	"github.com/dshills/vimkit/internal/execctx"
)

const lineStartScript = `
plugin = {
    name = "lua.line-start",
    version = "1.0.0",
    description = "jump to column zero",
    patterns = { "Z" },
    modes = { "normal" },
}

function execute(vk)
    vk.set_cursor(vk.line(), 0)
end
`

func TestLoadAndExecute(t *testing.T) {
	p, err := Load(lineStartScript)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Destroy()

	meta := p.Meta()
	if meta.Name != "lua.line-start" {
		t.Errorf("name = %q", meta.Name)
	}
	if len(meta.Patterns) != 1 || meta.Patterns[0] != "Z" {
		t.Errorf("patterns = %v", meta.Patterns)
	}

	ctx := execctx.New(state.New("hello world"))
	ctx.SetCursor(ctx.Cursor().WithColumn(7))
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ctx.Cursor().Column != 0 {
		t.Errorf("column = %d, want 0", ctx.Cursor().Column)
	}
}

func TestContextReadsFromLua(t *testing.T) {
	p, err := Load(`
plugin = {
    name = "lua.yank-line",
    version = "1.0.0",
    description = "yank the current line",
    patterns = { "Y" },
    modes = { "normal" },
}

function execute(vk)
    vk.yank("a", vk.cur_line())
end
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Destroy()

	ctx := execctx.New(state.New("first\nsecond"))
	ctx.MoveCursor(1, 0)
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if text, _ := ctx.Register('a'); text != "second" {
		t.Errorf("register a = %q, want second", text)
	}
}

func TestLoadRejectsMissingMetadata(t *testing.T) {
	if _, err := Load(`function execute(vk) end`); err == nil {
		t.Error("script without plugin table accepted")
	}
	if _, err := Load(`plugin = { name = "x" }`); err == nil {
		t.Error("script without execute function accepted")
	}
	if _, err := Load(`plugin = { version = "1" } function execute(vk) end`); err == nil {
		t.Error("script without name accepted")
	}
}

func TestScriptErrorIsWrapped(t *testing.T) {
	p, err := Load(`
plugin = {
    name = "lua.broken",
    version = "1.0.0",
    description = "raises",
    patterns = { "X" },
    modes = { "normal" },
}

function execute(vk)
    error("broken on purpose")
end
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Destroy()

	ctx := execctx.New(state.New("text"))
	if err := p.Execute(ctx); err == nil {
		t.Error("script error not propagated")
	}
}
