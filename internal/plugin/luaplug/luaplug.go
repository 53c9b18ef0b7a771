// Package luaplug loads command plugins written in Lua.
//
// A script declares its metadata in a global `plugin` table and its
// action in a global `execute` function:
//
//	plugin = {
//	    name = "demo.shout",
//	    version = "1.0.0",
//	    description = "jump to line start",
//	    patterns = { "Z" },
//	    modes = { "normal" },
//	}
//
//	function execute(vk)
//	    vk.set_cursor(vk.line(), 0)
//	end
//
// The `vk` argument exposes the execution context: line(), col(),
// cur_line(), line_count(), mode(), count(), register(name), and the
// mutators move(dl, dc), set_cursor(line, col), set_mode(mode), and
// yank(name, text).
package luaplug

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimkit/internal/execctx"
	"github.com/dshills/vimkit/internal/plugin"
)

// Plugin is a command plugin backed by a Lua script.
type Plugin struct {
	*plugin.Base
	ls   *lua.LState
	exec *lua.LFunction
}

// Load compiles script and reads its plugin declaration.
func Load(script string) (*Plugin, error) {
	ls := lua.NewState()
	if err := ls.DoString(script); err != nil {
		ls.Close()
		return nil, fmt.Errorf("lua plugin: %w", err)
	}

	meta, err := readMeta(ls)
	if err != nil {
		ls.Close()
		return nil, err
	}
	exec, ok := ls.GetGlobal("execute").(*lua.LFunction)
	if !ok {
		ls.Close()
		return nil, fmt.Errorf("lua plugin %s: no execute function", meta.Name)
	}

	p := &Plugin{ls: ls, exec: exec}
	p.Base = plugin.NewBase(meta, p.call)
	return p, nil
}

// LoadFile loads a plugin script from disk.
func LoadFile(path string) (*Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lua plugin: %w", err)
	}
	return Load(string(data))
}

// Destroy closes the script's interpreter state.
func (p *Plugin) Destroy() {
	p.ls.Close()
}

func (p *Plugin) call(ctx *execctx.Context) error {
	err := p.ls.CallByParam(lua.P{
		Fn:      p.exec,
		NRet:    0,
		Protect: true,
	}, p.apiTable(ctx))
	if err != nil {
		return plugin.NewError(plugin.CodeExecutionFailed, p.Meta().Name, err)
	}
	return nil
}

// apiTable builds the `vk` table handed to execute, with closures
// bound to the live context.
func (p *Plugin) apiTable(ctx *execctx.Context) *lua.LTable {
	ls := p.ls
	t := ls.NewTable()

	ls.SetField(t, "line", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(ctx.Cursor().Line))
		return 1
	}))
	ls.SetField(t, "col", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(ctx.Cursor().Column))
		return 1
	}))
	ls.SetField(t, "cur_line", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(ctx.CurrentLine()))
		return 1
	}))
	ls.SetField(t, "line_count", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(ctx.Buffer().LineCount()))
		return 1
	}))
	ls.SetField(t, "mode", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(ctx.Mode()))
		return 1
	}))
	ls.SetField(t, "count", ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(ctx.GetCount()))
		return 1
	}))
	ls.SetField(t, "move", ls.NewFunction(func(L *lua.LState) int {
		ctx.MoveCursor(L.CheckInt(1), L.CheckInt(2))
		return 0
	}))
	ls.SetField(t, "set_cursor", ls.NewFunction(func(L *lua.LState) int {
		ctx.SetCursor(ctx.Cursor().WithLine(L.CheckInt(1)).WithColumn(L.CheckInt(2)))
		return 0
	}))
	ls.SetField(t, "set_mode", ls.NewFunction(func(L *lua.LState) int {
		if err := ctx.SetMode(L.CheckString(1)); err != nil {
			L.RaiseError("set_mode: %v", err)
		}
		return 0
	}))
	ls.SetField(t, "register", ls.NewFunction(func(L *lua.LState) int {
		name := []rune(L.CheckString(1))
		if len(name) != 1 {
			L.RaiseError("register name must be one character")
		}
		text, _ := ctx.Register(name[0])
		L.Push(lua.LString(text))
		return 1
	}))
	ls.SetField(t, "yank", ls.NewFunction(func(L *lua.LState) int {
		name := []rune(L.CheckString(1))
		if len(name) != 1 {
			L.RaiseError("register name must be one character")
		}
		ctx.YankToRegister(name[0], L.CheckString(2))
		return 0
	}))

	return t
}

// readMeta extracts the plugin declaration table.
func readMeta(ls *lua.LState) (plugin.Meta, error) {
	tbl, ok := ls.GetGlobal("plugin").(*lua.LTable)
	if !ok {
		return plugin.Meta{}, fmt.Errorf("lua plugin: no plugin table")
	}

	meta := plugin.Meta{
		Name:        lua.LVAsString(tbl.RawGetString("name")),
		Version:     lua.LVAsString(tbl.RawGetString("version")),
		Description: lua.LVAsString(tbl.RawGetString("description")),
		Patterns:    stringList(tbl.RawGetString("patterns")),
		Modes:       stringList(tbl.RawGetString("modes")),
	}
	if meta.Name == "" {
		return plugin.Meta{}, fmt.Errorf("lua plugin: missing name")
	}
	return meta, nil
}

// stringList converts a Lua array of strings.
func stringList(v lua.LValue) []string {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	tbl.ForEach(func(_, item lua.LValue) {
		if s, ok := item.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
