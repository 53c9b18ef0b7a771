// Package main is a terminal demo for the vimkit engine: it feeds
// keyboard input through the executor and renders the resulting state
// snapshot after every keystroke.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimkit/internal/config"
	"github.com/dshills/vimkit/internal/executor"
	"github.com/dshills/vimkit/internal/plugin/luaplug"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const sampleText = `Welcome to the vimkit demo.

Use h j k l to move, w b e ge for words,
0 ^ $ gg G % for anchors, and / to search.
Press Ctrl-C to quit.`

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to a TOML config file")
		pluginDir   = flag.String("plugins", "", "directory of Lua plugin scripts")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vimdemo %s (%s)\n", version, commit)
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	exec := executor.New(sampleText, cfg.ExecutorConfig())
	if err := exec.RegisterDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: register plugins: %v\n", err)
		return 1
	}
	if *pluginDir != "" {
		if err := loadLuaPlugins(exec, *pluginDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if err := exec.ApplyKeymaps(cfg.Keymaps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := exec.SetMode(cfg.InitialMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	exec.Start()
	defer exec.Destroy()

	render(screen, exec)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return 0
			}
			if err := exec.HandleTcellEvent(ev); err != nil {
				continue
			}
			render(screen, exec)
		case *tcell.EventResize:
			screen.Sync()
			render(screen, exec)
		}
	}
}

// loadLuaPlugins registers every .lua script found in dir.
func loadLuaPlugins(exec *executor.Executor, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read plugin dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		p, err := luaplug.LoadFile(dir + "/" + entry.Name())
		if err != nil {
			return err
		}
		if err := exec.RegisterPlugin(p); err != nil {
			return fmt.Errorf("register %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// render draws the buffer, cursor, and a status line.
func render(screen tcell.Screen, exec *executor.Executor) {
	screen.Clear()
	snap := exec.State()

	style := tcell.StyleDefault
	for y, line := range strings.Split(snap.Content, "\n") {
		for x, r := range []rune(line) {
			screen.SetContent(x, y, r, nil, style)
		}
	}

	_, height := screen.Size()
	status := fmt.Sprintf("-- %s --  (%d,%d)", strings.ToUpper(snap.Mode), snap.Line, snap.Column)
	if snap.PendingKeys != "" {
		status += "  pending: " + snap.PendingKeys
	}
	if snap.SearchPattern != "" {
		status += "  /" + snap.SearchPattern
	}
	for x, r := range []rune(status) {
		screen.SetContent(x, height-1, r, nil, style.Reverse(true))
	}

	screen.ShowCursor(snap.Column, snap.Line)
	screen.Show()
}
