// bubble-tui runs the same simulation in the terminal, one cell per
// sample of the shader contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubble-fighter/config"
	"github.com/lixenwraith/bubble-fighter/render"
	"github.com/lixenwraith/bubble-fighter/world"
)

const tickRate = 30

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	modeFlag   = flag.String("mode", "", "Interaction mode: split, merge, overlap, bounce")
	countFlag  = flag.Int("count", -1, "Initial bubble count (-1 = config)")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed (0 = config)")
)

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
	}
	if *modeFlag != "" {
		cfg.Mode = *modeFlag
	}
	if *countFlag >= 0 {
		cfg.BubbleCount = *countFlag
	}
	if *seedFlag != 0 {
		cfg.RandomSeed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-tui: %v\n", err)
		os.Exit(1)
	}
	w, err := world.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-tui: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-tui: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bubble-tui: init screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal on crash before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "bubble-tui crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	renderer := render.NewTerminalRenderer()
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			w.Tick(1.0 / tickRate)
			renderer.Draw(screen, render.Pack(w.Snapshot()))
			screen.Show()
		}
	}
}
