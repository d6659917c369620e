// bubble-fighter renders the simulation through the GPU fragment shader.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/bubble-fighter/audio"
	"github.com/lixenwraith/bubble-fighter/config"
	"github.com/lixenwraith/bubble-fighter/render"
	"github.com/lixenwraith/bubble-fighter/world"
)

const tps = 60

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	modeFlag   = flag.String("mode", "", "Interaction mode: split, merge, overlap, bounce")
	countFlag  = flag.Int("count", -1, "Initial bubble count (-1 = config)")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed (0 = config)")
	pixelsFlag = flag.Int("pixels", 1000, "Window width in pixels")
	muteFlag   = flag.Bool("mute", false, "Disable the split pop cue")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to ./logs")
)

type game struct {
	world  *world.World
	shader *ebiten.Shader
	popper *audio.Popper
	frame  render.Frame
	winW   int
	winH   int
}

func (g *game) Update() error {
	ev := g.world.Tick(1.0 / tps)
	if ev.Splits > 0 {
		g.popper.Pop()
		log.Printf("tick %.2f: %d splits, %d bubbles", g.world.Now(), ev.Splits, g.world.Count())
	}
	g.frame = render.Pack(g.world.Snapshot())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Circles":    g.frame.ShaderData(),
		"NumCircles": g.frame.Count,
		"MaxSpeed":   g.frame.MaxSpeed,
		"Time":       g.frame.Time,
	}
	screen.DrawRectShader(g.winW, g.winH, g.shader, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.winW, g.winH
}

// loadConfig layers flag overrides onto the file (or defaults) and runs
// the startup validation gate.
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
		fmt.Fprintf(os.Stderr, "bubble-fighter: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	w, err := world.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-fighter: %v\n", err)
		os.Exit(1)
	}

	shader, err := ebiten.NewShader(render.ShaderSource)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-fighter: compile shader: %v\n", err)
		os.Exit(1)
	}

	popper := audio.NewMutedPopper()
	if !*muteFlag {
		if p, perr := audio.NewPopper(); perr != nil {
			log.Printf("audio disabled: %v", perr)
		} else {
			popper = p
		}
	}

	winW := *pixelsFlag
	winH := int(float64(winW) * cfg.WindowHeight / cfg.WindowWidth)
	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle("bubble-fighter")
	ebiten.SetTPS(tps)

	g := &game{world: w, shader: shader, popper: popper, winW: winW, winH: winH}
	g.frame = render.Pack(w.Snapshot())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
