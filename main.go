package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"michelo851a1203/hexbounce/audio"
	"michelo851a1203/hexbounce/config"
	"michelo851a1203/hexbounce/engine"
	"michelo851a1203/hexbounce/geom"
	"michelo851a1203/hexbounce/input"
	"michelo851a1203/hexbounce/logging"
	"michelo851a1203/hexbounce/render"
	"michelo851a1203/hexbounce/sim"
)

// Game adapts the engine to ebiten's Update/Draw/Layout loop. ebiten is
// the frame scheduler here; returning ebiten.Termination is the stop hook.
type Game struct {
	engine        *engine.Engine
	pointer       input.Tracker
	width, height int
}

// Update polls the mouse, queues pointer events and advances one frame.
func (g *Game) Update() error {
	if g.engine.Stopped() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.engine.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.RequestReset()
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for _, ev := range g.pointer.Sample(geom.Vector{X: float64(x), Y: float64(y)}, pressed) {
		g.engine.Inbox.Push(ev)
	}

	g.engine.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(render.Image{Dst: screen, Antialias: true})
}

// Layout keeps the canvas at its configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Finalize(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if logFile := logging.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	width, height := cfg.Bounds()
	eng, err := engine.New(cfg.Sim, sim.DefaultObstacle(cfg.Sim), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start simulation: %v\n", err)
		os.Exit(1)
	}

	if cfg.Sound {
		cue := audio.NewCue()
		if err := cue.Start(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			eng.OnContact = cue.OnContact
			defer cue.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Bouncing Ball in a Spinning Hexagon")
	ebiten.SetTPS(cfg.TPS)

	game := &Game{engine: eng, width: cfg.Width, height: cfg.Height}
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Game exited: %v\n", err)
		os.Exit(1)
	}
	eng.Stop()
}
