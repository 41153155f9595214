package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"michelo851a1203/hexbounce/audio"
	"michelo851a1203/hexbounce/config"
	"michelo851a1203/hexbounce/engine"
	"michelo851a1203/hexbounce/input"
	"michelo851a1203/hexbounce/logging"
	"michelo851a1203/hexbounce/render"
	"michelo851a1203/hexbounce/sim"
)

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

	// log lines would corrupt the terminal, so they go to a file or nowhere
	if logFile := logging.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	width, height := cfg.Bounds()
	eng, err := engine.New(cfg.Sim, sim.DefaultObstacle(cfg.Sim), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start simulation: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	// restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nhexterm crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	if cfg.Sound {
		cue := audio.NewCue()
		if err := cue.Start(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			eng.OnContact = cue.OnContact
			defer cue.Close()
		}
	}

	surface := render.Cells{Grid: screen, CanvasW: width, CanvasH: height}

	loop := engine.NewLoop(time.Second/time.Duration(cfg.TPS), func() {
		eng.Frame(surface)
		screen.Show()
	}).Until(eng.Stopped)

	go pollEvents(screen, surface, eng)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		eng.Stop()
	}()

	loop.Run(ctx)
	eng.Stop()
}

// pollEvents turns terminal events into engine input until the screen
// is finalized.
func pollEvents(screen tcell.Screen, surface render.Cells, eng *engine.Engine) {
	var pointer input.Tracker
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				eng.Stop()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				eng.RequestReset()
			}
		case *tcell.EventMouse:
			col, row := ev.Position()
			pressed := ev.Buttons()&tcell.Button1 != 0
			for _, pe := range pointer.Sample(surface.ToCanvas(col, row), pressed) {
				eng.Inbox.Push(pe)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
