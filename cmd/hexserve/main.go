package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"michelo851a1203/hexbounce/config"
	"michelo851a1203/hexbounce/engine"
	"michelo851a1203/hexbounce/logging"
	"michelo851a1203/hexbounce/render"
	"michelo851a1203/hexbounce/sim"
	"michelo851a1203/hexbounce/stream"
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

	if cfg.Debug {
		if logFile := logging.Setup(true); logFile != nil {
			defer logFile.Close()
		}
	}

	width, height := cfg.Bounds()
	eng, err := engine.New(cfg.Sim, sim.DefaultObstacle(cfg.Sim), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start simulation: %v\n", err)
		os.Exit(1)
	}

	hub := stream.NewHub(eng.Inbox, eng.RequestReset)

	var rec render.Recorder
	loop := engine.NewLoop(time.Second/time.Duration(cfg.TPS), func() {
		rec.Reset()
		eng.Frame(&rec)
		hub.Broadcast(stream.Frame{
			Seq:    eng.State().Frame,
			Width:  width,
			Height: height,
			Ops:    rec.Ops(),
		})
	}).Until(eng.Stopped)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Printf("streaming on %s/ws", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
			eng.Stop()
		}
	}()

	go func() {
		<-ctx.Done()
		eng.Stop()
	}()

	loop.Run(ctx)
	eng.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
