package engine

import (
	"log"
	"sync/atomic"

	"michelo851a1203/hexbounce/input"
	"michelo851a1203/hexbounce/render"
	"michelo851a1203/hexbounce/sim"
)

// Engine owns the simulation state. Update and Draw must be called from a
// single goroutine (the frame loop); other goroutines talk to it only
// through Inbox and Stop.
type Engine struct {
	cfg    sim.Config
	state  *sim.State
	bounds input.Bounds

	// Inbox carries pointer events from the host to the frame loop.
	Inbox *input.Queue

	// OnContact, if set, runs synchronously after a contact is resolved.
	OnContact func(sim.Report)

	resetRequested atomic.Bool
	stopped        atomic.Bool
}

// New validates cfg and spawns the initial state on a width×height surface.
func New(cfg sim.Config, obstacle sim.Obstacle, width, height float64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		state:  sim.NewState(cfg, obstacle),
		bounds: input.Bounds{Width: width, Height: height},
		Inbox:  input.NewQueue(input.DefaultQueueSize),
	}, nil
}

func (e *Engine) Config() sim.Config { return e.cfg }
func (e *Engine) Bounds() input.Bounds { return e.bounds }

// State exposes the live state. Only the frame loop may mutate it.
func (e *Engine) State() *sim.State { return e.state }

// RequestReset asks the next Update to respawn the ball. Safe from any goroutine.
func (e *Engine) RequestReset() {
	e.resetRequested.Store(true)
}

// Update drains pending input, then advances physics one frame. Once
// the engine is stopped it returns an empty report and leaves the state
// alone.
func (e *Engine) Update() sim.Report {
	if e.Stopped() {
		return sim.Report{}
	}
	if e.resetRequested.CompareAndSwap(true, false) {
		e.state.Reset(e.cfg)
		log.Printf("simulation reset")
	}

	e.Inbox.Drain(func(ev input.Event) {
		before := input.StateOf(e.state.Obstacle)
		after := input.Apply(&e.state.Obstacle, ev, e.bounds)
		if before != after {
			log.Printf("obstacle %s -> %s on %s at (%.0f, %.0f)", before, after, ev.Kind, ev.Pos.X, ev.Pos.Y)
		}
	})

	r := sim.Step(e.state, e.cfg)
	if r.Hit && e.OnContact != nil {
		e.OnContact(r)
	}
	return r
}

// Draw renders the current state. A surface that is not ready yet skips
// this frame's drawing; the next frame tries again.
func (e *Engine) Draw(s render.Surface) {
	if e.Stopped() || !render.Ready(s) {
		return
	}
	render.DrawScene(s, e.state, e.cfg, e.bounds.Width, e.bounds.Height)
}

// Frame is Update followed by Draw.
func (e *Engine) Frame(s render.Surface) sim.Report {
	r := e.Update()
	e.Draw(s)
	return r
}

// Stop marks the engine as torn down. Later Update, Draw and Frame calls
// are no-ops, and a Loop built with Until(e.Stopped) ends.
func (e *Engine) Stop() {
	if e.stopped.CompareAndSwap(false, true) {
		log.Printf("engine stopped")
	}
}

func (e *Engine) Stopped() bool {
	return e.stopped.Load()
}
