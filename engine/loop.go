package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is one frame at 60 Hz.
const DefaultInterval = time.Second / 60

// Loop calls a frame callback on a fixed tick until stopped. It is the
// scheduling collaborator for hosts without their own frame clock.
type Loop struct {
	interval time.Duration
	frame    func()
	until    func() bool

	frames  atomic.Uint64
	running atomic.Bool

	quit     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewLoop(interval time.Duration, frame func()) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		frame:    frame,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Until makes the loop end before the next frame once done reports
// true, so a host's teardown hook stops frames on its own. Call before Run.
func (l *Loop) Until(done func() bool) *Loop {
	l.until = done
	return l
}

// Run blocks, invoking the frame callback once per tick, until Stop is
// called, ctx is cancelled or the Until predicate holds. A Loop runs at
// most once; build a new Loop to resume, state carries over in whatever
// the callback closes over.
func (l *Loop) Run(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.quit:
			return
		case <-ticker.C:
			// a tick and a stop can both be ready; stop wins
			select {
			case <-l.quit:
				return
			default:
			}
			if l.until != nil && l.until() {
				return
			}
			l.frame()
			l.frames.Add(1)
		}
	}
}

// Stop prevents any further frame callbacks. Safe to call more than
// once, from any goroutine, including from inside the callback.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Frames is the number of completed frame callbacks.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
