package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"michelo851a1203/hexbounce/sim"
)

const (
	SampleRate = beep.SampleRate(44100)

	basePitch = 330.0  // Hz at zero impact speed
	pitchStep = 55.0   // Hz per pixel/frame of impact speed
	maxPitch  = 1760.0 // keeps well under Nyquist
)

// Cue plays a short tone when the ball bounces. Harder hits are higher
// pitched; resting contacts below MinSpeed and hits closer together than
// MinGap are skipped.
type Cue struct {
	Duration time.Duration
	MinGap   time.Duration
	MinSpeed float64
	Gain     float64 // beep effects.Gain, 0 is unity

	// Play hands a tone to the output. Start sets it to speaker.Play.
	Play func(beep.Streamer)
	Now  func() time.Time

	last    time.Time
	started bool
}

func NewCue() *Cue {
	return &Cue{
		Duration: 40 * time.Millisecond,
		MinGap:   60 * time.Millisecond,
		MinSpeed: 1,
		Gain:     -0.6,
		Now:      time.Now,
	}
}

// Start opens the speaker. Failure is not fatal to the simulation; the
// caller logs it and runs silent.
func (c *Cue) Start() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.started = true
	c.Play = func(s beep.Streamer) { speaker.Play(s) }
	return nil
}

func (c *Cue) Close() {
	if c.started {
		speaker.Close()
		c.started = false
	}
}

// Pitch maps impact speed to a tone frequency.
func Pitch(speed float64) float64 {
	return math.Min(basePitch+pitchStep*math.Abs(speed), maxPitch)
}

// Tone builds the finite streamer for one bounce.
func (c *Cue) Tone(speed float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, Pitch(speed))
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(SampleRate.N(c.Duration), sine),
		Gain:     c.Gain,
	}, nil
}

// OnContact is an engine contact listener.
func (c *Cue) OnContact(r sim.Report) {
	if c.Play == nil || !r.Hit || r.ImpactSpeed < c.MinSpeed {
		return
	}
	now := c.Now()
	if !c.last.IsZero() && now.Sub(c.last) < c.MinGap {
		return
	}
	tone, err := c.Tone(r.ImpactSpeed)
	if err != nil {
		return
	}
	c.last = now
	c.Play(tone)
}
