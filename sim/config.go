package sim

import (
	"errors"
	"fmt"

	"michelo851a1203/hexbounce/geom"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the tuning for one run. It is never mutated while the
// simulation runs; all rates are per frame.
type Config struct {
	CenterX, CenterY float64 // drawing-surface center
	HexRadius        float64 // center to vertex
	BallRadius       float64
	Gravity          float64 // added to vy each frame
	AirResistance    float64 // velocity multiplier, (0, 1]
	RotationSpeed    float64 // radians per frame
	Restitution      float64 // >1 adds energy on bounce
	Friction         float64 // post-bounce velocity multiplier, [0, 1]
}

// DefaultConfig returns the demo tuning centered on a width×height surface.
func DefaultConfig(width, height float64) Config {
	return Config{
		CenterX:       width / 2,
		CenterY:       height / 2,
		HexRadius:     200,
		BallRadius:    10,
		Gravity:       0.5,
		AirResistance: 0.99,
		RotationSpeed: 0.02,
		Restitution:   1.85,
		Friction:      0.7,
	}
}

// Center returns the hexagon center as a vector.
func (c Config) Center() geom.Vector {
	return geom.Vector{X: c.CenterX, Y: c.CenterY}
}

// Validate checks the parameter ranges.
func (c Config) Validate() error {
	switch {
	case c.HexRadius < 0:
		return fmt.Errorf("%w: hex radius %g is negative", ErrInvalidConfig, c.HexRadius)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius %g must be positive", ErrInvalidConfig, c.BallRadius)
	case c.AirResistance <= 0 || c.AirResistance > 1:
		return fmt.Errorf("%w: air resistance %g outside (0, 1]", ErrInvalidConfig, c.AirResistance)
	case c.Restitution < 0:
		return fmt.Errorf("%w: restitution %g is negative", ErrInvalidConfig, c.Restitution)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %g outside [0, 1]", ErrInvalidConfig, c.Friction)
	}
	return nil
}
