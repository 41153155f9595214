package sim

import "michelo851a1203/hexbounce/geom"

const (
	// SpawnMargin is the gap kept between the spawned ball and the top vertex radius.
	SpawnMargin = 20.0
	// ObstacleEdge is the edge index reported for obstacle contacts.
	ObstacleEdge = 6
)

// LaunchVelocity is the ball's velocity at spawn.
var LaunchVelocity = geom.Vector{X: 2, Y: 0}

// Ball is the single simulated body.
type Ball struct {
	Pos geom.Vector
	Vel geom.Vector
}

// Hexagon carries the container's rotation. The angle grows without bound;
// trig periodicity handles the wrap.
type Hexagon struct {
	Rotation float64
}

// Obstacle is a line drawn diagonally across a draggable bounding box.
// Only input handling writes it.
type Obstacle struct {
	Pos           geom.Vector // top-left corner
	Width, Height float64
	Dragging      bool
}

// Segment returns the obstacle edge, top-left to bottom-right.
func (o Obstacle) Segment() geom.Segment {
	return geom.Segment{
		A: o.Pos,
		B: geom.Vector{X: o.Pos.X + o.Width, Y: o.Pos.Y + o.Height},
	}
}

// DefaultObstacle sits in the lower half of the hexagon.
func DefaultObstacle(cfg Config) Obstacle {
	return Obstacle{
		Pos:    geom.Vector{X: cfg.CenterX - 60, Y: cfg.CenterY + 60},
		Width:  120,
		Height: 40,
	}
}

// State is the whole mutable simulation, owned by the frame loop.
type State struct {
	Ball     Ball
	Hexagon  Hexagon
	Obstacle Obstacle
	Frame    uint64
}

// NewState spawns the ball above the hexagon center.
func NewState(cfg Config, obstacle Obstacle) *State {
	return &State{
		Ball: Ball{
			Pos: geom.Vector{
				X: cfg.CenterX,
				Y: cfg.CenterY - (cfg.HexRadius - cfg.BallRadius - SpawnMargin),
			},
			Vel: LaunchVelocity,
		},
		Obstacle: obstacle,
	}
}

// Reset respawns the ball and rewinds rotation. The obstacle is kept
// where the user left it, minus any drag in progress.
func (s *State) Reset(cfg Config) {
	obstacle := s.Obstacle
	obstacle.Dragging = false
	*s = *NewState(cfg, obstacle)
}
