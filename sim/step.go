package sim

import "math"

// Report summarizes the collision outcome of one frame.
type Report struct {
	Hit     bool
	Contact Contact
	// ImpactSpeed is |v·n| before resolution.
	ImpactSpeed float64
}

// Step runs one full frame: integrate, rebuild geometry, detect, resolve.
func Step(s *State, cfg Config) Report {
	Integrate(s, cfg)

	vertices := HexagonVertices(cfg.Center(), cfg.HexRadius, s.Hexagon.Rotation)
	edges := Edges(vertices, s.Obstacle.Segment())

	var r Report
	if c, ok := Detect(s.Ball.Pos, cfg.BallRadius, cfg.Center(), edges); ok {
		r = Report{
			Hit:         true,
			Contact:     c,
			ImpactSpeed: math.Abs(s.Ball.Vel.Dot(c.Normal)),
		}
		s.Ball = Resolve(s.Ball, c, cfg.Restitution, cfg.Friction)
	}

	s.Frame++
	return r
}
