package sim

import (
	"errors"
	"math"
	"testing"

	"michelo851a1203/hexbounce/geom"
)

const eps = 1e-9

func farObstacle() Obstacle {
	return Obstacle{Pos: geom.Vector{X: -500, Y: -500}, Width: 10, Height: 10}
}

func TestIntegrateDampsEachAxisBeforeGravity(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	s := &State{Ball: Ball{Pos: geom.Vector{X: 400, Y: 300}, Vel: geom.Vector{X: 3, Y: -4}}}

	Integrate(s, cfg)

	if got, want := s.Ball.Vel.X, 3*cfg.AirResistance; got != want {
		t.Fatalf("vx = %v, want %v", got, want)
	}
	if math.Abs(s.Ball.Vel.X) >= 3 {
		t.Fatalf("|vx| did not decrease: %v", s.Ball.Vel.X)
	}
	if got, want := s.Ball.Vel.Y, (-4+cfg.Gravity)*cfg.AirResistance; got != want {
		t.Fatalf("vy = %v, want %v", got, want)
	}
	if math.Abs(s.Ball.Vel.Y) >= math.Abs(-4+cfg.Gravity) {
		t.Fatalf("|vy| = %v not below undamped %v", s.Ball.Vel.Y, -4+cfg.Gravity)
	}
	if got, want := s.Ball.Pos, (geom.Vector{X: 400 + s.Ball.Vel.X, Y: 300 + s.Ball.Vel.Y}); got != want {
		t.Fatalf("pos = %v, want %v (moved by damped velocity)", got, want)
	}
}

func TestRotationAccumulates(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	cfg.RotationSpeed = 0.25 // exactly representable
	s := NewState(cfg, farObstacle())
	s.Hexagon.Rotation = 1

	const n = 1000
	for i := 0; i < n; i++ {
		Step(s, cfg)
	}
	if got, want := s.Hexagon.Rotation, 1+n*cfg.RotationSpeed; got != want {
		t.Fatalf("rotation after %d frames = %v, want %v", n, got, want)
	}
	if s.Frame != n {
		t.Fatalf("frame = %d, want %d", s.Frame, n)
	}

	cfg = DefaultConfig(800, 600)
	s = NewState(cfg, farObstacle())
	for i := 0; i < 100; i++ {
		Step(s, cfg)
	}
	if got, want := s.Hexagon.Rotation, 100*cfg.RotationSpeed; math.Abs(got-want) > eps {
		t.Fatalf("rotation = %v, want %v", got, want)
	}
}

func TestHexagonVertices(t *testing.T) {
	center := geom.Vector{X: 400, Y: 300}
	v := HexagonVertices(center, 200, 0)

	if math.Abs(v[0].X-600) > eps || math.Abs(v[0].Y-300) > eps {
		t.Fatalf("vertex 0 = %v, want (600, 300)", v[0])
	}
	for i, p := range v {
		if d := geom.Dist(p, center); math.Abs(d-200) > eps {
			t.Fatalf("vertex %d at distance %v, want 200", i, d)
		}
		next := v[(i+1)%6]
		// regular hexagon: side equals circumradius
		if d := geom.Dist(p, next); math.Abs(d-200) > eps {
			t.Fatalf("edge %d length %v, want 200", i, d)
		}
	}

	edges := Edges(v, geom.Segment{A: geom.Vector{X: 1, Y: 1}, B: geom.Vector{X: 2, Y: 2}})
	if len(edges) != 7 {
		t.Fatalf("edges = %d, want 7", len(edges))
	}
	if edges[5].A != v[5] || edges[5].B != v[0] {
		t.Fatalf("edge 5 = %v, want closing edge v5->v0", edges[5])
	}
}

// penetratingBall places the ball just inside edge i, overlapping it by half its radius.
func penetratingBall(cfg Config, rotation float64, i int) (geom.Vector, []geom.Segment) {
	edges := Edges(HexagonVertices(cfg.Center(), cfg.HexRadius, rotation))
	mid := edges[i].Midpoint()
	inward := cfg.Center().Sub(mid).Normalize()
	return mid.Add(inward.Mul(cfg.BallRadius / 2)), edges
}

func TestDetectNormalPointsToInterior(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	for _, rotation := range []float64{0, 0.3, 2.1, 17.5} {
		for i := 0; i < 6; i++ {
			pos, edges := penetratingBall(cfg, rotation, i)
			c, ok := Detect(pos, cfg.BallRadius, cfg.Center(), edges)
			if !ok {
				t.Fatalf("rotation %v edge %d: no contact", rotation, i)
			}
			if c.Edge != i {
				t.Fatalf("rotation %v: contact on edge %d, want %d", rotation, c.Edge, i)
			}
			if math.Abs(c.Normal.Len()-1) > eps {
				t.Fatalf("normal length = %v, want 1", c.Normal.Len())
			}
			outward := edges[i].Midpoint().Sub(cfg.Center())
			if d := c.Normal.Dot(outward); d >= 0 {
				t.Fatalf("rotation %v edge %d: dot(normal, mid-center) = %v, want < 0", rotation, i, d)
			}
			if math.Abs(c.Overlap-cfg.BallRadius/2) > eps {
				t.Fatalf("overlap = %v, want %v", c.Overlap, cfg.BallRadius/2)
			}
		}
	}
}

func TestResolveRemovesPenetration(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	for i := 0; i < 6; i++ {
		pos, edges := penetratingBall(cfg, 0.7, i)
		c, ok := Detect(pos, cfg.BallRadius, cfg.Center(), edges)
		if !ok {
			t.Fatalf("edge %d: no contact", i)
		}
		b := Resolve(Ball{Pos: pos, Vel: geom.Vector{X: 1, Y: 3}}, c, cfg.Restitution, cfg.Friction)
		if d := edges[i].DistanceTo(b.Pos); d < cfg.BallRadius-eps {
			t.Fatalf("edge %d: distance after resolve = %v, want >= %v", i, d, cfg.BallRadius)
		}
	}
}

func TestResolveVelocity(t *testing.T) {
	c := Contact{Normal: geom.Vector{X: 0, Y: -1}, Overlap: 2}
	in := Ball{Pos: geom.Vector{X: 10, Y: 10}, Vel: geom.Vector{X: 0, Y: 5}}

	tests := []struct {
		name                  string
		restitution, friction float64
		wantVel               geom.Vector
	}{
		{"elastic", 1, 1, geom.Vector{X: 0, Y: -5}},
		{"damped", 1, 0.5, geom.Vector{X: 0, Y: -2.5}},
		{"bouncy", 1.85, 1, geom.Vector{X: 0, Y: 5 - 2.85*5}},
		{"dead", 0, 1, geom.Vector{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		got := Resolve(in, c, tt.restitution, tt.friction)
		if math.Abs(got.Vel.X-tt.wantVel.X) > eps || math.Abs(got.Vel.Y-tt.wantVel.Y) > eps {
			t.Fatalf("%s: vel = %v, want %v", tt.name, got.Vel, tt.wantVel)
		}
		if want := (geom.Vector{X: 10, Y: 10 - 2*PositionSlop}); math.Abs(got.Pos.Y-want.Y) > eps || got.Pos.X != want.X {
			t.Fatalf("%s: pos = %v, want %v", tt.name, got.Pos, want)
		}
	}
}

func TestDetectFirstEdgeWins(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	v := HexagonVertices(cfg.Center(), cfg.HexRadius, 0)
	edges := Edges(v)

	// vertex 1 is shared by edges 0 and 1
	pos := v[1].Add(cfg.Center().Sub(v[1]).Normalize().Mul(3))
	if edges[0].DistanceTo(pos) > cfg.BallRadius || edges[1].DistanceTo(pos) > cfg.BallRadius {
		t.Fatal("setup: ball should overlap both edges")
	}

	c, ok := Detect(pos, cfg.BallRadius, cfg.Center(), edges)
	if !ok {
		t.Fatal("expected contact near vertex")
	}
	if c.Edge != 0 {
		t.Fatalf("contact edge = %d, want 0", c.Edge)
	}
}

func TestDetectObstacleAfterHexagon(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	obstacle := Obstacle{Pos: geom.Vector{X: 350, Y: 300}, Width: 100, Height: 0}
	edges := Edges(HexagonVertices(cfg.Center(), cfg.HexRadius, 0), obstacle.Segment())

	c, ok := Detect(geom.Vector{X: 400, Y: 305}, cfg.BallRadius, cfg.Center(), edges)
	if !ok {
		t.Fatal("expected obstacle contact")
	}
	if c.Edge != ObstacleEdge {
		t.Fatalf("edge = %d, want %d", c.Edge, ObstacleEdge)
	}
	if math.Abs(c.Overlap-5) > eps {
		t.Fatalf("overlap = %v, want 5", c.Overlap)
	}
}

func TestDegenerateHexagonNeverCollides(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	cfg.HexRadius = 0
	edges := Edges(HexagonVertices(cfg.Center(), 0, 0.4))

	if _, ok := Detect(cfg.Center(), cfg.BallRadius, cfg.Center(), edges); ok {
		t.Fatal("zero-length edges produced a contact")
	}

	s := NewState(cfg, farObstacle())
	for i := 0; i < 50; i++ {
		Step(s, cfg)
	}
	if math.IsNaN(s.Ball.Pos.X) || math.IsNaN(s.Ball.Pos.Y) || math.IsNaN(s.Ball.Vel.Y) {
		t.Fatalf("state went NaN: %+v", s.Ball)
	}
}

func TestScenarioFirstFrame(t *testing.T) {
	cfg := Config{
		CenterX: 400, CenterY: 300,
		HexRadius: 200, BallRadius: 10,
		Gravity: 0.5, AirResistance: 0.99,
		RotationSpeed: 0.02, Restitution: 1.85, Friction: 0.7,
	}
	s := &State{
		Ball:     Ball{Pos: geom.Vector{X: 400, Y: 300 - 190}, Vel: geom.Vector{X: 2, Y: 0}},
		Obstacle: DefaultObstacle(cfg),
	}

	r := Step(s, cfg)

	if r.Hit {
		t.Fatalf("unexpected contact on first frame: %+v", r.Contact)
	}
	if s.Hexagon.Rotation != 0.02 {
		t.Fatalf("rotation = %v, want 0.02", s.Hexagon.Rotation)
	}
	if got, want := s.Ball.Vel.Y, 0.5*0.99; got != want {
		t.Fatalf("vy = %v, want %v", got, want)
	}
	if got, want := s.Ball.Vel.X, 2*0.99; got != want {
		t.Fatalf("vx = %v, want %v", got, want)
	}
	if got, want := s.Ball.Pos, (geom.Vector{X: 400 + 2*0.99, Y: 110 + 0.5*0.99}); got != want {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestStepReportsImpact(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	cfg.Gravity = 0
	cfg.RotationSpeed = 0
	s := NewState(cfg, farObstacle())

	// bottom edge (between vertices 1 and 2) sits at the apothem below center
	apothem := cfg.HexRadius * math.Cos(math.Pi/6)
	s.Ball.Pos = geom.Vector{X: cfg.CenterX, Y: cfg.CenterY + apothem - cfg.BallRadius - 1}
	s.Ball.Vel = geom.Vector{X: 0, Y: 4}

	r := Step(s, cfg)
	if !r.Hit {
		t.Fatal("expected a contact with the bottom edge")
	}
	if r.Contact.Edge != 1 {
		t.Fatalf("edge = %d, want 1", r.Contact.Edge)
	}
	if math.Abs(r.ImpactSpeed-4*cfg.AirResistance) > eps {
		t.Fatalf("impact speed = %v, want %v", r.ImpactSpeed, 4*cfg.AirResistance)
	}
	if s.Ball.Vel.Y >= 0 {
		t.Fatalf("ball still moving down after bounce: vy = %v", s.Ball.Vel.Y)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"restitution above one", func(c *Config) { c.Restitution = 3 }, true},
		{"zero air resistance", func(c *Config) { c.AirResistance = 0 }, false},
		{"air resistance above one", func(c *Config) { c.AirResistance = 1.01 }, false},
		{"negative restitution", func(c *Config) { c.Restitution = -0.1 }, false},
		{"friction above one", func(c *Config) { c.Friction = 1.5 }, false},
		{"zero ball radius", func(c *Config) { c.BallRadius = 0 }, false},
		{"negative hex radius", func(c *Config) { c.HexRadius = -1 }, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig(800, 600)
		tt.mutate(&cfg)
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestNewStateAndReset(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	s := NewState(cfg, DefaultObstacle(cfg))
	if want := (geom.Vector{X: 400, Y: 300 - 170}); s.Ball.Pos != want {
		t.Fatalf("spawn = %v, want %v", s.Ball.Pos, want)
	}
	if s.Ball.Vel != LaunchVelocity {
		t.Fatalf("launch velocity = %v, want %v", s.Ball.Vel, LaunchVelocity)
	}

	for i := 0; i < 30; i++ {
		Step(s, cfg)
	}
	s.Obstacle.Pos = geom.Vector{X: 10, Y: 20}
	s.Obstacle.Dragging = true

	s.Reset(cfg)
	if s.Frame != 0 || s.Hexagon.Rotation != 0 {
		t.Fatalf("reset left frame=%d rotation=%v", s.Frame, s.Hexagon.Rotation)
	}
	if s.Obstacle.Pos != (geom.Vector{X: 10, Y: 20}) {
		t.Fatalf("reset moved obstacle to %v", s.Obstacle.Pos)
	}
	if s.Obstacle.Dragging {
		t.Fatal("reset kept drag active")
	}
}
