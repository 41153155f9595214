package sim

// Integrate advances one frame with a semi-implicit Euler step. The order
// is fixed: rotate, add gravity, damp, then move with the damped velocity.
func Integrate(s *State, cfg Config) {
	s.Hexagon.Rotation += cfg.RotationSpeed

	s.Ball.Vel.Y += cfg.Gravity

	s.Ball.Vel.X *= cfg.AirResistance
	s.Ball.Vel.Y *= cfg.AirResistance

	s.Ball.Pos.X += s.Ball.Vel.X
	s.Ball.Pos.Y += s.Ball.Vel.Y
}
