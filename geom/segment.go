package geom

// Segment is a finite line segment from A to B.
type Segment struct {
	A, B Vector
}

// Midpoint of the segment.
func (s Segment) Midpoint() Vector {
	return Vector{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// Degenerate reports whether A and B coincide.
func (s Segment) Degenerate() bool {
	return s.B.Sub(s.A).LenSq() == 0
}

// ClosestPoint returns the point on the segment closest to p, with the
// projection parameter clamped to [0, 1]. ok is false for a zero-length
// segment, where the projection is undefined.
func (s Segment) ClosestPoint(p Vector) (closest Vector, ok bool) {
	ab := s.B.Sub(s.A)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return s.A, false
	}
	t := Clamp(p.Sub(s.A).Dot(ab)/lenSq, 0, 1)
	return s.A.Add(ab.Mul(t)), true
}

// DistanceTo returns the distance from p to the closest point on the segment.
func (s Segment) DistanceTo(p Vector) float64 {
	c, _ := s.ClosestPoint(p)
	return Dist(p, c)
}
