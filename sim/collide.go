package sim

import "michelo851a1203/hexbounce/geom"

// PositionSlop over-corrects de-penetration so the ball does not land
// exactly on the edge again at floating-point boundaries.
const PositionSlop = 1.1

// Contact describes one overlap between the ball and an edge.
type Contact struct {
	Normal  geom.Vector // unit length, oriented toward the hexagon center side
	Overlap float64     // ballRadius - distance, >= 0
	Edge    int         // index into the scanned edge list
}

// Detect scans edges in order and returns the first one the ball touches.
// Later edges are not examined once a hit is found, so at most one
// contact is resolved per frame even when the ball straddles a vertex.
func Detect(pos geom.Vector, radius float64, center geom.Vector, edges []geom.Segment) (Contact, bool) {
	for i, e := range edges {
		closest, ok := e.ClosestPoint(pos)
		if !ok {
			// zero-length edge, nothing to collide with
			continue
		}

		distance := geom.Dist(pos, closest)
		if distance > radius {
			continue
		}

		ab := e.B.Sub(e.A)
		normal := ab.Perp().Neg()
		if normal.Dot(e.Midpoint().Sub(center)) > 0 {
			normal = normal.Neg()
		}

		return Contact{
			Normal:  normal.Normalize(),
			Overlap: radius - distance,
			Edge:    i,
		}, true
	}
	return Contact{}, false
}

// Resolve reflects the normal velocity component scaled by (1+restitution),
// damps the whole velocity by friction, and pushes the ball out along the
// contact normal.
func Resolve(b Ball, c Contact, restitution, friction float64) Ball {
	n := c.Normal
	vn := b.Vel.Dot(n)

	b.Vel = b.Vel.Sub(n.Mul((1 + restitution) * vn)).Mul(friction)
	b.Pos = b.Pos.Add(n.Mul(c.Overlap * PositionSlop))
	return b
}
