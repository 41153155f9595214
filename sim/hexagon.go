package sim

import (
	"math"

	"michelo851a1203/hexbounce/geom"
)

// HexagonVertices computes the 6 vertices of the rotating hexagon in
// increasing-angle order. Edge i joins vertex i and vertex (i+1)%6.
func HexagonVertices(center geom.Vector, radius, rotation float64) [6]geom.Vector {
	var vertices [6]geom.Vector
	for i := range vertices {
		vertices[i] = geom.Polar(center, radius, rotation+float64(i)*math.Pi/3)
	}
	return vertices
}

// Edges returns the hexagon edges in vertex order followed by the extra
// segments, which is the order the detector scans them in.
func Edges(vertices [6]geom.Vector, extra ...geom.Segment) []geom.Segment {
	edges := make([]geom.Segment, 0, len(vertices)+len(extra))
	for i := range vertices {
		edges = append(edges, geom.Segment{A: vertices[i], B: vertices[(i+1)%len(vertices)]})
	}
	return append(edges, extra...)
}
