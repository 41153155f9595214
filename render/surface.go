package render

import (
	"image/color"

	"michelo851a1203/hexbounce/geom"
	"michelo851a1203/hexbounce/sim"
)

// Surface is the drawing collaborator. Coordinates are canvas pixels with
// y pointing down. The size is fixed for the lifetime of a run.
type Surface interface {
	Clear(x, y, w, h float64)
	StrokePolygon(pts []geom.Vector, width float64, clr color.Color)
	FillCircle(center geom.Vector, r float64, clr color.Color)
	StrokeLine(a, b geom.Vector, width float64, clr color.Color)
}

// Ready reports whether s can be drawn on. Surfaces that implement
// Ready() bool decide for themselves; a nil interface never is.
func Ready(s Surface) bool {
	if s == nil {
		return false
	}
	if r, ok := s.(interface{ Ready() bool }); ok {
		return r.Ready()
	}
	return true
}

// Scene palette and stroke widths.
var (
	Background   = color.RGBA{30, 30, 30, 255}
	HexagonColor = color.RGBA{255, 255, 255, 255}
	BallColor    = color.RGBA{255, 0, 0, 255}
	ObstacleIdle = color.RGBA{80, 160, 255, 255}
	ObstacleDrag = color.RGBA{255, 200, 60, 255}
)

const (
	HexagonWidth  = 1.0
	ObstacleWidth = 4.0
)

// DrawScene clears the surface and draws the hexagon, ball and obstacle
// for the current state.
func DrawScene(s Surface, st *sim.State, cfg sim.Config, width, height float64) {
	s.Clear(0, 0, width, height)

	vertices := sim.HexagonVertices(cfg.Center(), cfg.HexRadius, st.Hexagon.Rotation)
	s.StrokePolygon(vertices[:], HexagonWidth, HexagonColor)

	s.FillCircle(st.Ball.Pos, cfg.BallRadius, BallColor)

	seg := st.Obstacle.Segment()
	clr := ObstacleIdle
	if st.Obstacle.Dragging {
		clr = ObstacleDrag
	}
	s.StrokeLine(seg.A, seg.B, ObstacleWidth, clr)
}
