package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"michelo851a1203/hexbounce/geom"
)

// Image draws onto an ebiten image with the vector package.
type Image struct {
	Dst       *ebiten.Image
	Antialias bool
}

// Ready is false until ebiten hands over a screen.
func (s Image) Ready() bool {
	return s.Dst != nil
}

func (s Image) Clear(x, y, w, h float64) {
	vector.DrawFilledRect(s.Dst, float32(x), float32(y), float32(w), float32(h), Background, false)
}

func (s Image) StrokePolygon(pts []geom.Vector, width float64, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		s.StrokeLine(a, b, width, clr)
	}
}

func (s Image) FillCircle(center geom.Vector, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.Dst, float32(center.X), float32(center.Y), float32(r), clr, s.Antialias)
}

func (s Image) StrokeLine(a, b geom.Vector, width float64, clr color.Color) {
	vector.StrokeLine(s.Dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, s.Antialias)
}
