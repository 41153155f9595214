package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"michelo851a1203/hexbounce/geom"
)

// CellGrid is the part of tcell.Screen the terminal surface writes to.
type CellGrid interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Runes used when rasterizing into character cells.
const (
	RuneBlank = ' '
	RuneThin  = '·'
	RuneThick = '█'
	RuneBall  = '●'
)

// Cells rasterizes canvas coordinates onto a terminal cell grid, scaling
// the canvas to whatever size the grid reports.
type Cells struct {
	Grid             CellGrid
	CanvasW, CanvasH float64
}

// Ready is false without a grid or with a zero canvas.
func (s Cells) Ready() bool {
	return s.Grid != nil && s.CanvasW > 0 && s.CanvasH > 0
}

func (s Cells) scale() (sx, sy float64) {
	cols, rows := s.Grid.Size()
	return float64(cols) / s.CanvasW, float64(rows) / s.CanvasH
}

// ToCell maps a canvas point to a cell.
func (s Cells) ToCell(p geom.Vector) (col, row int) {
	sx, sy := s.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// ToCanvas maps a cell back to the canvas point at its center.
func (s Cells) ToCanvas(col, row int) geom.Vector {
	sx, sy := s.scale()
	return geom.Vector{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}

func (s Cells) set(col, row int, r rune, st tcell.Style) {
	cols, rows := s.Grid.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.Grid.SetContent(col, row, r, nil, st)
}

func (s Cells) Clear(x, y, w, h float64) {
	c0, r0 := s.ToCell(geom.Vector{X: x, Y: y})
	c1, r1 := s.ToCell(geom.Vector{X: x + w, Y: y + h})
	st := cellStyle(Background)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.set(col, row, RuneBlank, st)
		}
	}
}

func (s Cells) StrokePolygon(pts []geom.Vector, width float64, clr color.Color) {
	for i := range pts {
		s.StrokeLine(pts[i], pts[(i+1)%len(pts)], width, clr)
	}
}

// FillCircle marks every cell whose center lies inside the circle, and
// always the cell holding the center so small balls stay visible.
func (s Cells) FillCircle(center geom.Vector, r float64, clr color.Color) {
	st := cellStyle(clr)
	c0, r0 := s.ToCell(geom.Vector{X: center.X - r, Y: center.Y - r})
	c1, r1 := s.ToCell(geom.Vector{X: center.X + r, Y: center.Y + r})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if geom.Dist(s.ToCanvas(col, row), center) <= r {
				s.set(col, row, RuneBall, st)
			}
		}
	}
	col, row := s.ToCell(center)
	s.set(col, row, RuneBall, st)
}

// StrokeLine walks the segment one cell at a time (DDA).
func (s Cells) StrokeLine(a, b geom.Vector, width float64, clr color.Color) {
	st := cellStyle(clr)
	r := RuneThin
	if width >= 2 {
		r = RuneThick
	}

	c0, r0 := s.ToCell(a)
	c1, r1 := s.ToCell(b)
	dc, dr := float64(c1-c0), float64(r1-r0)
	steps := int(math.Max(math.Abs(dc), math.Abs(dr)))
	if steps == 0 {
		s.set(c0, r0, r, st)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.set(c0+int(math.Round(dc*t)), r0+int(math.Round(dr*t)), r, st)
	}
}

func tcellColor(clr color.Color) tcell.Color {
	c := color.RGBAModel.Convert(clr).(color.RGBA)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func cellStyle(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(clr)).Background(tcellColor(Background))
}
