package render

import (
	"fmt"
	"image/color"

	"michelo851a1203/hexbounce/geom"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpClear   OpKind = "clear"
	OpPolygon OpKind = "polygon"
	OpCircle  OpKind = "circle"
	OpLine    OpKind = "line"
)

// Point is the wire form of a vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Op is one draw call in a form that survives JSON encoding.
type Op struct {
	Kind   OpKind  `json:"kind"`
	Points []Point `json:"points,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// Recorder is a Surface that keeps the draw calls instead of rasterizing
// them. Reset between frames.
type Recorder struct {
	ops []Op
}

// Ready is false for a nil recorder.
func (r *Recorder) Ready() bool {
	return r != nil
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

func (r *Recorder) Clear(x, y, w, h float64) {
	r.ops = append(r.ops, Op{
		Kind:   OpClear,
		Points: []Point{{x, y}, {x + w, y + h}},
		Color:  Hex(Background),
	})
}

func (r *Recorder) StrokePolygon(pts []geom.Vector, width float64, clr color.Color) {
	op := Op{Kind: OpPolygon, Width: width, Color: Hex(clr)}
	for _, p := range pts {
		op.Points = append(op.Points, Point{p.X, p.Y})
	}
	r.ops = append(r.ops, op)
}

func (r *Recorder) FillCircle(center geom.Vector, radius float64, clr color.Color) {
	r.ops = append(r.ops, Op{
		Kind:   OpCircle,
		Points: []Point{{center.X, center.Y}},
		Radius: radius,
		Color:  Hex(clr),
	})
}

func (r *Recorder) StrokeLine(a, b geom.Vector, width float64, clr color.Color) {
	r.ops = append(r.ops, Op{
		Kind:   OpLine,
		Points: []Point{{a.X, a.Y}, {b.X, b.Y}},
		Width:  width,
		Color:  Hex(clr),
	})
}

// Hex formats a color as #rrggbb.
func Hex(clr color.Color) string {
	c := color.RGBAModel.Convert(clr).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
