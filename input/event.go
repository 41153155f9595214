package input

import (
	"fmt"

	"michelo851a1203/hexbounce/geom"
)

// Kind identifies a pointer event.
type Kind uint8

const (
	PointerDown Kind = iota + 1
	PointerMove
	PointerUp
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a wire name back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "down":
		return PointerDown, nil
	case "move":
		return PointerMove, nil
	case "up":
		return PointerUp, nil
	}
	return 0, fmt.Errorf("unknown pointer event %q", s)
}

// Event is one pointer message in canvas coordinates. Delta is the
// movement since the previous event.
type Event struct {
	Kind  Kind
	Pos   geom.Vector
	Delta geom.Vector
}

// Bounds is the drawing surface size; valid positions are [0,W]×[0,H].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies on the surface, edges included.
func (b Bounds) Contains(p geom.Vector) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}
