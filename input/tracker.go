package input

import "michelo851a1203/hexbounce/geom"

// Tracker turns polled pointer state (position plus button held) into
// down/move/up events. Hosts that only expose button masks, such as
// ebiten polling or terminal mouse reports, feed it once per sample.
type Tracker struct {
	last    geom.Vector
	pressed bool
	seen    bool
}

// Sample records the current pointer state and returns the events it implies.
func (t *Tracker) Sample(pos geom.Vector, pressed bool) []Event {
	var delta geom.Vector
	if t.seen {
		delta = pos.Sub(t.last)
	}

	var out []Event
	switch {
	case pressed && !t.pressed:
		out = append(out, Event{Kind: PointerDown, Pos: pos})
	case pressed && t.pressed && delta != (geom.Vector{}):
		out = append(out, Event{Kind: PointerMove, Pos: pos, Delta: delta})
	case !pressed && t.pressed:
		out = append(out, Event{Kind: PointerUp, Pos: pos, Delta: delta})
	}

	t.last = pos
	t.pressed = pressed
	t.seen = true
	return out
}
