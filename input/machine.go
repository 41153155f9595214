package input

import "michelo851a1203/hexbounce/sim"

// State is the drag latch. It mirrors Obstacle.Dragging.
type State uint8

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// StateOf reads the latch from the obstacle.
func StateOf(o sim.Obstacle) State {
	if o.Dragging {
		return Dragging
	}
	return Idle
}

// Apply feeds one event through the Idle/Dragging machine and returns
// the resulting state.
//
//	Idle     --down (in bounds)-->  Dragging
//	Dragging --move (in bounds)-->  Dragging, obstacle += delta
//	Dragging --move (outside)--->   Idle, obstacle untouched
//	Dragging --up--------------->   Idle
//
// Anything else leaves the obstacle as it was.
func Apply(o *sim.Obstacle, ev Event, bounds Bounds) State {
	switch ev.Kind {
	case PointerDown:
		if bounds.Contains(ev.Pos) {
			o.Dragging = true
		}
	case PointerMove:
		if !o.Dragging {
			break
		}
		if !bounds.Contains(ev.Pos) {
			o.Dragging = false
			break
		}
		o.Pos = o.Pos.Add(ev.Delta)
	case PointerUp:
		o.Dragging = false
	}
	return StateOf(*o)
}
