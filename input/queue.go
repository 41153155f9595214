package input

// DefaultQueueSize holds a few frames worth of pointer traffic.
const DefaultQueueSize = 256

// Queue hands events from any goroutine to the frame loop, which is the
// only consumer and so the only writer of obstacle state.
type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev without blocking. It reports false when the queue is
// full and the event was dropped.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Drain hands every queued event to fn in arrival order and returns the count.
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		select {
		case ev := <-q.ch:
			fn(ev)
			n++
		default:
			return n
		}
	}
}

// Len is the number of events waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}
