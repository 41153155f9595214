package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"michelo851a1203/hexbounce/geom"
	"michelo851a1203/hexbounce/input"
	"michelo851a1203/hexbounce/render"
)

const (
	writeWait   = 5 * time.Second
	readLimit   = 4 << 10
	sendBacklog = 8 // frames; older ones are dropped for slow clients
)

// Frame is one rendered frame as a draw list.
type Frame struct {
	Type   string      `json:"type"`
	Seq    uint64      `json:"seq"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Ops    []render.Op `json:"ops"`
}

// clientMessage is what viewers send back: pointer events or a reset.
type clientMessage struct {
	Type string  `json:"type"`
	Kind string  `json:"kind,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
}

// Hub fans rendered frames out to websocket viewers and funnels their
// pointer input into the engine's queue.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	nextID      atomic.Uint64

	upgrader websocket.Upgrader
	events   *input.Queue
	onReset  func()
}

type subscriber struct {
	id        uint64
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

// NewHub forwards viewer pointer events to events. onReset may be nil.
func NewHub(events *input.Queue, onReset func()) *Hub {
	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		upgrader: websocket.Upgrader{
			// viewers are local tools, not browsers on other origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		events:  events,
		onReset: onReset,
	}
}

// Subscribers is the number of connected viewers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		id:   h.nextID.Add(1),
		conn: conn,
		send: make(chan []byte, sendBacklog),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.subscribers[sub.id] = sub
	h.mu.Unlock()
	log.Printf("viewer %d connected from %s", sub.id, r.RemoteAddr)

	go h.writeLoop(sub)
	h.readLoop(sub)
}

func (h *Hub) readLoop(sub *subscriber) {
	defer h.disconnect(sub)

	sub.conn.SetReadLimit(readLimit)
	for {
		_, data, err := sub.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("viewer %d read failed: %v", sub.id, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("viewer %d sent malformed message: %v", sub.id, err)
			continue
		}
		h.handle(sub, msg)
	}
}

func (h *Hub) handle(sub *subscriber, msg clientMessage) {
	switch msg.Type {
	case "pointer":
		kind, err := input.ParseKind(msg.Kind)
		if err != nil {
			log.Printf("viewer %d: %v", sub.id, err)
			return
		}
		ev := input.Event{
			Kind:  kind,
			Pos:   geom.Vector{X: msg.X, Y: msg.Y},
			Delta: geom.Vector{X: msg.DX, Y: msg.DY},
		}
		if !h.events.Push(ev) {
			log.Printf("viewer %d: input queue full, dropped %s", sub.id, kind)
		}
	case "reset":
		if h.onReset != nil {
			h.onReset()
		}
	default:
		log.Printf("viewer %d sent unknown message type %q", sub.id, msg.Type)
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	for {
		select {
		case <-sub.done:
			return
		case data := <-sub.send:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("failed to send frame to viewer %d: %v", sub.id, err)
				h.disconnect(sub)
				return
			}
		}
	}
}

func (h *Hub) disconnect(sub *subscriber) {
	sub.closeOnce.Do(func() {
		h.mu.Lock()
		delete(h.subscribers, sub.id)
		h.mu.Unlock()
		close(sub.done)
		sub.conn.Close()
		log.Printf("viewer %d disconnected", sub.id)
	})
}

// Broadcast encodes f once and queues it for every viewer. It never
// blocks the caller; a viewer whose backlog is full misses this frame.
func (h *Hub) Broadcast(f Frame) {
	f.Type = "frame"
	data, err := json.Marshal(f)
	if err != nil {
		log.Printf("failed to marshal frame %d: %v", f.Seq, err)
		return
	}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.send <- data:
		default:
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		h.disconnect(sub)
	}
}
