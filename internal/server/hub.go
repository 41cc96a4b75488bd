package server

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	// clientBuffer is how many live events may queue for one client before
	// it is considered too slow and dropped.
	clientBuffer = 64

	// writeWait bounds a single write to a client.
	writeWait = 10 * time.Second
)

// Sender is the part of a websocket connection the hub writes to.
type Sender interface {
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Hub fans simulator events out to every connected stream client. Each
// client has its own queue drained by a writer goroutine, so Broadcast
// never waits on the network.
type Hub struct {
	mu        sync.RWMutex
	clients   map[int64]*client
	nextID    int64
	buffer    int
	writeWait time.Duration
}

type client struct {
	sender Sender
	queue  chan any
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
	dead   atomic.Bool
	kicked atomic.Bool
}

func (c *client) stop() {
	c.once.Do(func() { close(c.quit) })
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return newHub(clientBuffer, writeWait)
}

func newHub(buffer int, wait time.Duration) *Hub {
	return &Hub{
		clients:   make(map[int64]*client),
		buffer:    buffer,
		writeWait: wait,
	}
}

// Register adds s to the hub and queues backlog() ahead of any broadcast.
// A message produced while registering may be delivered twice; clients
// dedupe by message ID.
func (h *Hub) Register(s Sender, backlog func() []any) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	var pending []any
	if backlog != nil {
		pending = backlog()
	}

	c := &client{
		sender: s,
		queue:  make(chan any, len(pending)+h.buffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, v := range pending {
		c.queue <- v
	}

	h.nextID++
	id := h.nextID
	h.clients[id] = c
	go h.writeLoop(c)
	return id
}

// writeLoop delivers queued events to one client. It is the only goroutine
// that writes to or closes the client's connection.
func (h *Hub) writeLoop(c *client) {
	defer close(c.done)

	for {
		select {
		case <-c.quit:
			if c.kicked.Load() {
				_ = c.sender.Close()
			}
			return
		case v := <-c.queue:
			_ = c.sender.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := c.sender.WriteJSON(v); err != nil {
				c.dead.Store(true)
				_ = c.sender.Close()
				return
			}
		}
	}
}

// Unregister removes a client and waits for its writer to finish, so the
// connection is no longer in use when it returns. Dropped clients stay
// registered until Unregister. Unknown ids are ignored.
func (h *Hub) Unregister(id int64) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if !ok {
		return
	}
	c.stop()
	<-c.done
}

// Len returns the number of clients still receiving events.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.clients {
		if !c.dead.Load() {
			n++
		}
	}
	return n
}

// Broadcast queues v for every live client and returns how many accepted
// it. A client whose queue is full is dropped: its writer closes the
// connection, which ends the client's handler.
func (h *Hub) Broadcast(v any) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, c := range h.clients {
		if c.dead.Load() {
			continue
		}
		select {
		case c.queue <- v:
			delivered++
		default:
			c.dead.Store(true)
			c.kicked.Store(true)
			c.stop()
		}
	}
	return delivered
}
