// Package websocket streams runout events to websocket subscribers.
package websocket

import (
	"errors"
	"io"
	"sync"

	"PokerLens/internal/game/engine"

	"github.com/charmbracelet/log"
)

var ErrClosed = errors.New("hub closed")

// Hub fans engine events out to the clients watching each runout. It is an
// engine.Listener; Run must be running for Publish to return.
type Hub struct {
	subs       map[string]map[*Client]struct{} // runout id -> clients
	register   chan *Client
	unregister chan *Client
	broadcast  chan OutgoingMessage
	drop       chan string
	quit       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	log        *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		subs:       make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan OutgoingMessage),
		drop:       make(chan string),
		quit:       make(chan struct{}),
		log:        logger,
	}
}

func (h *Hub) Run() {
	h.log.Debug("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			set, ok := h.subs[c.Runout]
			if !ok {
				set = make(map[*Client]struct{})
				h.subs[c.Runout] = set
			}
			set[c] = struct{}{}
			h.log.Debug("hub register", "runout", c.Runout, "subscribers", len(set))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			h.remove(c)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.subs[msg.Runout] {
				select {
				case c.Send <- msg:
				default:
					// 慢客户端直接断开，保证事件顺序不乱
					h.log.Warn("hub drop slow subscriber", "runout", c.Runout)
					h.remove(c)
				}
			}
			h.mu.Unlock()

		case id := <-h.drop:
			h.mu.Lock()
			for c := range h.subs[id] {
				h.remove(c)
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for _, set := range h.subs {
				for c := range set {
					close(c.Send)
				}
			}
			h.subs = make(map[string]map[*Client]struct{})
			h.mu.Unlock()
			h.log.Debug("hub stopped")
			return
		}
	}
}

// remove needs h.mu held.
func (h *Hub) remove(c *Client) {
	set, ok := h.subs[c.Runout]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.Send)
	if len(set) == 0 {
		delete(h.subs, c.Runout)
	}
	h.log.Debug("hub unregister", "runout", c.Runout, "subscribers", len(set))
}

// Publish implements engine.Listener.
func (h *Hub) Publish(ev engine.Event) {
	select {
	case h.broadcast <- FromEvent(ev):
	case <-h.quit:
	}
}

// Drop disconnects every subscriber of a runout.
func (h *Hub) Drop(runout string) {
	select {
	case h.drop <- runout:
	case <-h.quit:
	}
}

func (h *Hub) join(c *Client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.quit:
		return ErrClosed
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

// Subscribers counts the clients watching a runout.
func (h *Hub) Subscribers(runout string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[runout])
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}
