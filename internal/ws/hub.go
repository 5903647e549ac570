package ws

import (
	"encoding/json"
	"sync"

	"simon_webapp/internal/logger"
)

// Hub fans session events out to a player's open sockets. A player may hold
// several connections (multiple tabs); every one receives every event.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// Push implements the session service's event sink. It never blocks: a
// client whose send buffer is full simply misses the event. Sequence reveal
// timing lives server side, so a slow consumer must not stall the session.
func (h *Hub) Push(userID int64, event string, data map[string]any) {
	msg, err := json.Marshal(Envelope{Type: event, Data: data})
	if err != nil {
		logger.Error("ws: marshal event", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.Send <- msg:
		default:
			logger.Debug("ws: dropping event, slow client", "user_id", userID, "event", event)
		}
	}
}

// ConnectionCount reports open sockets across all players.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
