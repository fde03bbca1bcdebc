package server

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Sender is the write side of a WebSocket connection.
type Sender interface {
	WriteJSON(v interface{}) error
}

type client struct {
	mu   sync.Mutex // connections allow one concurrent writer
	conn Sender
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub fans messages out to the connections watching one game.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub returns a hub with no connections.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// Add registers conn and returns its connection id.
func (h *Hub) Add(conn Sender) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = &client{conn: conn}
	h.mu.Unlock()
	return id
}

// Remove drops a connection.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

// Len returns the number of connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send writes msg to one connection.
func (h *Hub) Send(id string, msg Message) error {
	h.mu.RLock()
	c, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	return c.send(msg)
}

// Broadcast writes msg to every connection. Connections that fail to
// accept it are dropped.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	snapshot := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		snapshot[id] = c
	}
	h.mu.RUnlock()

	for id, c := range snapshot {
		if err := c.send(msg); err != nil {
			log.Printf("drop connection %s: %v", id, err)
			h.Remove(id)
		}
	}
}
