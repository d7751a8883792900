package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"writeassess/internal/logger"
	"writeassess/services"
)

// writeWait bounds each write to a client
var writeWait = 10 * time.Second

// Client is one browser tab listening for a session's notifications
type Client struct {
	Conn      *websocket.Conn
	SessionID string
	writeMu   sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(v)
}

// Hub fans notifications out to the clients of each session
type Hub struct {
	log     *logger.Logger
	mu      sync.RWMutex
	clients map[string]map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{log: log, clients: make(map[string]map[*Client]bool)}
}

// Register registers a client for its session's notifications
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.SessionID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[client.SessionID] = set
	}
	set[client] = true
	h.log.Debug("notification client registered", "session_id", client.SessionID, "clients", len(set))
}

// Unregister removes a client and closes its connection
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[client.SessionID]
	if !set[client] {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.SessionID)
	}
	client.Conn.Close()
	h.log.Debug("notification client unregistered", "session_id", client.SessionID)
}

// Publish sends n to every client of the session. Clients that fail to
// receive it are dropped.
func (h *Hub) Publish(sessionID string, n services.Notification) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[sessionID]))
	for client := range h.clients[sessionID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		if err := client.SafeWriteJSON(n); err != nil {
			h.log.Warn("failed to push notification", "session_id", sessionID, "type", n.Type, "error", err.Error())
			go h.Unregister(client)
		}
	}
}

// ClientCount returns the number of clients listening on a session
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}
