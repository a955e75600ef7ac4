package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/eventra/eventra/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Client is one registered socket connection.
type Client struct {
	ID          string
	ConnectedAt time.Time

	conn *websocket.Conn
	send chan []byte
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Hub tracks connected clients and fans messages out to one or all of them.
// Delivery is fire-and-forget: no acknowledgement, no retry, and a client
// whose send buffer is full is dropped rather than blocking the publisher.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	clock   utils.Clock
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		clock:   &utils.SystemClock{},
	}
}

// Register adds the connection to the hub and immediately sends the
// connection acknowledgement carrying the assigned client id.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{
		ID:          uuid.NewString(),
		ConnectedAt: h.clock.Now(),
		conn:        conn,
		send:        make(chan []byte, 64),
	}
	go c.writePump()

	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()

	h.deliver(c, MsgConnected, ConnectedPayload{
		ClientID: c.ID,
		Message:  "Connected to real-time server",
	})

	log.Debugf("Client connected: %s", c.ID)
	return c
}

// Unregister removes the client and stops its write pump. Safe to call for a
// client that is already gone.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	if ok {
		delete(h.clients, c.ID)
		close(c.send)
	}
	h.mu.Unlock()

	if ok {
		log.Debugf("Client disconnected: %s", c.ID)
	}
}

// Broadcast delivers the message to every client registered at call time.
func (h *Hub) Broadcast(msgType MessageType, payload any) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	data, ok := h.encode(msgType, payload)
	if !ok {
		return
	}
	for _, c := range clients {
		h.send(c, data)
	}
}

// SendTo delivers the message to a single client. Returns false without error
// if the client has disconnected in the meantime.
func (h *Hub) SendTo(clientID string, msgType MessageType, payload any) bool {
	h.mu.RLock()
	c, ok := h.clients[clientID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	h.deliver(c, msgType, payload)
	return true
}

// ClientCount reports the number of currently registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()

	for _, c := range clients {
		close(c.send)
	}
}

func (h *Hub) deliver(c *Client, msgType MessageType, payload any) {
	data, ok := h.encode(msgType, payload)
	if !ok {
		return
	}
	h.send(c, data)
}

func (h *Hub) encode(msgType MessageType, payload any) ([]byte, bool) {
	data, err := json.Marshal(Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: h.clock.Now(),
	})
	if err != nil {
		log.Errorf("could not marshal %s message: %v", msgType, err)
		return nil, false
	}
	return data, true
}

// send enqueues data for one client. The registry check and the channel send
// happen under the read lock so a concurrent Unregister cannot close the
// channel mid-send; a client that is already gone is silently skipped.
func (h *Hub) send(c *Client, data []byte) {
	full := false
	h.mu.RLock()
	if current, ok := h.clients[c.ID]; ok && current == c {
		select {
		case c.send <- data:
		default:
			full = true
		}
	}
	h.mu.RUnlock()

	if full {
		// Client can't keep up, disconnect it
		log.Warnf("Client %s too slow, disconnecting", c.ID)
		h.Unregister(c)
	}
}
