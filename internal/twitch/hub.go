package twitch

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"maua-esports-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// HubConfig holds the WebSocket connection settings
type HubConfig struct {
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	SendBuffer     int
	CheckOrigin    func(r *http.Request) bool
}

// DefaultHubConfig returns the default WebSocket configuration
func DefaultHubConfig() HubConfig {
	return HubConfig{
		WriteTimeout:   10 * time.Second,
		PongTimeout:    60 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 512,
		SendBuffer:     16,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// Hub fans snapshots out to the connected WebSocket clients
type Hub struct {
	upgrader websocket.Upgrader
	config   HubConfig
	log      *logger.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// NewHub creates a hub
func NewHub(config HubConfig) *Hub {
	if config.SendBuffer <= 0 {
		config.SendBuffer = 16
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
		config:  config,
		log:     logger.WithComponent("twitch-hub"),
		clients: make(map[*client]struct{}),
	}
}

// Serve upgrades the request and queues initial for the new client
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, initial []Snapshot) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.config.SendBuffer),
		hub:  h,
	}
	for _, s := range initial {
		data, err := json.Marshal(s)
		if err != nil {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	h.log.WithField("client_id", c.id).Debug("WebSocket client connected")
	return nil
}

// Broadcast sends snapshot to every client. Clients with a full buffer are dropped.
func (h *Hub) Broadcast(snapshot Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		h.log.WithError(err).Error("Failed to marshal snapshot")
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.WithField("client_id", c.id).Warn("Send buffer full, closing connection")
		h.remove(c)
		_ = c.conn.Close()
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// remove unregisters c; send is closed only here, under the write lock
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for close frames and pongs; clients send nothing
func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		_ = c.conn.Close()
		c.hub.log.WithField("client_id", c.id).Debug("WebSocket client disconnected")
	}()

	c.conn.SetReadLimit(c.hub.config.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.config.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.config.PongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
