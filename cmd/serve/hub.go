package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Hub maintains the set of connected dashboard clients and broadcasts each
// day's snapshot to them.
type Hub struct {
	clients map[*client]bool

	// Broadcast carries JSON-encoded day records to every connected client.
	Broadcast chan []byte

	register   chan *client
	unregister chan *client
}

// client represents one connected dashboard.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. Run must be started in a goroutine before serving.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		Broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run is the hub's event loop. It blocks, so run it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			slog.Info("client connected", "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case msg := <-h.Broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Client can't keep up; drop it
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request to a WebSocket connection and registers
// it with the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: hub, conn: conn, send: make(chan []byte, 64)}
	hub.register <- c

	go c.writePump()
	go c.readPump()
}

// writePump forwards hub messages to the socket.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump drains incoming frames so pings and close handshakes are handled;
// dashboard clients are read-only consumers.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
