// Package broadcast pushes rendered fragments to connected admin browsers.
package broadcast

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is a named event delivered to every connected client
type Message struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Hub owns the set of connected clients. Registration, removal and
// broadcasting are serialized through channels onto the Run goroutine,
// so delivery is at-most-once per connected client and follows
// Broadcast invocation order.
type Hub struct {
	logger *zap.Logger

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	count atomic.Int64
}

// NewHub creates new Hub instance
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    map[*Client]struct{}{},
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug("client connected", zap.String("client", client.id.String()))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// client is not keeping up
					h.logger.Warn("dropping slow client", zap.String("client", client.id.String()))
					h.drop(client)
				}
			}
		}
	}
}

// Broadcast sends the payload to all currently connected clients.
// Failures to deliver never propagate to the caller.
func (h *Hub) Broadcast(event, data string) {
	msg, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.logger.Error("marshal broadcast message", zap.Error(err))
		return
	}
	h.broadcast <- msg
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// ServeWS upgrades the request to a websocket connection and registers
// the client with the hub
func (h *Hub) ServeWS() http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade", zap.Error(err))
			return
		}

		client := newClient(h, conn)
		h.register <- client

		go client.writePump()
		go client.readPump()
	}
}

// drop must be called from the Run goroutine only
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
	h.logger.Debug("client disconnected", zap.String("client", client.id.String()))
}
