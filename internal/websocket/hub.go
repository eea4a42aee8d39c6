package websocket

import (
	"context"
	"sync"

	"ai-attendant-widget/internal/pkg/logger"
)

// Hub fans widget events out to every connected widget socket. All client
// bookkeeping happens on the Run goroutine.
type Hub struct {
	// Registered clients
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	// Closed when Run returns
	done chan struct{}

	// Guards count for readers outside Run
	mu    sync.RWMutex
	count int

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     log,
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			h.logger.Info("Hub", "Hub stopped", nil)
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.setCount()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ID})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID})
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"client_id": client.ID})
					h.drop(client)
				}
			}
		}
	}
}

// Broadcast queues data for every client. It never blocks; when the queue is
// full the message is dropped.
func (h *Hub) Broadcast(data []byte) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.broadcast <- data:
		return true
	default:
		h.logger.Warn("Hub", "Broadcast queue full, dropping message", nil)
		return false
	}
}

// Clients returns the number of connected sockets.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// drop runs on the Run goroutine only.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	h.setCount()
}

func (h *Hub) setCount() {
	h.mu.Lock()
	h.count = len(h.clients)
	h.mu.Unlock()
}
