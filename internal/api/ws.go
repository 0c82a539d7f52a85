package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/smertens/tpgd/internal/poll"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// local lab tool; allow all
		return true
	},
}

// wsClient wraps a connection with a write mutex. Gorilla WebSocket does
// not allow concurrent writes on one Conn.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub broadcasts poll readings to all connected WebSocket clients. It
// satisfies poll.Consumer.
type Hub struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*wsClient]struct{})}
}

func (h *Hub) add(conn *websocket.Conn) *wsClient {
	c := &wsClient{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

// Consume broadcasts one reading. Send failures are ignored here; the read
// loop notices dead clients and removes them.
func (h *Hub) Consume(r poll.Reading) {
	b, err := json.Marshal(r)
	if err != nil {
		log.Errorf("Marshalling reading for broadcast: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.mu.Lock()
		c.conn.WriteMessage(websocket.TextMessage, b)
		c.mu.Unlock()
	}
}

// handleLive upgrades the request and keeps reading until the client
// disconnects, which triggers cleanup.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := s.hub.add(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.hub.remove(client)
			return
		}
	}
}
