package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard event types
const (
	MsgAppointmentCreated MessageType = "appointment_created"
	MsgAppointmentUpdated MessageType = "appointment_updated"
	MsgError              MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the dashboard event feed. Several dashboard sessions may be
// open at once (for example the front desk and the doctor), so connections
// are keyed by session id and every event goes to all of them.
type Hub struct {
	conns map[string]*Connection // dashboardID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one dashboard WebSocket connection
type Connection struct {
	DashboardID string
	Send        chan []byte
	Hub         *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn.DashboardID] = conn
			log.Printf("Dashboard %s connected", conn.DashboardID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.DashboardID]; ok && existing == conn {
				delete(h.conns, conn.DashboardID)
				close(conn.Send)
				log.Printf("Dashboard %s disconnected", conn.DashboardID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for _, conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToDashboard sends an event to every connected dashboard session
// (implements service.Broadcaster)
func (h *Hub) BroadcastToDashboard(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &Message{
		Type:    MessageType(msgType),
		Payload: data,
	}
}
