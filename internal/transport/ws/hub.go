package ws

import (
	"encoding/json"

	"pharmacademy/internal/config"
)

// MessageType defines the type of WebSocket message
type MessageType string

const MsgLeaderboardUpdate MessageType = "leaderboard_update"

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans leaderboard updates out to every connected client
type Hub struct {
	conns map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	count      chan chan int
	done       chan struct{}
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.conns[conn] = struct{}{}
			config.Log.WithField("user_id", conn.UserID).Debug("leaderboard listener connected")

		case conn := <-h.unregister:
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
				config.Log.WithField("user_id", conn.UserID).Debug("leaderboard listener disconnected")
			}

		case data := <-h.broadcast:
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}

		case reply := <-h.count:
			reply <- len(h.conns)

		case <-h.done:
			for conn := range h.conns {
				close(conn.Send)
			}
			h.conns = map[*Connection]struct{}{}
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// size reports the number of connected clients
func (h *Hub) size() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Broadcast sends a message to every client (implements service.Broadcaster)
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		config.Log.WithError(err).Error("failed to encode broadcast payload")
		return
	}
	msg, _ := json.Marshal(&Message{Type: MessageType(msgType), Payload: data})

	select {
	case h.broadcast <- msg:
	case <-h.done:
	default:
		config.Log.Warn("broadcast queue full, dropping message")
	}
}

// Close stops the hub and closes every client's send channel
func (h *Hub) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}
