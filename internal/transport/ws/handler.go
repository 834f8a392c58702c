package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"pharmacademy/internal/config"
	"pharmacademy/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// TokenValidator checks a user JWT
type TokenValidator interface {
	ValidateToken(token string) (*model.UserClaims, error)
}

// Snapshot supplies the ranking sent to a client right after it connects
type Snapshot interface {
	Top(ctx context.Context) ([]model.LeaderboardEntry, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	tokens   TokenValidator
	snapshot Snapshot
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. allowedOrigin "*" accepts any origin.
func NewHandler(hub *Hub, tokens TokenValidator, snapshot Snapshot, allowedOrigin string) *Handler {
	return &Handler{
		hub:      hub,
		tokens:   tokens,
		snapshot: snapshot,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "*" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Leaderboard handles GET /api/ws/leaderboard?token=...
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("websocket upgrade failed")
		return
	}

	conn := &Connection{
		UserID: claims.UserID,
		Send:   make(chan []byte, 16),
	}
	if h.snapshot != nil {
		if initial, ok := h.initialMessage(r.Context()); ok {
			conn.Send <- initial
		}
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) initialMessage(ctx context.Context) ([]byte, bool) {
	entries, err := h.snapshot.Top(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to load leaderboard snapshot")
		return nil, false
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, false
	}
	msg, err := json.Marshal(&Message{Type: MsgLeaderboardUpdate, Payload: payload})
	return msg, err == nil
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Clients only listen; anything they send is discarded.
		if _, _, err := wsConn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				config.Log.WithError(err).WithField("user_id", conn.UserID).Warn("websocket read error")
			}
			break
		}
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
