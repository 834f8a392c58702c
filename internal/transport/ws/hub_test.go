package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacademy/internal/model"
)

type stubTokens struct{}

func (stubTokens) ValidateToken(token string) (*model.UserClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &model.UserClaims{UserID: "u1"}, nil
}

type stubSnapshot struct {
	entries []model.LeaderboardEntry
}

func (s stubSnapshot) Top(context.Context) ([]model.LeaderboardEntry, error) {
	return s.entries, nil
}

func waitForListeners(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.size() == n }, time.Second, 10*time.Millisecond)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Close)

	a := &Connection{UserID: "a", Send: make(chan []byte, 1)}
	b := &Connection{UserID: "b", Send: make(chan []byte, 1)}
	hub.Register(a)
	hub.Register(b)
	waitForListeners(t, hub, 2)

	hub.Broadcast(string(MsgLeaderboardUpdate), []model.LeaderboardEntry{{Rank: 1, Name: "Ada"}})

	for _, conn := range []*Connection{a, b} {
		select {
		case data := <-conn.Send:
			var msg Message
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, MsgLeaderboardUpdate, msg.Type)
			assert.Contains(t, string(msg.Payload), `"name":"Ada"`)
		case <-time.After(time.Second):
			t.Fatalf("%s got no message", conn.UserID)
		}
	}

	hub.Unregister(a)
	waitForListeners(t, hub, 1)
	_, open := <-a.Send
	assert.False(t, open, "send channel closed on unregister")
}

func TestHubDropsForSlowClient(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Close)

	slow := &Connection{UserID: "slow", Send: make(chan []byte)}
	hub.Register(slow)
	waitForListeners(t, hub, 1)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(string(MsgLeaderboardUpdate), nil)
		hub.Broadcast(string(MsgLeaderboardUpdate), nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
	assert.Equal(t, 1, hub.size())
}

func TestLeaderboardSocket(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Close)
	snapshot := stubSnapshot{entries: []model.LeaderboardEntry{{Rank: 1, Name: "First"}}}
	srv := httptest.NewServer(http.HandlerFunc(NewHandler(hub, stubTokens{}, snapshot, "*").Leaderboard))
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	t.Run("RejectsBadToken", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token=bad", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("StreamsUpdates", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token=good", nil)
		require.NoError(t, err)
		defer conn.Close()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var first Message
		require.NoError(t, conn.ReadJSON(&first))
		assert.Equal(t, MsgLeaderboardUpdate, first.Type)
		assert.Contains(t, string(first.Payload), "First")

		waitForListeners(t, hub, 1)
		hub.Broadcast(string(MsgLeaderboardUpdate), []model.LeaderboardEntry{{Rank: 1, Name: "Second"}})

		var next Message
		require.NoError(t, conn.ReadJSON(&next))
		assert.Contains(t, string(next.Payload), "Second")
	})
}
