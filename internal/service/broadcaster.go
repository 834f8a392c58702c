package service

// Broadcaster pushes events to connected WebSocket clients (avoids import cycle)
type Broadcaster interface {
	Broadcast(msgType string, payload interface{})
}

// MsgLeaderboardUpdate is sent after any quiz submission
const MsgLeaderboardUpdate = "leaderboard_update"
