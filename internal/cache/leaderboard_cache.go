package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"pharmacademy/internal/model"
)

const leaderboardKey = "leaderboard:global"

// LeaderboardCache holds the last computed global leaderboard
type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.LeaderboardEntry, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type leaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
		ttl:    time.Minute,
	}
}

// Get returns nil, nil on a miss
func (c *leaderboardCache) Get(ctx context.Context) ([]model.LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *leaderboardCache) Set(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

func (c *leaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
