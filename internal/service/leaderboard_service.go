package service

import (
	"context"

	"pharmacademy/internal/cache"
	"pharmacademy/internal/config"
	"pharmacademy/internal/model"
	"pharmacademy/internal/repository"
)

const leaderboardSize = 50

// LeaderboardService ranks users by total score. Mongo is authoritative;
// the cache only saves repeated sorts between submissions.
type LeaderboardService struct {
	users       repository.UserRepo
	cache       cache.LeaderboardCache // optional
	broadcaster Broadcaster            // optional
}

func NewLeaderboardService(users repository.UserRepo, lbCache cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{users: users, cache: lbCache}
}

// SetBroadcaster sets the WebSocket broadcaster (called after hub is created)
func (s *LeaderboardService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Top returns up to 50 users ranked 1..N by descending total score
func (s *LeaderboardService) Top(ctx context.Context) ([]model.LeaderboardEntry, error) {
	log := config.WithContext(ctx)
	if s.cache != nil {
		entries, err := s.cache.Get(ctx)
		if err != nil {
			log.WithError(err).Warn("leaderboard cache read failed")
		} else if entries != nil {
			return entries, nil
		}
	}

	users, err := s.users.TopByScore(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}
	entries := make([]model.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = model.LeaderboardEntry{
			Rank:             i + 1,
			UserID:           u.ID.Hex(),
			Name:             u.Name,
			University:       u.University,
			Score:            u.Stats.TotalScore,
			QuizzesCompleted: u.Stats.QuizzesCompleted,
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			log.WithError(err).Warn("leaderboard cache write failed")
		}
	}
	return entries, nil
}

// Changed drops the cached ranking and pushes the fresh one to listeners
func (s *LeaderboardService) Changed(ctx context.Context) {
	log := config.WithContext(ctx)
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("leaderboard cache invalidate failed")
		}
	}
	if s.broadcaster == nil {
		return
	}
	entries, err := s.Top(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to rebuild leaderboard for broadcast")
		return
	}
	s.broadcaster.Broadcast(MsgLeaderboardUpdate, entries)
}
