package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestLeaderboardCache(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewLeaderboardCache(client)
	ctx := context.Background()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	entries := []model.LeaderboardEntry{
		{Rank: 1, Name: "Ada", Score: 90},
		{Rank: 2, Name: "Ben", Score: 40},
	}
	require.NoError(t, c.Set(ctx, entries))

	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	require.NoError(t, c.Invalidate(ctx))
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, entries))
	mr.FastForward(2 * time.Minute)
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should expire")
}

func TestDrugInfoCacheNormalizesName(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewDrugInfoCache(client)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, " Warfarin ", &model.DrugInfo{GenericName: "warfarin", DrugClass: "Anticoagulant"}))
	assert.True(t, mr.Exists("drug:warfarin:info"))

	info, err := c.Get(ctx, "WARFARIN")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Anticoagulant", info.DrugClass)

	ttl := mr.TTL("drug:warfarin:info")
	assert.Equal(t, 24*time.Hour, ttl)

	missing, err := c.Get(ctx, "aspirin")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuizCacheRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewQuizCache(client)
	ctx := context.Background()

	quiz := &model.Quiz{
		ID:         primitive.NewObjectID(),
		Category:   "Toxicology",
		Difficulty: model.DifficultyBeginner,
		Questions: []model.Question{{
			ID:            primitive.NewObjectID(),
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 3,
		}},
		Source: model.QuizSourceFallback,
	}
	require.NoError(t, c.Set(ctx, quiz))

	got, err := c.Get(ctx, quiz.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, quiz.Questions[0].ID, got.Questions[0].ID)
	assert.Equal(t, 3, got.Questions[0].CorrectAnswer)
	assert.Equal(t, model.QuizSourceFallback, got.Source)
}
