package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"pharmacademy/internal/model"
)

// QuizCache keeps freshly generated quizzes close for the submit that follows
type QuizCache interface {
	Set(ctx context.Context, quiz *model.Quiz) error
	Get(ctx context.Context, id string) (*model.Quiz, error)
}

type quizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client) QuizCache {
	return &quizCache{
		client: client,
		ttl:    2 * time.Hour,
	}
}

func (c *quizCache) Set(ctx context.Context, quiz *model.Quiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "quiz:"+quiz.ID.Hex(), data, c.ttl).Err()
}

// Get returns nil, nil on a miss
func (c *quizCache) Get(ctx context.Context, id string) (*model.Quiz, error) {
	data, err := c.client.Get(ctx, "quiz:"+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quiz model.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}
