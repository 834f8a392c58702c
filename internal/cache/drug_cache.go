package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pharmacademy/internal/model"
)

// DrugInfoCache keeps generated drug monographs keyed by normalized name
type DrugInfoCache interface {
	Get(ctx context.Context, name string) (*model.DrugInfo, error)
	Set(ctx context.Context, name string, info *model.DrugInfo) error
}

type drugInfoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDrugInfoCache(client *redis.Client) DrugInfoCache {
	return &drugInfoCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *drugInfoCache) key(name string) string {
	return fmt.Sprintf("drug:%s:info", model.NormalizeDrug(name))
}

func (c *drugInfoCache) Get(ctx context.Context, name string) (*model.DrugInfo, error) {
	data, err := c.client.Get(ctx, c.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var info model.DrugInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *drugInfoCache) Set(ctx context.Context, name string, info *model.DrugInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(name), data, c.ttl).Err()
}
