package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

const cabinsKey = "catalog:cabins"

type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetCabins(ctx context.Context) ([]domain.Cabin, bool, error) {
	data, err := c.client.Get(ctx, cabinsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get cached cabins: %w", err)
	}

	var cabins []domain.Cabin
	if err := json.Unmarshal(data, &cabins); err != nil {
		return nil, false, fmt.Errorf("decode cached cabins: %w", err)
	}

	return cabins, true, nil
}

func (c *CatalogCache) SetCabins(ctx context.Context, cabins []domain.Cabin) error {
	data, err := json.Marshal(cabins)
	if err != nil {
		return fmt.Errorf("encode cabins: %w", err)
	}

	return c.client.Set(ctx, cabinsKey, data, c.ttl).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, cabinsKey).Err()
}
