package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's owner
// token, so a holder whose TTL lapsed cannot free a newer holder's key.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// InflightGuard marks running actions with SET NX. The TTL frees a key whose
// holder crashed before releasing it.
type InflightGuard struct {
	client   *redis.Client
	ttl      time.Duration
	newOwner func() string
}

func NewInflightGuard(client *redis.Client, ttl time.Duration) *InflightGuard {
	return &InflightGuard{client: client, ttl: ttl, newOwner: uuid.NewString}
}

func inflightKey(key string) string {
	return "inflight:" + key
}

func (g *InflightGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	owner := g.newOwner()

	ok, err := g.client.SetNX(ctx, inflightKey(key), owner, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire %s: %w", key, err)
	}

	if !ok {
		return "", false, nil
	}

	return owner, true, nil
}

func (g *InflightGuard) Release(ctx context.Context, key, owner string) error {
	if err := releaseScript.Run(ctx, g.client, []string{inflightKey(key)}, owner).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}

	return nil
}
