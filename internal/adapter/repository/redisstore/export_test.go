package redisstore

import (
	"time"

	"github.com/redis/go-redis/v9"
)

var ReleaseScriptHash = releaseScript.Hash()

func NewInflightGuardWithOwners(client *redis.Client, ttl time.Duration, owners ...string) *InflightGuard {
	g := NewInflightGuard(client, ttl)
	g.newOwner = func() string {
		owner := owners[0]
		owners = owners[1:]
		return owner
	}

	return g
}
