package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/redisstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightGuard_AcquireOnceUntilReleased(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	guard := redisstore.NewInflightGuardWithOwners(db, 30*time.Second, "first", "second")
	ctx := context.Background()

	mockRedis.ExpectSetNX("inflight:payment:4", "first", 30*time.Second).SetVal(true)
	mockRedis.ExpectSetNX("inflight:payment:4", "second", 30*time.Second).SetVal(false)
	mockRedis.ExpectEvalSha(redisstore.ReleaseScriptHash, []string{"inflight:payment:4"}, "first").SetVal(int64(1))

	owner, ok, err := guard.Acquire(ctx, "payment:4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", owner)

	owner, ok, err = guard.Acquire(ctx, "payment:4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, owner)

	assert.NoError(t, guard.Release(ctx, "payment:4", "first"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

// A holder whose TTL lapsed must not free the key a later caller now holds.
func TestInflightGuard_ExpiredHolderCannotReleaseNewerHolder(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	guard := redisstore.NewInflightGuardWithOwners(db, 30*time.Second, "slow", "next")
	ctx := context.Background()

	mockRedis.ExpectSetNX("inflight:booking:s1", "slow", 30*time.Second).SetVal(true)
	mockRedis.ExpectSetNX("inflight:booking:s1", "next", 30*time.Second).SetVal(true)
	mockRedis.ExpectEvalSha(redisstore.ReleaseScriptHash, []string{"inflight:booking:s1"}, "slow").SetVal(int64(0))
	mockRedis.ExpectSetNX("inflight:booking:s1", "extra", 30*time.Second).SetVal(false)

	slow, ok, err := guard.Acquire(ctx, "booking:s1")
	require.NoError(t, err)
	require.True(t, ok)

	// the first key expired; a second submit takes it over
	_, ok, err = guard.Acquire(ctx, "booking:s1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, "booking:s1", slow))

	third := redisstore.NewInflightGuardWithOwners(db, 30*time.Second, "extra")
	_, ok, err = third.Acquire(ctx, "booking:s1")
	require.NoError(t, err)
	assert.False(t, ok, "the newer holder keeps the key")
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
