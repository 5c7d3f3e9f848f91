package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/redisstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sid       = "6a3e1f0c-2b7d-4f5e-8c9a-0d1e2f3a4b5c"
	newKey    = "session:" + sid + ":auth_token"
	legacyKey = "session:" + sid + ":token"
	ttl       = 24 * time.Hour
)

func TestTokenStore_SetWritesBothKeysAtomically(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectTxPipeline()
	mockRedis.ExpectSet(newKey, "tok", ttl).SetVal("OK")
	mockRedis.ExpectSet(legacyKey, "tok", ttl).SetVal("OK")
	mockRedis.ExpectTxPipelineExec()

	err := store.Set(context.Background(), sid, "tok")

	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestTokenStore_GetSlidesExpiry(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectGet(newKey).SetVal("tok")
	mockRedis.ExpectTxPipeline()
	mockRedis.ExpectExpire(newKey, ttl).SetVal(true)
	mockRedis.ExpectExpire(legacyKey, ttl).SetVal(true)
	mockRedis.ExpectTxPipelineExec()

	token, err := store.Get(context.Background(), sid)

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestTokenStore_GetRecreatesMissingLegacyKey(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectGet(newKey).SetVal("tok")
	mockRedis.ExpectTxPipeline()
	mockRedis.ExpectExpire(newKey, ttl).SetVal(true)
	mockRedis.ExpectExpire(legacyKey, ttl).SetVal(false)
	mockRedis.ExpectTxPipelineExec()
	mockRedis.ExpectTxPipeline()
	mockRedis.ExpectSet(newKey, "tok", ttl).SetVal("OK")
	mockRedis.ExpectSet(legacyKey, "tok", ttl).SetVal("OK")
	mockRedis.ExpectTxPipelineExec()

	token, err := store.Get(context.Background(), sid)

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestTokenStore_GetFallsBackToLegacyKeyAndResyncs(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectGet(newKey).RedisNil()
	mockRedis.ExpectGet(legacyKey).SetVal("old-tok")
	mockRedis.ExpectTxPipeline()
	mockRedis.ExpectSet(newKey, "old-tok", ttl).SetVal("OK")
	mockRedis.ExpectSet(legacyKey, "old-tok", ttl).SetVal("OK")
	mockRedis.ExpectTxPipelineExec()

	token, err := store.Get(context.Background(), sid)

	require.NoError(t, err)
	assert.Equal(t, "old-tok", token)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestTokenStore_GetWithoutTokenIsEmpty(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectGet(newKey).RedisNil()
	mockRedis.ExpectGet(legacyKey).RedisNil()

	token, err := store.Get(context.Background(), sid)

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestTokenStore_GetPropagatesRedisErrors(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectGet(newKey).SetErr(errors.New("connection refused"))

	_, err := store.Get(context.Background(), sid)

	assert.ErrorContains(t, err, "connection refused")
}

func TestTokenStore_ClearDeletesBothKeys(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewTokenStore(db, ttl)

	mockRedis.ExpectDel(newKey, legacyKey).SetVal(2)

	assert.NoError(t, store.Clear(context.Background(), sid))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
