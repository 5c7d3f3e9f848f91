package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/redisstore"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCache_Miss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	cache := redisstore.NewCatalogCache(db, time.Minute)

	mockRedis.ExpectGet("catalog:cabins").RedisNil()

	cabins, ok, err := cache.GetCabins(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cabins)
}

func TestCatalogCache_Hit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	cache := redisstore.NewCatalogCache(db, time.Minute)

	mockRedis.ExpectGet("catalog:cabins").SetVal(`[{"id":7,"nombre":"Osiris","capacidad":4,"precio_noche":50000,"estado":"disponible"}]`)

	cabins, ok, err := cache.GetCabins(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, cabins, 1)
	assert.Equal(t, domain.CabinAvailable, cabins[0].Status)
	assert.Equal(t, 50000.0, cabins[0].NightlyRate.Float())
}

func TestCatalogCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	cache := redisstore.NewCatalogCache(db, time.Minute)

	mockRedis.ExpectDel("catalog:cabins").SetVal(1)

	assert.NoError(t, cache.Invalidate(context.Background()))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
