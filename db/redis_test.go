package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, ConnectRedis(&redis.Options{Addr: mr.Addr()}, testKey))
	t.Cleanup(CloseRedis)
	return mr
}

func TestConnectRedis_RejectsShortKey(t *testing.T) {
	mr := miniredis.RunT(t)
	assert.Error(t, ConnectRedis(&redis.Options{Addr: mr.Addr()}, []byte("short")))
}

func TestClientCache_RoundTripIsEncrypted(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	client := &model.Client{
		ID:            "1",
		FirstName:     "Ann",
		Email:         "ann@example.com",
		Password:      "plaintext-pass",
		PasswordHash:  "$2a$10$hash",
		InternalNotes: "vip",
	}
	require.NoError(t, CacheClient(ctx, client))

	raw, err := mr.Get("client:1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "ann@example.com")

	cached, err := GetCachedClient(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "Ann", cached.FirstName)
	assert.Equal(t, "vip", cached.InternalNotes)
	assert.Empty(t, cached.Password)
	assert.Empty(t, cached.PasswordHash)

	require.NoError(t, DeleteCachedClient(ctx, "1"))
	miss, err := GetCachedClient(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestClientCache_FailuresWrapCacheOperation(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("client:1", "not base64!"))
	_, err := GetCachedClient(ctx, "1")
	assert.ErrorIs(t, err, shop_errors.ErrCacheOperation)

	require.NoError(t, mr.Set("client:2", "c2hvcnQ="))
	_, err = GetCachedClient(ctx, "2")
	assert.ErrorIs(t, err, shop_errors.ErrCacheOperation)

	mr.Close()
	err = CacheClient(ctx, &model.Client{ID: "3"})
	assert.ErrorIs(t, err, shop_errors.ErrCacheOperation)
	err = DeleteCachedClient(ctx, "3")
	assert.ErrorIs(t, err, shop_errors.ErrCacheOperation)
}

func TestRateLimit(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := RateLimit(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := RateLimit(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = RateLimit(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
