package util

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/shop/api/db"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

func TestCacheService(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, db.ConnectRedis(&redis.Options{Addr: mr.Addr()}, []byte("0123456789abcdef0123456789abcdef")))
	t.Cleanup(db.CloseRedis)

	ctx := context.Background()
	cache := NewCacheService()

	miss, err := cache.GetClient(ctx, "7")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.SetClient(ctx, model.Client{ID: "7", FirstName: "Gus"}))
	hit, err := cache.GetClient(ctx, "7")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Gus", hit.FirstName)

	require.NoError(t, cache.DeleteClient(ctx, "7"))
	miss, err = cache.GetClient(ctx, "7")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestNoopCache(t *testing.T) {
	var cache ClientCache = NoopCache{}
	ctx := context.Background()
	require.NoError(t, cache.SetClient(ctx, model.Client{ID: "1"}))
	got, err := cache.GetClient(ctx, "1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
