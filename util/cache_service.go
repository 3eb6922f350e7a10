// api/util/cache_service.go

package util

import (
	"context"

	"github.com/dev-mohitbeniwal/shop/api/db"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

type ClientCache interface {
	GetClient(ctx context.Context, clientID string) (*model.Client, error)
	SetClient(ctx context.Context, client model.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// CacheService is backed by the shared redis client.
type CacheService struct{}

var _ ClientCache = (*CacheService)(nil)

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetClient(ctx context.Context, clientID string) (*model.Client, error) {
	return db.GetCachedClient(ctx, clientID)
}

func (c *CacheService) SetClient(ctx context.Context, client model.Client) error {
	return db.CacheClient(ctx, &client)
}

func (c *CacheService) DeleteClient(ctx context.Context, clientID string) error {
	return db.DeleteCachedClient(ctx, clientID)
}

// NoopCache is used when redis is disabled.
type NoopCache struct{}

var _ ClientCache = NoopCache{}

func (NoopCache) GetClient(ctx context.Context, clientID string) (*model.Client, error) {
	return nil, nil
}

func (NoopCache) SetClient(ctx context.Context, client model.Client) error { return nil }

func (NoopCache) DeleteClient(ctx context.Context, clientID string) error { return nil }
