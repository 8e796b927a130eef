package geo

import (
	"context"
	"time"

	"biolink/internal/model"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process Cache with per-entry expiry
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a cache whose entries live for ttl
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cleanup := ttl * 2
	if ttl <= 0 {
		cleanup = 0
	}
	return &MemoryCache{store: gocache.New(ttl, cleanup)}
}

// GetLocation returns the cached location for ip, or nil on a miss
func (c *MemoryCache) GetLocation(_ context.Context, ip string) (*model.Location, error) {
	v, ok := c.store.Get(ip)
	if !ok {
		return nil, nil
	}
	loc := v.(model.Location)
	return &loc, nil
}

// SaveLocation caches loc for ip
func (c *MemoryCache) SaveLocation(_ context.Context, ip string, loc *model.Location) error {
	c.store.SetDefault(ip, *loc)
	return nil
}

// Len returns the number of cached entries, expired ones included until cleanup
func (c *MemoryCache) Len() int {
	return c.store.ItemCount()
}
