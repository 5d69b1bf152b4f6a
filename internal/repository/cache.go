package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// Cache is a string key/value store with expiry
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CachedCatalog is a read-through cache in front of another catalog.
// Cache failures are logged and never fail the request.
type CachedCatalog struct {
	next  CatalogRepository
	cache Cache
	ttl   time.Duration
	log   *logrus.Logger
}

// NewCachedCatalog wraps next with cache
func NewCachedCatalog(next CatalogRepository, cache Cache, ttl time.Duration, log *logrus.Logger) *CachedCatalog {
	return &CachedCatalog{next: next, cache: cache, ttl: ttl, log: log}
}

func cacheKey(brand, model string) string {
	return fmt.Sprintf("catalog:%s:%s", brand, model)
}

// Variants serves from cache when possible and fills it on a miss
func (c *CachedCatalog) Variants(ctx context.Context, brand, model string) ([]models.Variant, error) {
	key := cacheKey(brand, model)

	if raw, ok := c.cache.Get(ctx, key); ok {
		var variants []models.Variant
		if err := json.Unmarshal([]byte(raw), &variants); err == nil {
			return variants, nil
		}
		c.log.Warnf("Discarding corrupt cache entry %s", key)
	}

	variants, err := c.next.Variants(ctx, brand, model)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(variants)
	if err != nil {
		c.log.Warnf("Failed to encode variants for cache: %v", err)
		return variants, nil
	}
	if err := c.cache.Set(ctx, key, string(payload), c.ttl); err != nil {
		c.log.Warnf("Failed to cache %s: %v", key, err)
	}
	return variants, nil
}

// ReplaceVariants writes through and invalidates the cached entry
func (c *CachedCatalog) ReplaceVariants(ctx context.Context, brand, model string, variants []models.Variant) error {
	if err := c.next.ReplaceVariants(ctx, brand, model, variants); err != nil {
		return err
	}
	if err := c.cache.Delete(ctx, cacheKey(brand, model)); err != nil {
		c.log.Warnf("Failed to invalidate cache for %s %s: %v", brand, model, err)
	}
	return nil
}
