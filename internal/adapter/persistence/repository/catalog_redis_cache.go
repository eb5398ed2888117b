package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogKeyPrefix = "catalog:"

// CachedCatalogRepository wraps a catalog store with a Redis read-through
// cache. Redis failures are logged and fall through to the wrapped store.
type CachedCatalogRepository struct {
	inner  interfaces.ICatalogRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var (
	_ interfaces.ICatalogRepository = (*CachedCatalogRepository)(nil)
	_ interfaces.ICatalogCache      = (*CachedCatalogRepository)(nil)
)

func NewCachedCatalogRepository(
	inner interfaces.ICatalogRepository,
	rdb *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) *CachedCatalogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCatalogRepository{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CachedCatalogRepository) ListServices(ctx context.Context, propertyType string) ([]entities.Service, error) {
	key := catalogKeyPrefix + "services:" + normalizeKey(propertyType)
	return readThrough(ctx, c, key, func() ([]entities.Service, error) {
		return c.inner.ListServices(ctx, propertyType)
	}, always[[]entities.Service])
}

func (c *CachedCatalogRepository) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	key := catalogKeyPrefix + "service:" + id
	return readThrough(ctx, c, key, func() (entities.Service, error) {
		return c.inner.GetServiceByID(ctx, id)
	}, func(s entities.Service) bool { return s.ID != "" })
}

func (c *CachedCatalogRepository) ServicesByNames(ctx context.Context, names []string) ([]entities.Service, error) {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, normalizeKey(n))
	}
	key := catalogKeyPrefix + "services-by-name:" + strings.Join(keys, "|")
	return readThrough(ctx, c, key, func() ([]entities.Service, error) {
		return c.inner.ServicesByNames(ctx, names)
	}, always[[]entities.Service])
}

func (c *CachedCatalogRepository) MaterialsForServices(ctx context.Context, serviceIDs []string) ([]entities.Material, error) {
	key := catalogKeyPrefix + "materials-for:" + strings.Join(serviceIDs, "|")
	return readThrough(ctx, c, key, func() ([]entities.Material, error) {
		return c.inner.MaterialsForServices(ctx, serviceIDs)
	}, always[[]entities.Material])
}

func (c *CachedCatalogRepository) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return readThrough(ctx, c, catalogKeyPrefix+"materials", func() ([]entities.Material, error) {
		return c.inner.ListMaterials(ctx)
	}, always[[]entities.Material])
}

func (c *CachedCatalogRepository) GetMaterialByID(ctx context.Context, id string) (entities.Material, error) {
	key := catalogKeyPrefix + "material:" + id
	return readThrough(ctx, c, key, func() (entities.Material, error) {
		return c.inner.GetMaterialByID(ctx, id)
	}, func(m entities.Material) bool { return m.ID != "" })
}

// Invalidate drops every cached catalog entry.
func (c *CachedCatalogRepository) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, catalogKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan catalog cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	c.logger.Debug("Invalidated catalog cache", zap.Int("key_count", len(keys)))
	return nil
}

// readThrough serves key from Redis or loads and stores it. Values rejected
// by cacheable, such as not-found zero entities, are returned uncached.
func readThrough[T any](
	ctx context.Context,
	c *CachedCatalogRepository,
	key string,
	load func() (T, error),
	cacheable func(T) bool,
) (T, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out T
		if err := json.Unmarshal(val, &out); err == nil {
			return out, nil
		}
		c.logger.Warn("Discarding undecodable catalog cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
	}

	out, err := load()
	if err != nil || !cacheable(out) {
		return out, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		c.logger.Warn("Failed to marshal catalog cache entry", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func always[T any](T) bool { return true }
