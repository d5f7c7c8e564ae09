// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ums_backend/internal/feature/userdirectory/domain/entity"
	"ums_backend/internal/feature/userdirectory/usecase"
)

// DefaultUsersKey is the cache key for the full user listing.
const DefaultUsersKey = "users:all"

// CachingUserRepository decorates a UserRepository with a Redis read cache
// for the full listing. Writes through Create invalidate the cached listing.
type CachingUserRepository struct {
	inner usecase.UserRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 30 seconds. If key is empty, DefaultUsersKey is used.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, key string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if key == "" {
		key = DefaultUsersKey
	}
	return &CachingUserRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// ListAll returns the cached listing if present, otherwise reads through to the inner repository.
func (c *CachingUserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("users cache read failed", "key", c.key, "error", err)
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts through the inner repository and invalidates the cached listing.
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := c.inner.Create(ctx, user); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		slog.Warn("users cache invalidation failed", "key", c.key, "error", err)
	}
	return nil
}
