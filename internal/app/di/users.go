// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ums_backend/internal/feature/userdirectory/adapters"
	"ums_backend/internal/feature/userdirectory/usecase"
	"ums_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available and ttl is positive, the PostgreSQL repository is
// wrapped with a Redis read cache. Otherwise every call hits the database.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.UserRepository {
	repo := adapters.NewUserRepository(db)
	if rdb != nil && ttl > 0 {
		return cache.NewCachingUserRepository(rdb, ttl, repo, cache.DefaultUsersKey)
	}
	return repo
}
