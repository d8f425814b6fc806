package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/adapters"
	"account_backend/internal/feature/accounts/usecase"
	"account_backend/internal/platform/cache"
)

// NewUserRepository creates the UserRepository used by the accounts feature.
// If Redis is available, profile reads are served through a caching
// decorator. Otherwise the bare Postgres repository is returned.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, cacheTTL time.Duration) usecase.UserRepository {
	repo := adapters.NewUserPostgres(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, cacheTTL, repo, "users")
	}
	return repo
}
