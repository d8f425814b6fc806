// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching.
// Only FindByID (profile reads) is cached; FindByName and FindByEmail feed
// the authentication flow and always hit the underlying store so that
// credential checks see fresh data. Delete evicts the cached entry.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a user through the underlying repository. Freshly created
// users have no cache entry yet, so there is nothing to invalidate.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.inner.Create(ctx, u)
}

// FindByName always passes through to the underlying repository.
func (c *CachingUserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return c.inner.FindByName(ctx, name)
}

// FindByEmail always passes through to the underlying repository.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// FindByID retrieves a user, checking cache first then falling back to the
// database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Delete removes a user and evicts its cache entry.
func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(id)).Err() // Best effort: don't fail if cache eviction fails
	}
	return nil
}

// cacheKey generates the cache key for a user ID.
func (c *CachingUserRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}
