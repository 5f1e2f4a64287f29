// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// DefaultTTL is how long a cached listing stays valid when no TTL is configured.
const DefaultTTL = 30 * time.Second

// CachingPostRepository decorates a PostRepository with Redis caching of public listings.
// Listings that include drafts are private to their author and always go to the inner repository.
type CachingPostRepository struct {
	inner     usecase.PostRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PostRepository = (*CachingPostRepository)(nil)

// NewCachingPostRepository decorates a PostRepository with Redis caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "posts".
// A nil rdb disables caching.
func NewCachingPostRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PostRepository, namespace string) *CachingPostRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "posts"
	}
	return &CachingPostRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListPublished returns the public listing, from cache when possible.
func (c *CachingPostRepository) ListPublished(ctx context.Context) ([]entity.Post, error) {
	return c.cached(ctx, c.publishedKey(), func(ctx context.Context) ([]entity.Post, error) {
		return c.inner.ListPublished(ctx)
	})
}

// ListByAuthor caches an author's published posts; listings with drafts bypass the cache.
func (c *CachingPostRepository) ListByAuthor(ctx context.Context, authorID uint, includeDrafts bool) ([]entity.Post, error) {
	if includeDrafts {
		return c.inner.ListByAuthor(ctx, authorID, true)
	}
	return c.cached(ctx, c.authorKey(authorID), func(ctx context.Context) ([]entity.Post, error) {
		return c.inner.ListByAuthor(ctx, authorID, false)
	})
}

func (c *CachingPostRepository) cached(ctx context.Context, key string, load func(context.Context) ([]entity.Post, error)) ([]entity.Post, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Post
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("post cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to database
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingPostRepository) publishedKey() string {
	return c.namespace + ":published"
}

func (c *CachingPostRepository) authorKey(authorID uint) string {
	return fmt.Sprintf("%s:author:%d:published", c.namespace, authorID)
}
