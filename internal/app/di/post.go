// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	blogadapters "blog_backend/internal/feature/blog/adapters"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	"blog_backend/internal/platform/cache"
)

// NewPostRepository creates a PostRepository implementation.
// If Redis is available, the GORM repository is wrapped with a Redis cache.
// Otherwise, it queries the database directly.
func NewPostRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) blogusecase.PostRepository {
	repo := blogadapters.NewPostRepository(db)
	if rdb != nil {
		return cache.NewCachingPostRepository(rdb, ttl, repo, "posts")
	}
	return repo
}
