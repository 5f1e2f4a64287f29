package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"blog_backend/internal/platform/http/handler"
)

// redisPinger adapts *redis.Client to handler.Pinger.
type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// NewHealthHandler creates a HealthHandler that checks the database and, when configured, Redis.
func NewHealthHandler(db *gorm.DB, rdb *redis.Client) (*handler.HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	deps := map[string]handler.Pinger{"db": sqlDB}
	if rdb != nil {
		deps["redis"] = redisPinger{rdb: rdb}
	}
	return handler.NewHealthHandler(deps), nil
}
