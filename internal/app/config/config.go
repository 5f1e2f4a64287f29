// Package config loads the application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"blog_backend/internal/platform/cache"
	platformdb "blog_backend/internal/platform/db"
	"blog_backend/internal/platform/redis"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset or blank.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config is built once in main and passed to constructors.
type Config struct {
	HTTPAddr string

	JWTSecret     string
	JWTExpiration time.Duration

	DB             platformdb.Config
	StorageTimeout time.Duration

	// Redis.Host が空の場合、キャッシュは無効
	Redis         redis.Config
	PostsCacheTTL time.Duration

	LogLevel  slog.Level
	LogFormat string
}

// DefaultEnvFile is read by Load when no other path is given.
const DefaultEnvFile = ".env"

// Load reads envFile when present, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	// .envを読み込む（存在しなければ環境変数のみ）
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("env file not found; using system environment variables", "path", envFile)
	}
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config using getenv for every variable.
func FromLookup(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var errs []error
	duration := func(key string, def time.Duration) time.Duration {
		raw := env(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("invalid %s %q", key, raw))
			return def
		}
		return d
	}

	cfg := Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		JWTSecret:     env("JWT_SECRET", ""),
		JWTExpiration: duration("JWT_EXPIRATION", time.Hour),
		DB: platformdb.Config{
			Driver:         env("DB_DRIVER", platformdb.DriverPostgres),
			User:           env("DB_USER", ""),
			Password:       getenv("DB_PASSWORD"),
			Name:           env("DB_NAME", ""),
			Host:           env("DB_HOST", "localhost"),
			Port:           env("DB_PORT", "5432"),
			SSLMode:        env("DB_SSLMODE", "disable"),
			SQLitePath:     env("SQLITE_PATH", "./blog.db"),
			ConnectTimeout: duration("DB_CONNECT_TIMEOUT", 30*time.Second),
		},
		StorageTimeout: duration("STORAGE_TIMEOUT", 5*time.Second),
		Redis: redis.Config{
			Host:     env("REDIS_HOST", ""),
			Port:     env("REDIS_PORT", "6379"),
			Password: getenv("REDIS_PASSWORD"),
		},
		PostsCacheTTL: duration("POSTS_CACHE_TTL", cache.DefaultTTL),
		LogFormat:     strings.ToLower(env("LOG_FORMAT", "text")),
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, ErrMissingJWTSecret)
	}

	runMigrations, err := strconv.ParseBool(env("RUN_MIGRATIONS", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid RUN_MIGRATIONS %q", getenv("RUN_MIGRATIONS")))
	}
	cfg.DB.RunMigrations = runMigrations

	if err := cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", getenv("LOG_LEVEL")))
	}

	switch cfg.DB.Driver {
	case platformdb.DriverPostgres, platformdb.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CacheEnabled reports whether a Redis host is configured.
func (c Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}
