// Package db opens and migrates the relational store behind the blog API.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	blogentity "blog_backend/internal/feature/blog/domain/entity"
)

// Supported values of Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultRetryInterval is the pause between connection attempts.
const DefaultRetryInterval = 3 * time.Second

// Config holds the connection settings for the database.
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string

	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string

	// ConnectTimeout bounds how long Open keeps retrying a failing connection.
	ConnectTimeout time.Duration

	RunMigrations bool
}

// Opener opens a gorm connection for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN builds the PostgreSQL connection string for cfg.
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslmode)
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// OpenSQLite opens a SQLite database with foreign keys enforced.
// In-memory databases are pinned to a single connection so every query sees the same data.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses, pausing interval between attempts.
func ConnectWithRetry(ctx context.Context, dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	backoff := retry.WithMaxDuration(timeout, retry.NewConstant(interval))

	var db *gorm.DB
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := opener(dsn)
		if err != nil {
			slog.Warn("DB connect failed, retrying", "error", err)
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
	}
	return db, nil
}

// Open connects to the configured database and runs migrations when enabled.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case DriverSQLite:
		db, err = OpenSQLite(cfg.SQLitePath)
		if err == nil {
			slog.Info("using sqlite", "path", cfg.SQLitePath)
		}
	case DriverPostgres, "":
		db, err = ConnectWithRetry(ctx, BuildDSN(cfg), cfg.ConnectTimeout, DefaultRetryInterval, openPostgres)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the users, profiles and posts tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&authentity.Profile{},
		&blogentity.Post{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
