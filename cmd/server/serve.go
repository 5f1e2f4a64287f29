package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"blog_backend/internal/app/config"
	"blog_backend/internal/app/di"
	"blog_backend/internal/app/gqlapi"
	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authgraphql "blog_backend/internal/feature/auth/transport/graphql"
	authusecase "blog_backend/internal/feature/auth/usecase"
	bloggraphql "blog_backend/internal/feature/blog/transport/graphql"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	platformdb "blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/metrics"
	"blog_backend/internal/platform/password"
	infraredis "blog_backend/internal/platform/redis"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the GraphQL API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.CacheEnabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// JWT（署名鍵は起動時に一度だけ読み込む）
	codec, err := jwtmw.NewCodec(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		return fmt.Errorf("invalid JWT configuration: %w", err)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	profileRepo := authadapters.NewProfileRepository(db)
	postRepo := di.NewPostRepository(rdb, db, cfg.PostsCacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, profileRepo, platformdb.NewTransactor(db),
		password.NewBcryptHasher(password.DefaultCost), codec, cfg.StorageTimeout)
	blogUC := blogusecase.NewBlogUsecase(userRepo, profileRepo, postRepo, cfg.StorageTimeout)

	// GraphQL
	m := metrics.New()
	schemas, err := gqlapi.NewSchemas(authgraphql.NewMutationResolver(authUC, m), bloggraphql.NewQueryResolver(blogUC))
	if err != nil {
		return fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	health, err := di.NewHealthHandler(db, rdb)
	if err != nil {
		return err
	}

	// ルータ生成
	r := router.NewRouter(gqlapi.NewHandler(schemas, m), codec, health, m.Handler())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
