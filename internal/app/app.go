package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/memorystate"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/reviewmark"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mnflash-backend/internal/auth"
	"github.com/heartmarshall/mnflash-backend/internal/config"
	"github.com/heartmarshall/mnflash-backend/internal/service/study"
	"github.com/heartmarshall/mnflash-backend/internal/transport/middleware"
	"github.com/heartmarshall/mnflash-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the study service behind the REST API and serves until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.SRS.Location.String()),
		slog.String("reward_scheme", cfg.SRS.RewardScheme),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sessions := session.New(pool)

	svc, err := study.NewService(
		logger,
		card.New(pool),
		memorystate.New(pool),
		progress.New(pool),
		reviewlog.New(pool),
		reviewmark.New(pool),
		sessions,
		postgres.NewTxManager(pool),
		study.SystemClock{},
		cfg.SRS.Domain(),
	)
	if err != nil {
		return fmt.Errorf("create study service: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, Version),
		rest.NewStudyHandler(svc, logger),
	)
	handler := newHandler(cfg, router, auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), limiter, logger)

	srv := NewHTTPServer(cfg.Server, handler, logger)
	sweeper := NewSweeper(sessions, cfg.SRS.StaleSessionAfter, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serve(gctx, srv, cfg.Server, logger)
	})
	if cfg.SRS.SweepInterval > 0 {
		g.Go(func() error {
			return sweeper.Run(gctx, cfg.SRS.SweepInterval)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
