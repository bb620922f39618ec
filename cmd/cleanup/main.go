// Command cleanup abandons study sessions that stayed ACTIVE longer than
// srs.stale_session_after. It is intended to be invoked by an external cron
// job when the in-process sweeper is disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mnflash-backend/internal/app"
	"github.com/heartmarshall/mnflash-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	sweeper := app.NewSweeper(session.New(pool), cfg.SRS.StaleSessionAfter, logger)

	abandoned, err := sweeper.SweepOnce(ctx)
	if err != nil {
		logger.Error("stale session cleanup failed",
			slog.String("error", err.Error()),
			slog.Duration("stale_after", cfg.SRS.StaleSessionAfter),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("stale session cleanup completed",
		slog.Int64("abandoned", abandoned),
		slog.Duration("stale_after", cfg.SRS.StaleSessionAfter),
	)
}
