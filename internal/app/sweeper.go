package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type staleSessionRepo interface {
	AbandonStale(ctx context.Context, before, now time.Time) (int64, error)
}

// Sweeper abandons ACTIVE study sessions whose start is older than a
// threshold, so a client that walked away does not keep a session open.
type Sweeper struct {
	repo  staleSessionRepo
	after time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewSweeper creates a Sweeper for sessions idle longer than after.
func NewSweeper(repo staleSessionRepo, after time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		repo:  repo,
		after: after,
		log:   logger.With("component", "session_sweeper"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SweepOnce runs a single pass and returns the number of sessions abandoned.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	now := s.now()
	threshold := now.Add(-s.after)

	n, err := s.repo.AbandonStale(ctx, threshold, now)
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "abandoned stale sessions",
			slog.Int64("count", n),
			slog.Time("threshold", threshold),
		)
	}
	return n, nil
}

// Run sweeps every interval until ctx is cancelled. A failed pass is logged
// and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.WarnContext(ctx, "sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
