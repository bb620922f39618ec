package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/pkg/ctxutil"
	"golang.org/x/sync/errgroup"
)

// GetDashboard returns today's progress and card statistics for the user.
// DueCards counts cards scheduled before the next local midnight.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	date, nextDay := calendarDay(now, s.cfg.Location)

	var (
		progress domain.DailyProgress
		dash     = domain.Dashboard{Date: date}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		progress, err = s.loadProgress(gctx, userID, date)
		return err
	})

	g.Go(func() error {
		var err error
		dash.TotalCards, err = s.cards.Count(gctx)
		if err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dash.StudiedCards, err = s.states.CountStudied(gctx, userID)
		if err != nil {
			return fmt.Errorf("count studied cards: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dash.MasteredCards, err = s.states.CountMastered(gctx, userID, domain.MasteredRepetitions)
		if err != nil {
			return fmt.Errorf("count mastered cards: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dash.DueCards, err = s.states.CountDue(gctx, userID, nextDay)
		if err != nil {
			return fmt.Errorf("count due cards: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		active, err := s.sessions.GetActive(gctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("get active session: %w", err)
		}
		dash.ActiveSession = &active.ID
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	dash.CardsReviewed = progress.CardsReviewed
	dash.DailyGoal = progress.DailyGoal
	dash.Remaining = progress.Remaining()
	dash.TotalPoints = progress.TotalPoints

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("cards_reviewed", dash.CardsReviewed),
		slog.Int("due_cards", dash.DueCards),
	)

	return dash, nil
}

// SetDailyGoal changes today's goal. Cards already reviewed today count
// toward the new goal.
func (s *Service) SetDailyGoal(ctx context.Context, input SetDailyGoalInput) (domain.DailyProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DailyProgress{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.DailyProgress{}, err
	}

	date := s.today(s.clock.Now())

	progress, err := s.progress.SetGoal(ctx, userID, date, input.Goal)
	if err != nil {
		return domain.DailyProgress{}, fmt.Errorf("set daily goal: %w", err)
	}

	s.log.InfoContext(ctx, "daily goal set",
		slog.String("user_id", userID.String()),
		slog.Int("goal", input.Goal),
	)

	return *progress, nil
}

// GetCardHistory returns the user's review history of a card with pagination.
func (s *Service) GetCardHistory(ctx context.Context, input GetCardHistoryInput) (CardHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return CardHistory{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return CardHistory{}, err
	}

	if _, err := s.cards.GetByID(ctx, input.CardID); err != nil {
		return CardHistory{}, fmt.Errorf("get card: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	logs, total, err := s.reviews.ListByCard(ctx, userID, input.CardID, limit, input.Offset)
	if err != nil {
		return CardHistory{}, fmt.Errorf("list review logs: %w", err)
	}

	return CardHistory{Logs: logs, Total: total}, nil
}
