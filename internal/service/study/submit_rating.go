package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/internal/service/study/sm2"
	"github.com/heartmarshall/mnflash-backend/pkg/ctxutil"
)

// SubmitRating records the rating of the card under the session cursor.
//
// The memory state upsert, review log, reviewed-today mark, progress
// increment and cursor advance commit together or not at all. A second
// submit for the same cursor position fails with ErrConflict.
func (s *Service) SubmitRating(ctx context.Context, input SubmitRatingInput) (RatingResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return RatingResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return RatingResult{}, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return RatingResult{}, fmt.Errorf("get session: %w", err)
	}
	if session.Status != domain.SessionStatusActive {
		return RatingResult{}, fmt.Errorf("session is %s: %w", session.Status, domain.ErrConflict)
	}
	current, ok := session.CurrentCardID()
	if !ok || current != input.CardID {
		return RatingResult{}, fmt.Errorf("card %s is not the current card: %w", input.CardID, domain.ErrConflict)
	}

	now := s.clock.Now()
	date := s.today(now)
	points := s.reward.Points(input.Rating)
	complete := session.Cursor+1 >= len(session.CardIDs)

	var (
		next     domain.MemoryState
		progress *domain.DailyProgress
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prev, prevSnapshot, err := s.loadMemoryState(txCtx, userID, input.CardID)
		if err != nil {
			return err
		}

		next = sm2.NextState(input.Rating, prev, now)

		if err := s.states.Upsert(txCtx, &next); err != nil {
			return fmt.Errorf("upsert memory state: %w", err)
		}

		if err := s.reviews.Append(txCtx, &domain.ReviewLog{
			ID:         uuid.New(),
			UserID:     userID,
			CardID:     input.CardID,
			SessionID:  &session.ID,
			Rating:     input.Rating,
			Points:     points,
			PrevState:  prevSnapshot,
			NextReview: *next.NextReview,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("append review log: %w", err)
		}

		if err := s.marks.MarkIdempotent(txCtx, userID, input.CardID, date); err != nil {
			return fmt.Errorf("mark reviewed today: %w", err)
		}

		progress, err = s.progress.AtomicIncrement(txCtx, userID, date, 1, points, s.cfg.DefaultDailyGoal)
		if err != nil {
			return fmt.Errorf("increment daily progress: %w", err)
		}

		if err := s.sessions.Advance(txCtx, userID, session.ID, session.Cursor, points, complete, now); err != nil {
			return fmt.Errorf("advance session: %w", err)
		}
		return nil
	})
	if err != nil {
		return RatingResult{}, err
	}

	session.Cursor++
	session.Points += points
	if complete {
		session.Status = domain.SessionStatusCompleted
		session.FinishedAt = &now
	}

	s.log.InfoContext(ctx, "card rated",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("rating", input.Rating.String()),
		slog.Float64("interval", next.Interval),
		slog.Float64("ease_factor", next.EaseFactor),
		slog.Int("points", points),
	)

	result := RatingResult{
		Outcome:  domain.OutcomeInSession,
		State:    next,
		Points:   points,
		Progress: *progress,
		Session:  *session,
	}

	if complete {
		result.Outcome = domain.OutcomeComplete
		s.log.InfoContext(ctx, "session completed",
			slog.String("user_id", userID.String()),
			slog.String("session_id", session.ID.String()),
			slog.Int("cards", len(session.CardIDs)),
			slog.Int("points", session.Points),
		)
		if s.onComplete != nil {
			s.onComplete(ctx, *session)
		}
		return result, nil
	}

	nextID, _ := session.CurrentCardID()
	card, err := s.cards.GetByID(ctx, nextID)
	if err != nil {
		// The rating is committed; the client can resume through GetSession.
		s.log.WarnContext(ctx, "load next card",
			slog.String("session_id", session.ID.String()),
			slog.String("card_id", nextID.String()),
			slog.String("error", err.Error()),
		)
		return result, nil
	}
	result.NextCard = card

	return result, nil
}

// loadMemoryState returns the stored state, or defaults with a nil snapshot
// for a card the user has never rated.
func (s *Service) loadMemoryState(ctx context.Context, userID, cardID uuid.UUID) (domain.MemoryState, *domain.MemorySnapshot, error) {
	state, err := s.states.Get(ctx, userID, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewMemoryState(userID, cardID), nil, nil
		}
		return domain.MemoryState{}, nil, fmt.Errorf("get memory state: %w", err)
	}
	return *state, state.Snapshot(), nil
}
