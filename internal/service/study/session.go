package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/pkg/ctxutil"
)

// StartSession plans today's review queue.
//
// When the daily goal is already met the card store is not queried. When no
// unreviewed card is left the result is EXHAUSTED. Otherwise any previous
// active session is abandoned and a new one is persisted with its cursor on
// the first card.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return StartResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return StartResult{}, err
	}

	now := s.clock.Now()
	date := s.today(now)

	progress, err := s.loadProgress(ctx, userID, date)
	if err != nil {
		return StartResult{}, err
	}

	remaining := progress.Remaining()
	if remaining <= 0 {
		s.log.InfoContext(ctx, "daily goal already met",
			slog.String("user_id", userID.String()),
			slog.Int("cards_reviewed", progress.CardsReviewed),
			slog.Int("daily_goal", progress.DailyGoal),
		)
		return StartResult{Outcome: domain.OutcomeGoalMet, Progress: progress}, nil
	}

	if input.CardID != nil {
		if _, err := s.cards.GetByID(ctx, *input.CardID); err != nil {
			return StartResult{}, fmt.Errorf("get card: %w", err)
		}
	}

	marked, err := s.marks.ListMarked(ctx, userID, date)
	if err != nil {
		return StartResult{}, fmt.Errorf("list reviewed today: %w", err)
	}

	candidates, err := s.cards.List(ctx, domain.CardFilter{
		ExcludeIDs: marked,
		OnlyID:     input.CardID,
		Limit:      remaining,
	})
	if err != nil {
		return StartResult{}, fmt.Errorf("list candidate cards: %w", err)
	}

	if len(candidates) == 0 {
		s.log.InfoContext(ctx, "no cards left to review",
			slog.String("user_id", userID.String()),
			slog.Int("reviewed_today", len(marked)),
		)
		return StartResult{Outcome: domain.OutcomeExhausted, Progress: progress}, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
	}

	session := &domain.StudySession{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		CardIDs:    ids,
		Cursor:     0,
		Status:     domain.SessionStatusActive,
		StartedAt:  now,
		OnlyCardID: input.CardID,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.AbandonActive(txCtx, userID, now); err != nil {
			return fmt.Errorf("abandon previous session: %w", err)
		}
		if err := s.sessions.Create(txCtx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return StartResult{}, err
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("cards", len(ids)),
		slog.Int("remaining_goal", remaining),
	)

	first := candidates[0]
	return StartResult{
		Outcome:  domain.OutcomeInSession,
		Progress: progress,
		Session:  session,
		Card:     &first,
	}, nil
}

// GetSession returns a session and the card under its cursor, for resuming.
func (s *Service) GetSession(ctx context.Context, input SessionInput) (SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SessionView{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return SessionView{}, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return SessionView{}, fmt.Errorf("get session: %w", err)
	}

	view := SessionView{Session: *session}
	if session.Status != domain.SessionStatusActive {
		return view, nil
	}

	cardID, ok := session.CurrentCardID()
	if !ok {
		return view, nil
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return SessionView{}, fmt.Errorf("get current card: %w", err)
	}
	view.Card = card

	return view, nil
}

// AbandonSession discards the rest of an active session's queue. Ratings
// already submitted stand. Abandoning a finished session is a no-op.
func (s *Service) AbandonSession(ctx context.Context, input SessionInput) (domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySession{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.StudySession{}, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("get session: %w", err)
	}

	if session.Status != domain.SessionStatusActive {
		return *session, nil
	}

	now := s.clock.Now()
	if err := s.sessions.Abandon(ctx, userID, session.ID, now); err != nil {
		return domain.StudySession{}, fmt.Errorf("abandon session: %w", err)
	}

	session.Status = domain.SessionStatusAbandoned
	session.FinishedAt = &now

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("cursor", session.Cursor),
		slog.Int("cards", len(session.CardIDs)),
	)

	return *session, nil
}
