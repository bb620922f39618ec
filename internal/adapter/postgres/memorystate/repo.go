// Package memorystate implements the per user×card SM-2 state repository
// using PostgreSQL.
package memorystate

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Repo provides memory state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new memory state repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT user_id, card_id, interval_days, ease_factor, repetitions, lapses, last_reviewed, next_review
FROM memory_states
WHERE user_id = $1 AND card_id = $2`

const upsertSQL = `
INSERT INTO memory_states (user_id, card_id, interval_days, ease_factor, repetitions, lapses, last_reviewed, next_review, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
ON CONFLICT (user_id, card_id) DO UPDATE
SET interval_days = EXCLUDED.interval_days,
    ease_factor   = EXCLUDED.ease_factor,
    repetitions   = EXCLUDED.repetitions,
    lapses        = EXCLUDED.lapses,
    last_reviewed = EXCLUDED.last_reviewed,
    next_review   = EXCLUDED.next_review,
    updated_at    = now()`

const countStudiedSQL = `SELECT count(*) FROM memory_states WHERE user_id = $1`

const countMasteredSQL = `SELECT count(*) FROM memory_states WHERE user_id = $1 AND repetitions >= $2`

const countDueSQL = `SELECT count(*) FROM memory_states WHERE user_id = $1 AND next_review < $2`

type stateRow struct {
	UserID       uuid.UUID  `db:"user_id"`
	CardID       uuid.UUID  `db:"card_id"`
	Interval     float64    `db:"interval_days"`
	EaseFactor   float64    `db:"ease_factor"`
	Repetitions  int        `db:"repetitions"`
	Lapses       int        `db:"lapses"`
	LastReviewed *time.Time `db:"last_reviewed"`
	NextReview   *time.Time `db:"next_review"`
}

// Get returns the memory state of a card for a user.
// Returns domain.ErrNotFound if the user has never rated the card.
func (r *Repo) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.MemoryState, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stateRow
	if err := pgxscan.Get(ctx, q, &row, getSQL, userID, cardID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("memory state %s: %w", cardID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "memory state", cardID)
	}

	return &domain.MemoryState{
		UserID:       row.UserID,
		CardID:       row.CardID,
		Interval:     row.Interval,
		EaseFactor:   row.EaseFactor,
		Repetitions:  row.Repetitions,
		Lapses:       row.Lapses,
		LastReviewed: row.LastReviewed,
		NextReview:   row.NextReview,
	}, nil
}

// Upsert writes the state, replacing any previous one for the same user and card.
func (r *Repo) Upsert(ctx context.Context, s *domain.MemoryState) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, upsertSQL,
		s.UserID,
		s.CardID,
		s.Interval,
		s.EaseFactor,
		s.Repetitions,
		s.Lapses,
		s.LastReviewed,
		s.NextReview,
	)
	if err != nil {
		return postgres.MapError(err, "memory state", s.CardID)
	}
	return nil
}

// CountStudied returns how many cards the user has rated at least once.
func (r *Repo) CountStudied(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.count(ctx, userID, countStudiedSQL, userID)
}

// CountMastered returns how many cards reached the given repetition streak.
func (r *Repo) CountMastered(ctx context.Context, userID uuid.UUID, minRepetitions int) (int, error) {
	return r.count(ctx, userID, countMasteredSQL, userID, minRepetitions)
}

// CountDue returns how many rated cards are scheduled before the given instant.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, before time.Time) (int, error) {
	return r.count(ctx, userID, countDueSQL, userID, before)
}

func (r *Repo) count(ctx context.Context, userID uuid.UUID, sql string, args ...any) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "memory states of user", userID)
	}
	return n, nil
}
