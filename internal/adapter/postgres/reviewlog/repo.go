// Package reviewlog implements the append-only ReviewLog repository using
// PostgreSQL. The prior memory state is stored as JSONB in prev_state.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const appendSQL = `
INSERT INTO review_logs (id, user_id, card_id, session_id, rating, points, prev_state, next_review, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const countByCardSQL = `SELECT count(*) FROM review_logs WHERE user_id = $1 AND card_id = $2`

const listByCardSQL = `
SELECT id, user_id, card_id, session_id, rating, points, prev_state, next_review, reviewed_at
FROM review_logs
WHERE user_id = $1 AND card_id = $2
ORDER BY reviewed_at DESC, id
LIMIT $3 OFFSET $4`

type reviewLogRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	CardID     uuid.UUID  `db:"card_id"`
	SessionID  *uuid.UUID `db:"session_id"`
	Rating     string     `db:"rating"`
	Points     int        `db:"points"`
	PrevState  []byte     `db:"prev_state"`
	NextReview time.Time  `db:"next_review"`
	ReviewedAt time.Time  `db:"reviewed_at"`
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Append inserts a review log. Logs are never updated.
func (r *Repo) Append(ctx context.Context, rl *domain.ReviewLog) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	prevState, err := marshalPrevState(rl.PrevState)
	if err != nil {
		return fmt.Errorf("review_log %s: %w", rl.ID, err)
	}

	_, err = q.Exec(ctx, appendSQL,
		rl.ID,
		rl.UserID,
		rl.CardID,
		rl.SessionID,
		string(rl.Rating),
		rl.Points,
		prevState,
		rl.NextReview.UTC(),
		rl.ReviewedAt.UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "review_log", rl.ID)
	}
	return nil
}

// ListByCard returns the user's review logs for a card, newest first, with
// limit/offset pagination. Returns logs, total count, and error.
func (r *Repo) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByCardSQL, userID, cardID).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "review_logs of card", cardID)
	}

	var rows []reviewLogRow
	if err := pgxscan.Select(ctx, q, &rows, listByCardSQL, userID, cardID, limit, offset); err != nil {
		return nil, 0, postgres.MapError(err, "review_logs of card", cardID)
	}

	logs := make([]domain.ReviewLog, len(rows))
	for i, row := range rows {
		prev, err := unmarshalPrevState(row.PrevState)
		if err != nil {
			return nil, 0, fmt.Errorf("review_log %s: %w", row.ID, err)
		}
		logs[i] = domain.ReviewLog{
			ID:         row.ID,
			UserID:     row.UserID,
			CardID:     row.CardID,
			SessionID:  row.SessionID,
			Rating:     domain.Rating(row.Rating),
			Points:     row.Points,
			PrevState:  prev,
			NextReview: row.NextReview,
			ReviewedAt: row.ReviewedAt,
		}
	}

	return logs, total, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for prev_state
// ---------------------------------------------------------------------------

// marshalPrevState returns nil for a first-ever rating (stored as NULL).
func marshalPrevState(s *domain.MemorySnapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal prev_state: %w", err)
	}
	return data, nil
}

func unmarshalPrevState(data []byte) (*domain.MemorySnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var s domain.MemorySnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal prev_state: %w", err)
	}
	return &s, nil
}
