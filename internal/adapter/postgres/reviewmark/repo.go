// Package reviewmark implements the "reviewed today" markers using PostgreSQL.
package reviewmark

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
)

// Repo provides reviewed-mark persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reviewed-mark repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const markSQL = `
INSERT INTO reviewed_marks (user_id, card_id, date)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, date, card_id) DO NOTHING`

const listMarkedSQL = `
SELECT card_id FROM reviewed_marks
WHERE user_id = $1 AND date = $2
ORDER BY card_id`

// MarkIdempotent records that the user reviewed the card on the given date.
// Marking the same card twice is a no-op.
func (r *Repo) MarkIdempotent(ctx context.Context, userID, cardID uuid.UUID, date time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, markSQL, userID, cardID, date); err != nil {
		return postgres.MapError(err, "reviewed mark", cardID)
	}
	return nil
}

// ListMarked returns the IDs of cards the user reviewed on the given date.
func (r *Repo) ListMarked(ctx context.Context, userID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, listMarkedSQL, userID, date); err != nil {
		return nil, postgres.MapError(err, "reviewed marks of user", userID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
