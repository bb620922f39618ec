// Package progress implements the DailyProgress repository using PostgreSQL.
// Counters are only changed through single upsert statements, so concurrent
// ratings never lose an increment.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Repo provides daily progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const progressColumns = `user_id, date, cards_reviewed, daily_goal, total_points`

const getSQL = `
SELECT ` + progressColumns + `
FROM daily_progress
WHERE user_id = $1 AND date = $2`

const incrementSQL = `
INSERT INTO daily_progress (user_id, date, cards_reviewed, total_points, daily_goal, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id, date) DO UPDATE
SET cards_reviewed = daily_progress.cards_reviewed + EXCLUDED.cards_reviewed,
    total_points   = daily_progress.total_points + EXCLUDED.total_points,
    updated_at     = now()
RETURNING ` + progressColumns

const setGoalSQL = `
INSERT INTO daily_progress (user_id, date, daily_goal, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, date) DO UPDATE
SET daily_goal = EXCLUDED.daily_goal,
    updated_at = now()
RETURNING ` + progressColumns

type progressRow struct {
	UserID        uuid.UUID `db:"user_id"`
	Date          time.Time `db:"date"`
	CardsReviewed int       `db:"cards_reviewed"`
	DailyGoal     int       `db:"daily_goal"`
	TotalPoints   int       `db:"total_points"`
}

func (r *Repo) getOne(ctx context.Context, userID uuid.UUID, sql string, args ...any) (*domain.DailyProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row progressRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("daily progress of user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "daily progress of user", userID)
	}

	return &domain.DailyProgress{
		UserID:        row.UserID,
		Date:          row.Date,
		CardsReviewed: row.CardsReviewed,
		DailyGoal:     row.DailyGoal,
		TotalPoints:   row.TotalPoints,
	}, nil
}

// Get returns the user's progress for the given date.
// Returns domain.ErrNotFound if nothing was recorded that day.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyProgress, error) {
	return r.getOne(ctx, userID, getSQL, userID, date)
}

// AtomicIncrement adds to the day's counters, creating the row with
// defaultGoal on the first call of the day, and returns the new totals.
func (r *Repo) AtomicIncrement(ctx context.Context, userID uuid.UUID, date time.Time, deltaCards, deltaPoints, defaultGoal int) (*domain.DailyProgress, error) {
	return r.getOne(ctx, userID, incrementSQL, userID, date, deltaCards, deltaPoints, defaultGoal)
}

// SetGoal sets the day's goal, keeping counters already recorded.
func (r *Repo) SetGoal(ctx context.Context, userID uuid.UUID, date time.Time, goal int) (*domain.DailyProgress, error) {
	return r.getOne(ctx, userID, setGoalSQL, userID, date, goal)
}
