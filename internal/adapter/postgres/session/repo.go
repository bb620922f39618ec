// Package session implements the StudySession repository using PostgreSQL.
// The session row holds the planned queue as a uuid[] and a cursor into it;
// the cursor only moves through a compare-and-swap on its current value.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, date, card_ids, cursor_pos, status, points, only_card_id, started_at, finished_at`

const createSQL = `
INSERT INTO study_sessions (id, user_id, date, card_ids, cursor_pos, status, points, only_card_id, started_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

const getActiveSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1 AND status = 'ACTIVE'`

const advanceSQL = `
UPDATE study_sessions
SET cursor_pos  = cursor_pos + 1,
    points      = points + $4,
    status      = CASE WHEN $5::boolean THEN 'COMPLETED' ELSE status END,
    finished_at = CASE WHEN $5::boolean THEN $6::timestamptz ELSE finished_at END
WHERE id = $1 AND user_id = $2 AND cursor_pos = $3 AND status = 'ACTIVE'`

const abandonSQL = `
UPDATE study_sessions
SET status = 'ABANDONED', finished_at = $3
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`

const abandonActiveSQL = `
UPDATE study_sessions
SET status = 'ABANDONED', finished_at = $2
WHERE user_id = $1 AND status = 'ACTIVE'`

const abandonStaleSQL = `
UPDATE study_sessions
SET status = 'ABANDONED', finished_at = $2
WHERE status = 'ACTIVE' AND started_at < $1`

type sessionRow struct {
	ID         uuid.UUID   `db:"id"`
	UserID     uuid.UUID   `db:"user_id"`
	Date       time.Time   `db:"date"`
	CardIDs    []uuid.UUID `db:"card_ids"`
	Cursor     int         `db:"cursor_pos"`
	Status     string      `db:"status"`
	Points     int         `db:"points"`
	OnlyCardID *uuid.UUID  `db:"only_card_id"`
	StartedAt  time.Time   `db:"started_at"`
	FinishedAt *time.Time  `db:"finished_at"`
}

func (r sessionRow) toDomain() *domain.StudySession {
	return &domain.StudySession{
		ID:         r.ID,
		UserID:     r.UserID,
		Date:       r.Date,
		CardIDs:    r.CardIDs,
		Cursor:     r.Cursor,
		Status:     domain.SessionStatus(r.Status),
		Points:     r.Points,
		OnlyCardID: r.OnlyCardID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	return r.getOne(ctx, sessionID, getByIDSQL, sessionID, userID)
}

// GetActive returns the current ACTIVE session for a user.
// Returns domain.ErrNotFound if no active session exists.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error) {
	return r.getOne(ctx, userID, getActiveSQL, userID)
}

func (r *Repo) getOne(ctx context.Context, key uuid.UUID, sql string, args ...any) (*domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row sessionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("session %s: %w", key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "session", key)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new study session. A partial unique index allows one
// ACTIVE session per user; a second one results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.StudySession) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSQL,
		s.ID,
		s.UserID,
		s.Date,
		s.CardIDs,
		s.Cursor,
		string(s.Status),
		s.Points,
		s.OnlyCardID,
		s.StartedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// Advance moves the cursor of an ACTIVE session forward by one and adds the
// earned points, provided the cursor still sits at expectedCursor. When
// complete is set the session is finished in the same statement.
// Returns domain.ErrConflict if another request moved the cursor first or the
// session is no longer active.
func (r *Repo) Advance(ctx context.Context, userID, sessionID uuid.UUID, expectedCursor, points int, complete bool, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, advanceSQL,
		sessionID, userID, expectedCursor, points, complete, now.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: cursor moved from %d: %w", sessionID, expectedCursor, domain.ErrConflict)
	}
	return nil
}

// Abandon marks an ACTIVE session as ABANDONED.
// Returns domain.ErrNotFound if the session does not exist, belongs to another user, or is not ACTIVE.
func (r *Repo) Abandon(ctx context.Context, userID, sessionID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, abandonSQL, sessionID, userID, now.UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// AbandonActive abandons the user's ACTIVE session, if any.
func (r *Repo) AbandonActive(ctx context.Context, userID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, abandonActiveSQL, userID, now.UTC().Truncate(time.Microsecond)); err != nil {
		return postgres.MapError(err, "active session of user", userID)
	}
	return nil
}

// AbandonStale abandons every ACTIVE session started before the given
// instant and returns how many were closed.
func (r *Repo) AbandonStale(ctx context.Context, before, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, abandonStaleSQL, before.UTC(), now.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, postgres.MapError(err, "stale sessions", nil)
	}
	return ct.RowsAffected(), nil
}
