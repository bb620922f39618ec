// Package card implements the read-only Card catalog using PostgreSQL.
// Candidate selection is built with squirrel since its filter is dynamic;
// rows are scanned with scany.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Repo provides card reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var cardColumns = []string{"id", "front", "back", "phonetic", "audio_url", "difficulty", "created_at"}

const getByIDSQL = `
SELECT id, front, back, phonetic, audio_url, difficulty, created_at
FROM cards
WHERE id = $1`

const countSQL = `SELECT count(*) FROM cards`

type cardRow struct {
	ID         uuid.UUID `db:"id"`
	Front      string    `db:"front"`
	Back       string    `db:"back"`
	Phonetic   *string   `db:"phonetic"`
	AudioURL   *string   `db:"audio_url"`
	Difficulty int       `db:"difficulty"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r cardRow) toDomain() domain.Card {
	return domain.Card{
		ID:         r.ID,
		Front:      r.Front,
		Back:       r.Back,
		Phonetic:   r.Phonetic,
		AudioURL:   r.AudioURL,
		Difficulty: r.Difficulty,
		CreatedAt:  r.CreatedAt,
	}
}

// GetByID returns a card by primary key.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row cardRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, cardID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "card", cardID)
	}

	c := row.toDomain()
	return &c, nil
}

// List returns cards ordered by difficulty ascending, then by id so that
// cards of equal difficulty always come back in the same order.
func (r *Repo) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	sql, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []cardRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "cards", nil)
	}

	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return cards, nil
}

// Count returns the number of cards in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "cards", nil)
	}
	return n, nil
}

func buildListQuery(filter domain.CardFilter) squirrel.SelectBuilder {
	b := psql.Select(cardColumns...).
		From("cards").
		OrderBy("difficulty ASC", "id ASC")

	// uuid.UUID is an array type, which squirrel.Eq would expand into an IN list.
	if filter.OnlyID != nil {
		b = b.Where("id = ?", *filter.OnlyID)
	}
	if len(filter.ExcludeIDs) > 0 {
		b = b.Where("id <> ALL(?)", filter.ExcludeIDs)
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	return b
}
