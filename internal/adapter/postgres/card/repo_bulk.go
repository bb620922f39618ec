package card

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// upsertSQL only touches the row when a field actually changed, so the
// affected-row count tells how many cards were new or edited.
const upsertSQL = `
INSERT INTO cards (id, front, back, phonetic, audio_url, difficulty, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    front      = EXCLUDED.front,
    back       = EXCLUDED.back,
    phonetic   = EXCLUDED.phonetic,
    audio_url  = EXCLUDED.audio_url,
    difficulty = EXCLUDED.difficulty
WHERE (cards.front, cards.back, cards.phonetic, cards.audio_url, cards.difficulty)
      IS DISTINCT FROM
      (EXCLUDED.front, EXCLUDED.back, EXCLUDED.phonetic, EXCLUDED.audio_url, EXCLUDED.difficulty)`

// Upsert writes catalog cards in one pgx.Batch round trip. It is used by
// the deck seeder only; the study API never writes cards.
// Returns the number of inserted or changed rows.
func (r *Repo) Upsert(ctx context.Context, cards []domain.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(upsertSQL, c.ID, c.Front, c.Back, c.Phonetic, c.AudioURL, c.Difficulty, c.CreatedAt)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, postgres.MapError(fmt.Errorf("upsert card %d: %w", i, err), "card", cards[i].ID)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}
