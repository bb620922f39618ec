package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCard inserts a card with the given difficulty.
func SeedCard(t *testing.T, pool *pgxpool.Pool, difficulty int) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	phonetic := "/" + suffix + "/"
	card := domain.Card{
		ID:         uuid.New(),
		Front:      "үг " + suffix,
		Back:       "word " + suffix,
		Phonetic:   &phonetic,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, front, back, phonetic, audio_url, difficulty, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.Front, card.Back, card.Phonetic, card.AudioURL, card.Difficulty, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}

// SeedCards inserts one card per difficulty value, in order.
func SeedCards(t *testing.T, pool *pgxpool.Pool, difficulties ...int) []domain.Card {
	t.Helper()

	cards := make([]domain.Card, len(difficulties))
	for i, d := range difficulties {
		cards[i] = SeedCard(t, pool, d)
	}
	return cards
}
