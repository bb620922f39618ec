// Package seeder loads flashcard decks into the card catalog. It is run
// offline, not as part of the main server.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/internal/seeder/deck"
)

// CardWriter persists catalog cards. Implemented by the postgres card repo.
type CardWriter interface {
	Upsert(ctx context.Context, cards []domain.Card) (int, error)
}

// Result summarises one seeder run.
type Result struct {
	Parsed   int
	Rejected int
	Written  int
	Batches  int
}

// Run parses cfg.DeckPath and writes the cards in batches of cfg.BatchSize.
// In dry-run mode nothing is written.
func Run(ctx context.Context, cfg Config, w CardWriter, log *slog.Logger) (Result, error) {
	if cfg.DeckPath == "" {
		return Result{}, errors.New("seeder: deck path is required")
	}

	parsed, err := deck.ParseFile(cfg.DeckPath, time.Now().UTC())
	if err != nil {
		return Result{}, fmt.Errorf("seeder: parse deck: %w", err)
	}

	for _, rej := range parsed.Rejected {
		log.Warn("deck line rejected", slog.Int("line", rej.Line), slog.String("reason", rej.Reason))
	}

	res := Result{Parsed: len(parsed.Cards), Rejected: len(parsed.Rejected)}

	log.Info("deck parsed",
		slog.String("path", cfg.DeckPath),
		slog.Int("cards", res.Parsed),
		slog.Int("rejected", res.Rejected),
		slog.Int("duplicates", parsed.Stats.Duplicates),
	)

	if cfg.DryRun {
		log.Info("dry run, nothing written")
		return res, nil
	}

	for start := 0; start < len(parsed.Cards); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(parsed.Cards))

		n, err := w.Upsert(ctx, parsed.Cards[start:end])
		if err != nil {
			return res, fmt.Errorf("seeder: write batch %d: %w", res.Batches+1, err)
		}
		res.Written += n
		res.Batches++
	}

	log.Info("deck seeded",
		slog.Int("written", res.Written),
		slog.Int("batches", res.Batches),
	)

	return res, nil
}
