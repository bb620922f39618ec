// Command seeder loads a tab-separated flashcard deck into the card
// catalog. Cards get deterministic IDs, so re-running it with an edited
// deck updates cards in place.
//
// Flags:
//
//	--deck           path to the deck file (overrides SEEDER_DECK_PATH)
//	--dry-run        parse the deck without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mnflash-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/mnflash-backend/internal/app"
	"github.com/heartmarshall/mnflash-backend/internal/config"
	"github.com/heartmarshall/mnflash-backend/internal/seeder"
)

// Compile-time interface assertion.
var _ seeder.CardWriter = (*card.Repo)(nil)

func main() {
	deckFlag := flag.String("deck", "", "path to the deck file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the deck without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *deckFlag != "" {
		seederCfg.DeckPath = *deckFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := seeder.Run(ctx, *seederCfg, card.New(pool), logger); err != nil {
		logger.Error("seeder failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
}
