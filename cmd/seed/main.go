// Seeds the product catalog into Postgres. Safe to run repeatedly: if any
// products already exist the seed is skipped.
//
// Usage: DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/config"
	"github.com/steelcraft/catalog-server/internal/database"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/seed"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()

	if err := database.Migrate(db.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	products := repository.NewProductRepository(db.DB)

	count, err := products.Count(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count products")
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("products already seeded, skipping")
		return
	}

	for _, p := range seed.Products() {
		if _, err := products.Insert(context.Background(), p); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("failed to insert product")
		}
	}

	log.Info().Int("count", len(seed.Products())).Msg("seeded products")
}
