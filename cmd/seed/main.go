// One-shot seeding tool: wipes the campgrounds and reviews
// collections and inserts sample data. Intended for development
// databases only.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/campwild/campwild/internal/config"
	"github.com/campwild/campwild/internal/database"
	"github.com/campwild/campwild/internal/logger"
	"github.com/campwild/campwild/internal/seed"
	"go.mongodb.org/mongo-driver/bson"
)

const campgroundCount = 50

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		os.Exit(1)
	}
	log := logger.New(cfg.Observability, loggerService)

	db, err := database.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := db.Campgrounds().DeleteMany(ctx, bson.D{}); err != nil {
		log.Fatal().Err(err).Msg("failed to wipe campgrounds")
	}
	if _, err := db.Reviews().DeleteMany(ctx, bson.D{}); err != nil {
		log.Fatal().Err(err).Msg("failed to wipe reviews")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	campgrounds := seed.Campgrounds(rng, campgroundCount)

	docs := make([]interface{}, 0, len(campgrounds))
	for i := range campgrounds {
		docs = append(docs, campgrounds[i])
	}

	if _, err := db.Campgrounds().InsertMany(ctx, docs); err != nil {
		log.Fatal().Err(err).Msg("failed to insert campgrounds")
	}

	log.Info().Int("count", len(docs)).Msg("database seeded")

	// One-shot batch tool: close the connection explicitly.
	if err := db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close database connection")
	}
}
