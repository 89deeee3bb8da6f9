// Package database establishes the connection to MongoDB.
//
// It owns the mongo client for the life of the process, exposes typed
// collection accessors, and wires command monitoring (local query
// logging and, when configured, New Relic instrumentation) into the
// driver.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/campwild/campwild/internal/config"
	loggerPkg "github.com/campwild/campwild/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampgroundsCollection and ReviewsCollection are the two collections
// this application persists.
const (
	CampgroundsCollection = "campgrounds"
	ReviewsCollection     = "reviews"
)

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// Database wraps the mongo client and the application database handle.
type Database struct {
	Client *mongo.Client
	db     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB and verifies the connection with a ping.
//
// Command monitoring is layered the same way the rest of the app treats
// observability: a local logging monitor in the "local" environment,
// wrapped by the New Relic monitor when APM is configured.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second)

	var monitor *event.CommandMonitor
	if cfg.Primary.Env == "local" {
		monitor = commandLogger(logger, cfg.Observability.Logging.SlowQueryThreshold)
	}
	if loggerService != nil && loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}
	if monitor != nil {
		opts.SetMonitor(monitor)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().
		Str("database", cfg.Database.Name).
		Msg("Database connected")

	return &Database{
		Client: client,
		db:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Campgrounds returns the campgrounds collection.
func (d *Database) Campgrounds() *mongo.Collection {
	return d.db.Collection(CampgroundsCollection)
}

// Reviews returns the reviews collection.
func (d *Database) Reviews() *mongo.Collection {
	return d.db.Collection(ReviewsCollection)
}

// Ping verifies connectivity, used by the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, nil)
}

// Close disconnects the client. Called once on shutdown.
func (d *Database) Close(ctx context.Context) error {
	if err := d.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	d.log.Info().Msg("database connection closed")
	return nil
}

// commandLogger logs every driver command at debug level and flags
// commands slower than threshold at warn level. Local use only; it is
// noisy.
func commandLogger(logger *zerolog.Logger, threshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			if threshold > 0 && evt.Duration > threshold {
				logger.Warn().
					Str("command", evt.CommandName).
					Dur("duration", evt.Duration).
					Msg("slow database command")
				return
			}
			logger.Debug().
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Msg("database command")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			logger.Error().
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("database command failed")
		},
	}
}
