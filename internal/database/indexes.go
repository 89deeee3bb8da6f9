package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the secondary indexes the application relies
// on. CreateOne is idempotent for an identical index spec, so this runs
// unconditionally at startup.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		d.Campgrounds(): {
			{Keys: bson.D{{Key: "title", Value: 1}}},
			{Keys: bson.D{{Key: "location", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
		}
		d.log.Debug().
			Str("collection", coll.Name()).
			Int("indexes", len(models)).
			Msg("indexes ensured")
	}

	return nil
}
