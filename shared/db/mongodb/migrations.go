package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsCollection = "schema_migrations"

// migration represents a single schema change against the posts collection
type migration struct {
	version int
	name    string
	up      func(ctx context.Context, coll *mongo.Collection) error
}

// migrations is the ordered list of all database migrations
// Index creation is idempotent, so a migration that ran but was not recorded is safe to repeat
var migrations = []migration{
	{
		version: 1,
		name:    "create_blogs_slug_index",
		up: func(ctx context.Context, coll *mongo.Collection) error {
			_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("idx_blogs_slug"),
			})
			return err
		},
	},
	{
		version: 2,
		name:    "create_blogs_status_created_at_index",
		up: func(ctx context.Context, coll *mongo.Collection) error {
			_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_blogs_status_created_at"),
			})
			return err
		},
	},
}

type migrationRecord struct {
	Version   int       `bson:"_id"`
	Name      string    `bson:"name"`
	AppliedAt time.Time `bson:"appliedAt"`
}

// runMigrations executes all pending migrations against the named collection
func runMigrations(ctx context.Context, db *mongo.Database, collection string) error {
	applied := db.Collection(migrationsCollection)

	currentVersion := 0
	var latest migrationRecord
	err := applied.FindOne(ctx, bson.D{}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})).Decode(&latest)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
	case err != nil:
		return fmt.Errorf("failed to get current schema version: %w", err)
	default:
		currentVersion = latest.Version
	}

	coll := db.Collection(collection)
	for _, m := range migrations {
		if m.version <= currentVersion {
			continue // Already applied
		}

		if err := m.up(ctx, coll); err != nil {
			return fmt.Errorf("failed to execute migration %d (%s): %w", m.version, m.name, err)
		}

		_, err := applied.InsertOne(ctx, migrationRecord{
			Version:   m.version,
			Name:      m.name,
			AppliedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}
