package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/pictify-io/blogs/shared/db"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName = "blogs-publisher"

	// DefaultCollection is the collection published posts are written to
	DefaultCollection = "blogs"
)

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// MongoDB implements the db.Database interface for MongoDB
type MongoDB struct {
	cfg    MongoConfig
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB creates a new, unconnected MongoDB instance
// If no collection is configured it defaults to "blogs"
func NewMongoDB(cfg MongoConfig) *MongoDB {
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	return &MongoDB{
		cfg: cfg,
	}
}

var _ db.Database = (*MongoDB)(nil)

// Connect opens the client, verifies the server is reachable and applies pending migrations
func (m *MongoDB) Connect(ctx context.Context) error {
	if m.client != nil {
		return fmt.Errorf("database already connected")
	}
	if m.cfg.URI == "" {
		return fmt.Errorf("mongo URI cannot be empty")
	}
	if m.cfg.Database == "" {
		return fmt.Errorf("mongo database name cannot be empty")
	}

	if m.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetAppName(appName)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m.client = client
	m.db = client.Database(m.cfg.Database)

	if err := runMigrations(ctx, m.db, m.cfg.Collection); err != nil {
		_ = client.Disconnect(context.Background())
		m.client = nil
		m.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug().Str("database", m.cfg.Database).Str("collection", m.cfg.Collection).Msg("Connected to MongoDB")
	return nil
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}

// DB returns the configured database handle, or nil before Connect
func (m *MongoDB) DB() *mongo.Database {
	return m.db
}

// Collection returns the handle for the posts collection, or nil before Connect
func (m *MongoDB) Collection() *mongo.Collection {
	if m.db == nil {
		return nil
	}
	return m.db.Collection(m.cfg.Collection)
}
