package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pictify-io/blogs/blog/application"
	"github.com/pictify-io/blogs/blog/persistence"
	"github.com/pictify-io/blogs/internal/config"
	"github.com/pictify-io/blogs/internal/logging"
	"github.com/pictify-io/blogs/shared/content"
	"github.com/pictify-io/blogs/shared/db/mongodb"
	"github.com/pictify-io/blogs/shared/random"
	"github.com/rs/zerolog/log"
)

const (
	disconnectTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(os.Stderr, cfg.LogLevel, cfg.JSONLogs()); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	policy, err := application.ParseContentReadPolicy(cfg.ContentReadPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid CONTENT_READ_POLICY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	database := mongodb.NewMongoDB(mongodb.MongoConfig{
		URI:            cfg.MongoURI,
		Database:       cfg.DBName,
		Collection:     cfg.Collection,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err := database.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	publisher := application.NewPublisher(
		persistence.NewPostRepository(database.Collection()),
		persistence.NewManifestRepository(cfg.ManifestPath),
		content.NewDirectorySourceRepository(cfg.ContentDir),
		random.NewGenerator(),
		application.WithContentReadPolicy(policy),
	)

	summary, runErr := publisher.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := database.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	if summary != nil {
		log.Info().
			Int("selected", summary.Selected).
			Int("published", summary.Published).
			Int("failed", summary.Failed).
			Int("skipped", summary.Skipped).
			Msg("Publish run finished")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Publish run aborted")
	}
}
