// Package storage owns the MongoDB connection lifecycle.
package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// ConnectMongo opens the process-wide client and verifies connectivity.
func ConnectMongo(ctx context.Context, logger *zerolog.Logger, uri string) *mongo.Client {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create mongo client")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongo")
	}

	logger.Info().Msg("connected to mongo")

	return client
}

// Disconnect closes the client, logging rather than failing on error.
func Disconnect(ctx context.Context, logger *zerolog.Logger, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect mongo client")
	}
}
