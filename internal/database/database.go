package database

import (
	"context"
	"fmt"

	"lojinha/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names used across the application.
const (
	CollectionProducts  = "products"
	CollectionOrders    = "orders"
	CollectionCustomers = "customers"
	CollectionBanners   = "banners"
)

// Connect creates a MongoDB client and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetTimeout(cfg.ConnectTimeout())

	logger.Info().
		Str("database", cfg.Database).
		Msg("connecting to document database")

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping document database: %w", err)
	}

	logger.Info().Msg("document database connection established")

	return client, nil
}
