package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// indexConfig binds an index model to the collection it belongs to.
type indexConfig struct {
	collection string
	model      mongo.IndexModel
}

var requiredIndexes = []indexConfig{
	{
		collection: CollectionProducts,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_product_name"),
		},
	},
	{
		collection: CollectionProducts,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_product_category"),
		},
	},
	{
		collection: CollectionOrders,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_order_created_desc"),
		},
	},
	// Order tracking looks up by either contact field.
	{
		collection: CollectionOrders,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "customerInfo.email", Value: 1}},
			Options: options.Index().SetName("idx_order_customer_email"),
		},
	},
	{
		collection: CollectionOrders,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "customerInfo.phone", Value: 1}},
			Options: options.Index().SetName("idx_order_customer_phone"),
		},
	},
	// Customer upsert matches on the (email, phone) pair.
	{
		collection: CollectionCustomers,
		model: mongo.IndexModel{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "phone", Value: 1},
			},
			Options: options.Index().SetName("idx_customer_contact"),
		},
	},
	{
		collection: CollectionBanners,
		model: mongo.IndexModel{
			Keys: bson.D{
				{Key: "isActive", Value: 1},
				{Key: "priority", Value: -1},
			},
			Options: options.Index().SetName("idx_banner_active_priority"),
		},
	},
}

// EnsureIndexes creates the indexes every collection relies on. It is safe
// to call on every startup; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger zerolog.Logger) error {
	for _, idx := range requiredIndexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}

	logger.Info().
		Int("index_count", len(requiredIndexes)).
		Msg("collection indexes ensured")

	return nil
}
