package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lojinha/internal/database"
	"lojinha/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// productRepository implements ProductRepository against the products
// collection.
type productRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProductRepository creates a document-store-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection(database.CollectionProducts),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves products sorted by name. Sold products are hidden unless
// the filter asks for them.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := bson.M{}
	if !filter.IncludeSold {
		query["sold"] = bson.M{"$ne": true}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error().Err(err).Int("id_count", len(ids)).Msg("failed to query products by ids")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Create inserts a new product and returns its generated ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (string, error) {
	product.ID = bson.NewObjectID().Hex()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	return product.ID, nil
}

// Update replaces the mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"images":      product.Images,
		"category":    product.Category,
		"size":        product.Size,
		"brand":       product.Brand,
		"stock":       product.Stock,
		"featured":    product.Featured,
		"promo":       product.Promo,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

// SetSold flags or unflags a product as sold.
func (r *productRepository) SetSold(ctx context.Context, id string, sold bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"sold": sold}})
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update sold flag")
		return fmt.Errorf("failed to update sold flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrProductNotFound
	}
	return nil
}
