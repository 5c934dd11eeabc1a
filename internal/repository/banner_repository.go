package repository

import (
	"context"
	"fmt"
	"time"

	"lojinha/internal/database"
	"lojinha/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// bannerRepository implements BannerRepository against the banners
// collection.
type bannerRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewBannerRepository creates a document-store-backed banner repository.
func NewBannerRepository(db *mongo.Database, logger zerolog.Logger) BannerRepository {
	return &bannerRepository{
		collection: db.Collection(database.CollectionBanners),
		logger:     logger.With().Str("repository", "banner").Logger(),
	}
}

// List retrieves all banners, highest priority first.
func (r *bannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	return r.find(ctx, bson.M{})
}

// ListActive retrieves active banners, highest priority first.
func (r *bannerRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

// Create inserts a new banner and returns its generated ID.
func (r *bannerRepository) Create(ctx context.Context, banner *model.Banner) (string, error) {
	banner.ID = bson.NewObjectID().Hex()
	if banner.CreatedAt.IsZero() {
		banner.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, banner); err != nil {
		r.logger.Error().Err(err).Str("title", banner.Title).Msg("failed to insert banner")
		return "", fmt.Errorf("failed to insert banner: %w", err)
	}

	return banner.ID, nil
}

// Update replaces the mutable fields of an existing banner.
func (r *bannerRepository) Update(ctx context.Context, banner *model.Banner) error {
	update := bson.M{"$set": bson.M{
		"title":           banner.Title,
		"description":     banner.Description,
		"imageUrl":        banner.ImageURL,
		"linkUrl":         banner.LinkURL,
		"priority":        banner.Priority,
		"startDate":       banner.StartDate,
		"endDate":         banner.EndDate,
		"backgroundColor": banner.BackgroundColor,
		"textColor":       banner.TextColor,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": banner.ID}, update)
	if err != nil {
		r.logger.Error().Err(err).Str("banner_id", banner.ID).Msg("failed to update banner")
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrBannerNotFound
	}
	return nil
}

// Delete removes a banner.
func (r *bannerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("banner_id", id).Msg("failed to delete banner")
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrBannerNotFound
	}
	return nil
}

// SetActive toggles a banner's visibility.
func (r *bannerRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		r.logger.Error().Err(err).Str("banner_id", id).Msg("failed to toggle banner")
		return fmt.Errorf("failed to toggle banner: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrBannerNotFound
	}
	return nil
}

// find runs a filtered query sorted by priority, highest first.
func (r *bannerRepository) find(ctx context.Context, query bson.M) ([]model.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query banners")
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer cursor.Close(ctx)

	var banners []model.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode banners")
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}

	return banners, nil
}
