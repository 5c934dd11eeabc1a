// Seeds the local MongoDB with a sample catalogue and banners so the
// storefront has something to show during development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"lojinha/internal/config"
	"lojinha/internal/database"
	"lojinha/internal/model"
	"lojinha/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	productRepo := repository.NewProductRepository(db, logger)
	bannerRepo := repository.NewBannerRepository(db, logger)

	products := []model.Product{
		{
			Name:        "Linen Shirt",
			Description: "Lightweight linen shirt, relaxed fit.",
			Price:       89.90,
			Images:      []string{"/images/linen-shirt.jpg"},
			Category:    "shirts",
			Size:        "M",
			Brand:       "Atelier Sul",
			Stock:       12,
			Featured:    true,
		},
		{
			Name:        "Canvas Tote",
			Description: "Heavy canvas tote with internal pocket.",
			Price:       25.00,
			Images:      []string{"/images/canvas-tote.jpg"},
			Category:    "accessories",
			Stock:       40,
			Promo:       &model.PromoRule{ThresholdQty: 3, BundlePrice: 60.00},
		},
		{
			Name:        "Vintage Denim Jacket",
			Description: "Single piece, light wash, 90s cut.",
			Price:       199.90,
			Images:      []string{"/images/denim-jacket.jpg"},
			Category:    "jackets",
			Size:        "G",
			Brand:       "Garimpo",
			Stock:       1,
		},
	}

	for i := range products {
		id, err := productRepo.Create(ctx, &products[i])
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", products[i].Name, err)
		}
		logger.Info().Str("product_id", id).Str("name", products[i].Name).Msg("seeded product")
	}

	banners := []model.Banner{
		{
			Title:           "Winter arrivals",
			Description:     "New pieces every friday",
			ImageURL:        "/images/banner-winter.jpg",
			LinkURL:         "/products?category=jackets",
			IsActive:        true,
			Priority:        10,
			BackgroundColor: "#1f2933",
			TextColor:       "#ffffff",
		},
		{
			Title:       "Tote bundle",
			Description: "3 canvas totes for 60",
			ImageURL:    "/images/banner-tote.jpg",
			LinkURL:     "/products?category=accessories",
			IsActive:    true,
			Priority:    5,
			StartDate:   time.Now().Format("2006-01-02"),
			EndDate:     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		},
	}

	for i := range banners {
		id, err := bannerRepo.Create(ctx, &banners[i])
		if err != nil {
			return fmt.Errorf("failed to seed banner %q: %w", banners[i].Title, err)
		}
		logger.Info().Str("banner_id", id).Str("title", banners[i].Title).Msg("seeded banner")
	}

	logger.Info().Msg("seed completed")
	return nil
}
