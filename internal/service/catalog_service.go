package service

import (
	"context"
	"fmt"
	"strings"

	"lojinha/internal/model"
	"lojinha/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves storefront products, hiding sold items.
func (s *catalogService) List(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, repository.ProductFilter{Category: category})
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved storefront products")
	return products, nil
}

// ListAll retrieves every product including sold ones.
func (s *catalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, repository.ProductFilter{IncludeSold: true})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a new product to the catalogue.
func (s *catalogService) Create(ctx context.Context, product *model.Product) (string, error) {
	if err := validateProduct(product); err != nil {
		return "", err
	}

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Str("name", product.Name).Msg("product created")
	return id, nil
}

// Update replaces the mutable fields of an existing product.
func (s *catalogService) Update(ctx context.Context, product *model.Product) error {
	if product.ID == "" {
		return model.ErrProductNotFound
	}
	if err := validateProduct(product); err != nil {
		return err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return err
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return nil
}

// Delete removes a product from the catalogue.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// SetSold flags or unflags a product as sold.
func (s *catalogService) SetSold(ctx context.Context, id string, sold bool) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.SetSold(ctx, id, sold); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Bool("sold", sold).Msg("failed to set sold flag")
		return err
	}
	return nil
}

// validateProduct checks the fields required to publish a product.
func validateProduct(p *model.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price <= 0 {
		return fmt.Errorf("product price must be greater than zero")
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("product category is required")
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product requires at least one image")
	}
	if p.Promo != nil && (p.Promo.ThresholdQty < 1 || p.Promo.BundlePrice < 0) {
		return fmt.Errorf("invalid promo rule")
	}
	return nil
}
