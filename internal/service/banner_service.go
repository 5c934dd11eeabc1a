package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lojinha/internal/model"
	"lojinha/internal/repository"

	"github.com/rs/zerolog"
)

// bannerService implements BannerService.
type bannerService struct {
	bannerRepo repository.BannerRepository
	logger     zerolog.Logger

	// now is swapped in tests to pin the visibility date.
	now func() time.Time
}

// NewBannerService creates a new banner service.
func NewBannerService(bannerRepo repository.BannerRepository, logger zerolog.Logger) BannerService {
	return &bannerService{
		bannerRepo: bannerRepo,
		logger:     logger.With().Str("service", "banner").Logger(),
		now:        time.Now,
	}
}

// Visible retrieves active banners whose date window covers today, highest
// priority first.
func (s *bannerService) Visible(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list active banners")
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	today := s.now().Format("2006-01-02")
	visible := make([]model.Banner, 0, len(banners))
	for _, b := range banners {
		if b.VisibleOn(today) {
			visible = append(visible, b)
		}
	}

	s.logger.Debug().
		Int("active", len(banners)).
		Int("visible", len(visible)).
		Msg("retrieved visible banners")

	return visible, nil
}

// List retrieves all banners.
func (s *bannerService) List(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list banners")
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// Create adds a new banner.
func (s *bannerService) Create(ctx context.Context, banner *model.Banner) (string, error) {
	if err := validateBanner(banner); err != nil {
		return "", err
	}

	id, err := s.bannerRepo.Create(ctx, banner)
	if err != nil {
		s.logger.Error().Err(err).Str("title", banner.Title).Msg("failed to create banner")
		return "", fmt.Errorf("failed to create banner: %w", err)
	}

	s.logger.Info().Str("banner_id", id).Str("title", banner.Title).Msg("banner created")
	return id, nil
}

// Update replaces the mutable fields of an existing banner.
func (s *bannerService) Update(ctx context.Context, banner *model.Banner) error {
	if banner.ID == "" {
		return model.ErrBannerNotFound
	}
	if err := validateBanner(banner); err != nil {
		return err
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		s.logger.Error().Err(err).Str("banner_id", banner.ID).Msg("failed to update banner")
		return err
	}
	return nil
}

// Delete removes a banner.
func (s *bannerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrBannerNotFound
	}

	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("banner_id", id).Msg("failed to delete banner")
		return err
	}

	s.logger.Info().Str("banner_id", id).Msg("banner deleted")
	return nil
}

// SetActive toggles a banner's visibility.
func (s *bannerService) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return model.ErrBannerNotFound
	}

	if err := s.bannerRepo.SetActive(ctx, id, active); err != nil {
		s.logger.Error().Err(err).Str("banner_id", id).Bool("active", active).Msg("failed to toggle banner")
		return err
	}
	return nil
}

// validateBanner checks the fields required to publish a banner.
func validateBanner(b *model.Banner) error {
	if b == nil {
		return fmt.Errorf("banner is nil")
	}
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("banner title is required")
	}
	if strings.TrimSpace(b.ImageURL) == "" {
		return fmt.Errorf("banner image URL is required")
	}
	if b.StartDate != "" && b.EndDate != "" && b.EndDate < b.StartDate {
		return fmt.Errorf("banner end date precedes start date")
	}
	return nil
}
