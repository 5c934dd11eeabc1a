package service

import (
	"context"
	"fmt"

	"lojinha/internal/model"
	"lojinha/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// List retrieves all customers, most recently created first.
func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
