package service

import (
	"context"
	"fmt"
	"strings"

	"lojinha/internal/model"
	"lojinha/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders, most recent first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// TrackByEmail retrieves a customer's orders by contact email. The email is
// normalised to lower case, matching how checkout stores it.
func (s *orderService) TrackByEmail(ctx context.Context, email string) ([]model.Order, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return []model.Order{}, nil
	}

	orders, err := s.orderRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to track orders by email")
		return nil, fmt.Errorf("failed to track orders: %w", err)
	}
	return orders, nil
}

// TrackByPhone retrieves a customer's orders by contact phone.
func (s *orderService) TrackByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []model.Order{}, nil
	}

	orders, err := s.orderRepo.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to track orders by phone")
		return nil, fmt.Errorf("failed to track orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus transitions an order through the forward-only status machine:
// pending -> confirmed -> shipped -> delivered, with cancelled reachable
// from any non-terminal state.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if !status.Valid() {
		s.logger.Warn().Str("order_id", id).Str("status", status.String()).Msg("unknown order status")
		return model.ErrInvalidStatus
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(status) {
		s.logger.Warn().
			Str("order_id", id).
			Str("from", order.Status.String()).
			Str("to", status.String()).
			Msg("rejected status transition")
		return model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return err
	}

	return nil
}
