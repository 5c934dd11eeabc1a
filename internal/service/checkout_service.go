package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lojinha/internal/cart"
	"lojinha/internal/model"
	"lojinha/internal/notify"
	"lojinha/internal/repository"
	"lojinha/internal/session"

	"github.com/rs/zerolog"
)

// PrefillStore persists the last-used contact block for checkout prefill.
// Satisfied by *session.Store.
type PrefillStore interface {
	SavePrefill(ctx context.Context, sessionID string, p session.Prefill)
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	sessions     PrefillStore
	notifier     notify.Notifier
	logger       zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	sessions PrefillStore,
	notifier notify.Notifier,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		sessions:     sessions,
		notifier:     notifier,
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

// Submit validates the request, freezes the item list, writes the order and
// performs the best-effort customer upsert. The order write happens before
// the upsert; an upsert failure is logged and tolerated so the customer
// still sees a successful order. On any failure before the order write the
// ledger is left untouched so the user can retry.
func (s *checkoutService) Submit(ctx context.Context, ledger *cart.Ledger, sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	if req == nil {
		return nil, model.ErrMissingContact
	}

	customer := normaliseContact(req.Customer)
	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		return nil, model.ErrMissingContact
	}

	items, total, err := s.resolveItems(ctx, ledger, req.DirectProductID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	order := &model.Order{
		CustomerInfo: customer,
		Items:        items,
		Total:        total,
		Status:       model.OrderStatusPending,
		Notes:        strings.TrimSpace(req.Notes),
	}

	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("order write failed")
		s.notifier.Notify(notify.Notification{
			Title:       "Order failed",
			Description: "Please try again or contact us.",
			Variant:     notify.VariantDestructive,
		})
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	// Best-effort: the order is already committed, so an upsert failure
	// must not surface as a checkout failure.
	if err := s.upsertCustomer(ctx, customer, orderID, total); err != nil {
		s.logger.Warn().Err(err).Str("order_id", orderID).Msg("customer upsert failed after order write")
	}

	if req.DirectProductID == "" && ledger != nil {
		ledger.Clear(ctx)
	}

	if sessionID != "" && s.sessions != nil {
		s.sessions.SavePrefill(ctx, sessionID, session.Prefill{
			Name:    customer.Name,
			Phone:   customer.Phone,
			Email:   customer.Email,
			Address: customer.Address,
		})
	}

	s.logger.Info().
		Str("order_id", orderID).
		Int("item_count", len(items)).
		Float64("total", total).
		Msg("order submitted")

	s.notifier.Notify(notify.Notification{
		Title:       "Order placed successfully!",
		Description: fmt.Sprintf("Your order #%s was registered. You will receive updates soon.", order.Reference()),
	})

	return &CheckoutResult{
		OrderID:   orderID,
		Reference: order.Reference(),
		Total:     total,
	}, nil
}

// resolveItems freezes either the direct product or the ledger contents
// into order items and computes the total.
func (s *checkoutService) resolveItems(ctx context.Context, ledger *cart.Ledger, directProductID string) ([]model.OrderItem, float64, error) {
	if directProductID != "" {
		product, err := s.productRepo.GetByID(ctx, directProductID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load product: %w", err)
		}
		if product == nil {
			return nil, 0, model.ErrProductNotFound
		}

		image := cart.PlaceholderImage
		if len(product.Images) > 0 && product.Images[0] != "" {
			image = product.Images[0]
		}

		item := model.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    1,
			ImageURL:    image,
			Category:    product.Category,
			Size:        product.Size,
			Brand:       product.Brand,
		}
		return []model.OrderItem{item}, product.Price, nil
	}

	if ledger == nil {
		return nil, 0, nil
	}
	return ledger.OrderItems(), ledger.TotalPrice().InexactFloat64(), nil
}

// upsertCustomer looks up the customer by (email, phone) and either bumps
// the aggregate counters or inserts a fresh record.
func (s *checkoutService) upsertCustomer(ctx context.Context, info model.CustomerInfo, orderID string, total float64) error {
	match := repository.CustomerMatch{Email: info.Email, Phone: info.Phone}
	existing, err := s.customerRepo.FindByContact(ctx, match)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing != nil {
		existing.Name = info.Name
		existing.Email = info.Email
		existing.Address = info.Address
		existing.LastOrderID = orderID
		existing.LastOrderDate = &now
		existing.TotalOrders++
		existing.TotalSpent += total
		return s.customerRepo.Update(ctx, existing)
	}

	_, err = s.customerRepo.Create(ctx, &model.Customer{
		Name:          info.Name,
		Phone:         info.Phone,
		Email:         info.Email,
		Address:       info.Address,
		LastOrderID:   orderID,
		LastOrderDate: &now,
		TotalOrders:   1,
		TotalSpent:    total,
	})
	return err
}

// normaliseContact trims the contact block and lower-cases the email, which
// doubles as a lookup key for tracking and the customer upsert.
func normaliseContact(info model.CustomerInfo) model.CustomerInfo {
	return model.CustomerInfo{
		Name:    strings.TrimSpace(info.Name),
		Phone:   strings.TrimSpace(info.Phone),
		Email:   strings.ToLower(strings.TrimSpace(info.Email)),
		Address: strings.TrimSpace(info.Address),
	}
}
