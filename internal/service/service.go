package service

import (
	"context"

	"lojinha/internal/cart"
	"lojinha/internal/model"
)

// CatalogService defines operations for product management.
type CatalogService interface {
	// List retrieves storefront products (sold items hidden), sorted by name.
	List(ctx context.Context, category string) ([]model.Product, error)

	// ListAll retrieves every product including sold ones (admin view).
	ListAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, product *model.Product) (string, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error

	// SetSold flags or unflags a product as sold.
	SetSold(ctx context.Context, id string, sold bool) error
}

// CheckoutRequest carries everything needed to submit an order.
type CheckoutRequest struct {
	Customer model.CustomerInfo `json:"customer"`
	Notes    string             `json:"notes,omitempty"`

	// DirectProductID submits a single-product "buy now" order that
	// bypasses the ledger. Empty for a normal cart checkout.
	DirectProductID string `json:"directProductId,omitempty"`
}

// CheckoutResult reports a successful submission.
type CheckoutResult struct {
	OrderID   string  `json:"orderId"`
	Reference string  `json:"reference"`
	Total     float64 `json:"total"`
}

// CheckoutService turns a cart ledger (or a direct product) into an order.
type CheckoutService interface {
	// Submit validates the request, writes the order, and performs the
	// best-effort customer upsert. On success the ledger is cleared
	// unless the purchase bypassed it.
	Submit(ctx context.Context, ledger *cart.Ledger, sessionID string, req *CheckoutRequest) (*CheckoutResult, error)
}

// OrderService defines operations for order management and tracking.
type OrderService interface {
	// List retrieves all orders, most recent first (admin view).
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// TrackByEmail retrieves a customer's orders by contact email.
	TrackByEmail(ctx context.Context, email string) ([]model.Order, error)

	// TrackByPhone retrieves a customer's orders by contact phone.
	TrackByPhone(ctx context.Context, phone string) ([]model.Order, error)

	// UpdateStatus transitions an order through the forward-only status
	// machine. Invalid or backward transitions are rejected.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}

// BannerService defines operations for promotional banners.
type BannerService interface {
	// Visible retrieves the banners the storefront should show right now.
	Visible(ctx context.Context) ([]model.Banner, error)

	// List retrieves all banners (admin view).
	List(ctx context.Context) ([]model.Banner, error)

	// Create adds a new banner.
	Create(ctx context.Context, banner *model.Banner) (string, error)

	// Update replaces the mutable fields of an existing banner.
	Update(ctx context.Context, banner *model.Banner) error

	// Delete removes a banner.
	Delete(ctx context.Context, id string) error

	// SetActive toggles a banner's visibility.
	SetActive(ctx context.Context, id string, active bool) error
}

// CustomerService defines operations for customer management.
type CustomerService interface {
	// List retrieves all customers, most recently created first.
	List(ctx context.Context) ([]model.Customer, error)
}
