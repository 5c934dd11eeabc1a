package repository

import (
	"context"

	"lojinha/internal/model"
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	// Category limits results to one category when set.
	Category string

	// IncludeSold keeps sold products in the listing (admin views).
	IncludeSold bool
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products sorted by name.
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID; nil when not found.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create inserts a new product and returns its generated ID.
	Create(ctx context.Context, product *model.Product) (string, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id string) error

	// SetSold flags or unflags a product as sold.
	SetSold(ctx context.Context, id string, sold bool) error
}

// CustomerMatch is the lookup key for the checkout customer upsert.
type CustomerMatch struct {
	Email string
	Phone string
}

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// List retrieves all customers, most recently created first.
	List(ctx context.Context) ([]model.Customer, error)

	// FindByContact retrieves the customer matching the (email, phone)
	// pair; nil when no customer matches.
	FindByContact(ctx context.Context, match CustomerMatch) (*model.Customer, error)

	// Create inserts a new customer and returns its generated ID.
	Create(ctx context.Context, customer *model.Customer) (string, error)

	// Update replaces the mutable fields of an existing customer.
	Update(ctx context.Context, customer *model.Customer) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order and returns its generated ID.
	Create(ctx context.Context, order *model.Order) (string, error)

	// GetByID retrieves an order by its ID; nil when not found.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// List retrieves all orders, most recent first.
	List(ctx context.Context) ([]model.Order, error)

	// ListByEmail retrieves a customer's orders by contact email, most
	// recent first.
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)

	// ListByPhone retrieves a customer's orders by contact phone, most
	// recent first.
	ListByPhone(ctx context.Context, phone string) ([]model.Order, error)

	// UpdateStatus sets the order status and refreshes updatedAt.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}

// BannerRepository defines the interface for banner data access operations.
type BannerRepository interface {
	// List retrieves all banners, highest priority first.
	List(ctx context.Context) ([]model.Banner, error)

	// ListActive retrieves active banners, highest priority first.
	ListActive(ctx context.Context) ([]model.Banner, error)

	// Create inserts a new banner and returns its generated ID.
	Create(ctx context.Context, banner *model.Banner) (string, error)

	// Update replaces the mutable fields of an existing banner.
	Update(ctx context.Context, banner *model.Banner) error

	// Delete removes a banner.
	Delete(ctx context.Context, id string) error

	// SetActive toggles a banner's visibility.
	SetActive(ctx context.Context, id string, active bool) error
}
