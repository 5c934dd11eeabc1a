package cart

import (
	"context"
	"errors"

	"lojinha/internal/model"

	"github.com/shopspring/decimal"
)

// ErrSnapshotNotFound is returned by a Store when no snapshot exists
// under the requested key.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// Store is the durable key-value slot the ledger persists to. Implementations
// must return ErrSnapshotNotFound for a missing key.
type Store interface {
	// Get reads the raw snapshot stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the raw snapshot under key.
	Set(ctx context.Context, key, value string) error
}

// PlaceholderImage is used when a product carries no images.
const PlaceholderImage = "/placeholder.svg"

// DefaultCategory is assigned to products added without a category.
const DefaultCategory = "uncategorized"

// Promo is a bundle price rule captured on a line item: buy ThresholdQty
// units for BundlePrice total, remainder at unit price.
type Promo struct {
	ThresholdQty int             `json:"thresholdQty"`
	BundlePrice  decimal.Decimal `json:"bundlePrice"`
}

// LineItem is one entry in the ledger. Unit price and promo rule are
// snapshots taken when the item was first added.
type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Promo     *Promo          `json:"promo,omitempty"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Size      string          `json:"size,omitempty"`
	Brand     string          `json:"brand,omitempty"`
}

// Contribution computes the item's share of the cart total. With a promo
// rule and quantity at or above the threshold, full bundles pay the bundle
// price and the remainder pays the unit price. Missing numeric fields are
// treated as zero.
func (li *LineItem) Contribution() decimal.Decimal {
	qty := li.Quantity
	if qty <= 0 {
		return decimal.Zero
	}
	if li.Promo == nil || li.Promo.ThresholdQty <= 0 || qty < li.Promo.ThresholdQty {
		return li.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	}
	bundles := int64(qty / li.Promo.ThresholdQty)
	remainder := int64(qty % li.Promo.ThresholdQty)
	return li.Promo.BundlePrice.Mul(decimal.NewFromInt(bundles)).
		Add(li.UnitPrice.Mul(decimal.NewFromInt(remainder)))
}

// ProductInput is the loosely shaped product reference accepted by AddItem.
// Only ID and Name are required; everything else is normalised on entry.
type ProductInput struct {
	ID       string
	Name     string
	Price    float64
	Images   []string
	Category string
	Size     string
	Brand    string
	Promo    *model.PromoRule
}

// InputFromProduct builds a ProductInput from a catalogue product.
func InputFromProduct(p *model.Product) ProductInput {
	return ProductInput{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Images:   p.Images,
		Category: p.Category,
		Size:     p.Size,
		Brand:    p.Brand,
		Promo:    p.Promo,
	}
}

// normalise converts a ProductInput into a fresh LineItem with quantity 1,
// defaulting missing fields instead of rejecting them.
func normalise(p ProductInput) *LineItem {
	item := &LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: 1,
		Image:    PlaceholderImage,
		Category: p.Category,
		Size:     p.Size,
		Brand:    p.Brand,
	}
	if p.Price > 0 {
		item.UnitPrice = decimal.NewFromFloat(p.Price)
	} else {
		item.UnitPrice = decimal.Zero
	}
	if len(p.Images) > 0 && p.Images[0] != "" {
		item.Image = p.Images[0]
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	if p.Promo != nil && p.Promo.ThresholdQty > 0 {
		item.Promo = &Promo{
			ThresholdQty: p.Promo.ThresholdQty,
			BundlePrice:  decimal.NewFromFloat(p.Promo.BundlePrice),
		}
	}
	return item
}
