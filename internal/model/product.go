package model

import "time"

// PromoRule is a "buy N for a fixed total" bundle price attached to a
// product. Quantities below ThresholdQty pay the unit price.
type PromoRule struct {
	ThresholdQty int     `json:"thresholdQty" bson:"thresholdQty"`
	BundlePrice  float64 `json:"bundlePrice" bson:"bundlePrice"`
}

// Product represents a product in the storefront catalogue.
type Product struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Price       float64    `json:"price" bson:"price"`
	Images      []string   `json:"images" bson:"images"`
	Category    string     `json:"category" bson:"category"`
	Size        string     `json:"size,omitempty" bson:"size,omitempty"`
	Brand       string     `json:"brand,omitempty" bson:"brand,omitempty"`
	Stock       int        `json:"stock,omitempty" bson:"stock,omitempty"`
	Featured    bool       `json:"featured,omitempty" bson:"featured,omitempty"`
	Sold        bool       `json:"sold,omitempty" bson:"sold,omitempty"`
	Promo       *PromoRule `json:"promo,omitempty" bson:"promo,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}
