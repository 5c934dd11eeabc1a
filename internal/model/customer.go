package model

import "time"

// Customer aggregates the purchase history of one contact, keyed by the
// (email, phone) pair used at checkout.
type Customer struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Name          string     `json:"name" bson:"name"`
	Phone         string     `json:"phone" bson:"phone"`
	Email         string     `json:"email,omitempty" bson:"email,omitempty"`
	Address       string     `json:"address" bson:"address"`
	LastOrderID   string     `json:"lastOrderId,omitempty" bson:"lastOrderId,omitempty"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty" bson:"lastOrderDate,omitempty"`
	TotalOrders   int        `json:"totalOrders" bson:"totalOrders"`
	TotalSpent    float64    `json:"totalSpent" bson:"totalSpent"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}
