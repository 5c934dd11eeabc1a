package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the forward-only state machine permits
// moving from s to next. Cancellation is reachable from any non-terminal
// state; completed and cancelled orders are frozen.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	}
	return false
}

// String returns the status for logging.
func (s OrderStatus) String() string {
	return string(s)
}

// CustomerInfo is the contact block captured at checkout time.
type CustomerInfo struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address" bson:"address"`
}

// OrderItem is a frozen copy of a cart line at submission time. Later
// catalogue edits never affect it.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	ImageURL    string  `json:"imageUrl" bson:"imageUrl"`
	Category    string  `json:"category" bson:"category"`
	Size        string  `json:"size,omitempty" bson:"size,omitempty"`
	Brand       string  `json:"brand,omitempty" bson:"brand,omitempty"`
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	CustomerInfo CustomerInfo `json:"customerInfo" bson:"customerInfo"`
	Items        []OrderItem  `json:"items" bson:"items"`
	Total        float64      `json:"total" bson:"total"`
	Status       OrderStatus  `json:"status" bson:"status"`
	Notes        string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// Reference returns the short order reference shown to the customer,
// derived from the last 6 characters of the order ID.
func (o *Order) Reference() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}
