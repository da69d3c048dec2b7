package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Cancellable reports whether an order in this status may still be
// cancelled. Delivered and cancelled are terminal.
func (s OrderStatus) Cancellable() bool {
	return s != OrderStatusDelivered && s != OrderStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// OrderItem pins the product price at order creation time. The price
// is copied, never referenced, so later catalog changes do not move
// the order total.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Items           []OrderItem   `json:"items,omitempty"`
	TotalCents      int64         `json:"total_cents"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentRef      *string       `json:"payment_ref,omitempty"`
	ShippingAddress string        `json:"shipping_address"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ItemsTotalCents sums price x quantity over all line items.
func ItemsTotalCents(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the checkout request. ExpectedTotalCents is
// the amount the client is about to be charged; it must match the
// server-side total exactly before any stock is touched.
type CreateOrderInput struct {
	Items              []OrderItemInput
	ShippingAddress    string
	ExpectedTotalCents int64
	CardToken          string
}
