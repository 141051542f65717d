package models

import "time"

// Order statuses. An order is created as "pending" and moves to "received"
// once it has been persisted; no further transitions are modeled.
const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)

// OrderItem is a snapshot of a catalog item at the time of purchase.
// It deliberately does not re-resolve to a live product row, since the
// catalog price may change after the order is placed.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Image    string  `json:"image"`
	// Subtotal is recomputed server-side as Price * Quantity; any
	// client-supplied value is ignored.
	Subtotal float64 `json:"subtotal,omitempty"`
}

// Order represents a submitted customer order.
// Items are stored as a serialized JSON blob in the items column; the
// repository marshals on create and unmarshals on read.
type Order struct {
	ID              uint        `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID         string      `json:"order_id" gorm:"uniqueIndex;type:varchar(64)"`
	Items           []OrderItem `json:"items" gorm:"-"`
	ItemsJSON       string      `json:"-" gorm:"column:items;type:text"`
	TotalAmount     float64     `json:"total_amount"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	City            string      `json:"city,omitempty"`
	ZipCode         string      `json:"zip_code,omitempty"`
	Country         string      `json:"country,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status" gorm:"default:pending"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderRequest is the cart payload submitted by the storefront client.
type OrderRequest struct {
	Items           []OrderItem `json:"items" validate:"dive"`
	TotalAmount     float64     `json:"total_amount"`
	CustomerName    string      `json:"customer_name" validate:"required"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	City            string      `json:"city"`
	ZipCode         string      `json:"zip_code"`
	Country         string      `json:"country"`
	PaymentMethod   string      `json:"payment_method" validate:"required"`
}

// OrderCreatedEvent is the message published when an order has been
// persisted. Consumers use it to drive notification dispatch.
type OrderCreatedEvent struct {
	OrderID       string  `json:"order_id"`
	CustomerEmail string  `json:"customer_email"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
}
