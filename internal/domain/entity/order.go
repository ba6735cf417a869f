package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Customer holds the contact details captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is the immutable snapshot produced when a checkout is confirmed.
// Items and amounts never change after creation; only Status may be
// overwritten by an admin transition.
type Order struct {
	ID                  string          `json:"id"`
	OrderNumber         string          `json:"order_number"` // Display number, e.g. "ORD12345678".
	Customer            Customer        `json:"customer"`
	Items               []CartItem      `json:"items"` // Deep copy of the cart at confirmation time.
	Subtotal            decimal.Decimal `json:"subtotal"`
	Tax                 decimal.Decimal `json:"tax"`
	Delivery            decimal.Decimal `json:"delivery"`
	Total               decimal.Decimal `json:"total"` // Always subtotal + tax + delivery.
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	Status              OrderStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}
