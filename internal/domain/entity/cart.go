// Package entity contains the core business objects of the project.
package entity

import "github.com/shopspring/decimal"

// CartItem represents one line of the storefront cart.
type CartItem struct {
	ID        int64           `json:"id"`         // Sequential id, unique within one cart.
	Name      string          `json:"name"`       // Menu item name; also the merge key for repeated adds.
	UnitPrice decimal.Decimal `json:"unit_price"` // Price fixed when the line is first added.
	Quantity  int             `json:"quantity"`   // Always >= 1; a line at zero is removed, never stored.
}

// LineTotal returns unit price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotals is the aggregate view of a cart.
type CartTotals struct {
	TotalItems int             `json:"total_items"` // Sum of line quantities.
	TotalPrice decimal.Decimal `json:"total_price"` // Sum of line totals.
}
