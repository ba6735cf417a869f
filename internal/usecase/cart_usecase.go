// Package usecase defines the application's operation interfaces.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
)

// CartView bundles the cart lines with the derived totals, replacing the
// badge re-render of the storefront page.
type CartView struct {
	Items  []entity.CartItem `json:"items"`
	Totals entity.CartTotals `json:"totals"`
}

// CartUsecase defines the storefront cart operations
type CartUsecase interface {
	// AddItem adds one unit of the named menu item, merging with an
	// existing line of the same name
	AddItem(ctx context.Context, name string, price decimal.Decimal) (CartView, error)

	// ChangeQuantity adjusts a line by delta, removing it at zero or below
	ChangeQuantity(ctx context.Context, id int64, delta int) (CartView, error)

	// RemoveItem drops a line regardless of its quantity
	RemoveItem(ctx context.Context, id int64) (CartView, error)

	// Clear empties the cart
	Clear(ctx context.Context) error

	// View returns the current cart with totals
	View(ctx context.Context) (CartView, error)
}
