// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"

	"github.com/shopspring/decimal"

	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/errors"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

// wrapStorage converts container failures into the storage app error while
// letting catalog errors pass through untouched.
func wrapStorage(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStorageExecuteError(err, details)
}

type cartService struct {
	cart *store.CartLedger
}

// NewCartService creates a new cart service instance
func NewCartService(cart *store.CartLedger) usecase.CartUsecase {
	return &cartService{cart: cart}
}

func (s *cartService) AddItem(ctx context.Context, name string, price decimal.Decimal) (usecase.CartView, error) {
	items, err := s.cart.AddItem(ctx, name, price)
	if err != nil {
		return usecase.CartView{}, wrapStorage(err, "add cart item")
	}

	return usecase.CartView{Items: items, Totals: s.cart.Totals()}, nil
}

func (s *cartService) ChangeQuantity(ctx context.Context, id int64, delta int) (usecase.CartView, error) {
	items, err := s.cart.ChangeQuantity(ctx, id, delta)
	if err != nil {
		return usecase.CartView{}, wrapStorage(err, "change cart quantity")
	}

	return usecase.CartView{Items: items, Totals: s.cart.Totals()}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, id int64) (usecase.CartView, error) {
	items, err := s.cart.RemoveItem(ctx, id)
	if err != nil {
		return usecase.CartView{}, wrapStorage(err, "remove cart item")
	}

	return usecase.CartView{Items: items, Totals: s.cart.Totals()}, nil
}

func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cart.Clear(ctx); err != nil {
		return wrapStorage(err, "clear cart")
	}

	return nil
}

func (s *cartService) View(_ context.Context) (usecase.CartView, error) {
	return usecase.CartView{Items: s.cart.Items(), Totals: s.cart.Totals()}, nil
}
