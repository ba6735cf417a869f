package usecase

import (
	"context"

	"brewhub/internal/domain/entity"
)

// CheckoutRequest carries the contact details confirmed at checkout.
type CheckoutRequest struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	Phone               string `json:"phone" validate:"required"`
	Address             string `json:"address" validate:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

// CheckoutUsecase turns the current cart into a pending order
type CheckoutUsecase interface {
	// Confirm snapshots the cart into an immutable order, notifies the
	// admin inbox, records the user activity, and clears the cart
	Confirm(ctx context.Context, req CheckoutRequest) (*entity.Order, error)
}
