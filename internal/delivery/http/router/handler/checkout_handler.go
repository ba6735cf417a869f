package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"
)

// CheckoutHandler holds dependencies for the checkout handlers.
type CheckoutHandler struct {
	uc         usecase.CheckoutUsecase
	activities usecase.ActivityUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, activities usecase.ActivityUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, activities: activities}
}

// Confirm turns the cart into a pending order.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	var input usecase.CheckoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Confirm(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Activities lists the profile-page activity feed.
func (h *CheckoutHandler) Activities(c echo.Context) error {
	activities, err := h.activities.Activities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "")
}
