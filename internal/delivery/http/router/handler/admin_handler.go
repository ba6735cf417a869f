package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/usecase"
)

// AdminHandler holds dependencies for the admin mirror view handlers.
type AdminHandler struct {
	uc        usecase.AdminUsecase
	snapshots usecase.SnapshotUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, snapshots usecase.SnapshotUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, snapshots: snapshots}
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Orders lists orders, optionally filtered by ?status=.
func (h *AdminHandler) Orders(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown order status filter")
	}

	orders, err := h.uc.Orders(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Order returns one order by id.
func (h *AdminHandler) Order(c echo.Context) error {
	order, err := h.uc.Order(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Transition moves a pending order to completed or cancelled.
func (h *AdminHandler) Transition(c echo.Context) error {
	var input transitionRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	status := entity.OrderStatus(input.Status)
	if !status.Valid() {
		return errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	order, err := h.uc.Transition(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// ClearOrders removes every order.
func (h *AdminHandler) ClearOrders(c echo.Context) error {
	if err := h.uc.ClearOrders(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Orders cleared")
}

// Dashboard returns the derived summary statistics.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Customers groups orders by customer with totals.
func (h *AdminHandler) Customers(c echo.Context) error {
	customers, err := h.uc.Customers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// ExportOrders writes the order list to the backup bucket.
func (h *AdminHandler) ExportOrders(c echo.Context) error {
	key, err := h.snapshots.ExportOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key}, "Orders exported")
}
