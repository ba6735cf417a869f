package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"brewhub/internal/delivery/http/middleware"
	"brewhub/internal/delivery/http/validator"
	"brewhub/internal/domain/entity"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/store"
	"brewhub/internal/usecase/impl"
)

func newAdminEcho(t *testing.T) (*echo.Echo, *AdminHandler, *store.OrderBook) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	kv := memory.New()
	orders := store.NewOrderBook(kv)
	snapshots := impl.NewSnapshotService(store.NewInventoryTracker(kv), orders, bucket, slog.Default())

	return e, NewAdminHandler(impl.NewAdminService(orders), snapshots), orders
}

func submitTestOrder(t *testing.T, orders *store.OrderBook, id string) {
	t.Helper()

	require.NoError(t, orders.Submit(context.Background(), entity.Order{
		ID:          id,
		OrderNumber: "ORD" + id,
		Customer:    entity.Customer{Name: "John Doe", Phone: "0912345678", Address: "1 Main St"},
		Total:       decimal.NewFromFloat(10.80),
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now(),
	}))
}

func TestAdminHandler_Transition(t *testing.T) {
	t.Parallel()

	e, handler, orders := newAdminEcho(t)
	submitTestOrder(t, orders, "1")

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/1/status", strings.NewReader(`{"status": "completed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.Transition(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed"`)
}

func TestAdminHandler_TransitionTerminalOrderRendersConflict(t *testing.T) {
	t.Parallel()

	e, handler, orders := newAdminEcho(t)
	submitTestOrder(t, orders, "1")

	_, err := orders.Transition(context.Background(), "1", entity.OrderStatusCancelled)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/1/status", strings.NewReader(`{"status": "completed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err = handler.Transition(c)
	require.Error(t, err)

	// The error handler renders the catalog error.
	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")
}

func TestAdminHandler_OrdersRejectsUnknownStatusFilter(t *testing.T) {
	t.Parallel()

	e, handler, _ := newAdminEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=shipped", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Orders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_OrderNotFound(t *testing.T) {
	t.Parallel()

	e, handler, _ := newAdminEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := handler.Order(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestAdminHandler_Dashboard(t *testing.T) {
	t.Parallel()

	e, handler, orders := newAdminEcho(t)
	submitTestOrder(t, orders, "1")

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_orders":1`)
	assert.Contains(t, rec.Body.String(), `"pending_count":1`)
}
