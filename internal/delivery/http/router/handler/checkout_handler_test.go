package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhub/config"
	"brewhub/internal/delivery/http/middleware"
	"brewhub/internal/delivery/http/validator"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/store"
	"brewhub/internal/usecase/impl"
)

func newCheckoutEcho(t *testing.T) (*echo.Echo, *CheckoutHandler, *store.CartLedger) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	cfg := &config.Config{}
	cfg.Checkout.TaxRate = 0.10
	cfg.Checkout.DeliveryFee = 2.00

	kv := memory.New()
	cart := store.NewCartLedger(kv)
	activities := store.NewActivityLog(kv)

	service := impl.NewCheckoutService(cfg, cart, store.NewOrderBook(kv), store.NewInbox(kv), activities, slog.Default())

	return e, NewCheckoutHandler(service, impl.NewActivityService(activities)), cart
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	t.Parallel()

	e, handler, cart := newCheckoutEcho(t)

	_, err := cart.AddItem(context.Background(), "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)

	payload := `{"name": "John Doe", "phone": "0912345678", "address": "1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Confirm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_number":"ORD`)
	assert.Empty(t, cart.Items())
}

func TestCheckoutHandler_ConfirmValidation(t *testing.T) {
	t.Parallel()

	e, handler, cart := newCheckoutEcho(t)

	_, err := cart.AddItem(context.Background(), "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)

	// Missing phone and address fails request validation.
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"name": "John Doe"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.Confirm(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestCheckoutHandler_ConfirmEmptyCart(t *testing.T) {
	t.Parallel()

	e, handler, _ := newCheckoutEcho(t)

	payload := `{"name": "John Doe", "phone": "0912345678", "address": "1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Confirm(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CART_EMPTY")
}
