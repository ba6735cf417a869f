package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhub/internal/delivery/http/validator"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/store"
	"brewhub/internal/usecase/impl"
)

func newCartEcho(t *testing.T) (*echo.Echo, *CartHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	ledger := store.NewCartLedger(memory.New())

	return e, NewCartHandler(impl.NewCartService(ledger))
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Parallel()

	e, handler := newCartEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"name": "Latte", "price": 4.00}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"Latte"`)
	assert.Contains(t, body, `"total_items":1`)
}

func TestCartHandler_AddItemValidation(t *testing.T) {
	t.Parallel()

	e, handler := newCartEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"price": 4.00}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AddItem(c)
	require.Error(t, err)
}

func TestCartHandler_ChangeQuantityInvalidID(t *testing.T) {
	t.Parallel()

	e, handler := newCartEcho(t)

	req := httptest.NewRequest(http.MethodPatch, "/cart/items/abc", strings.NewReader(`{"delta": 1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.ChangeQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCartHandler_ChangeQuantityValidation(t *testing.T) {
	t.Parallel()

	e, handler := newCartEcho(t)

	// A zero delta never adjusts a line, so the payload is rejected.
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", strings.NewReader(`{"delta": 0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := handler.ChangeQuantity(c)
	require.Error(t, err)
}

func TestCartHandler_ViewEmpty(t *testing.T) {
	t.Parallel()

	e, handler := newCartEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.View(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":0`)
}
