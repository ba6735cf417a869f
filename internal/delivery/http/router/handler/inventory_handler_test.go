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
	"gocloud.dev/blob/memblob"

	"brewhub/internal/delivery/http/middleware"
	"brewhub/internal/delivery/http/validator"
	"brewhub/internal/domain/entity"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/store"
	"brewhub/internal/usecase/impl"
)

func newInventoryEcho(t *testing.T) (*echo.Echo, *InventoryHandler, *store.InventoryTracker) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	kv := memory.New()
	tracker := store.NewInventoryTracker(kv)
	snapshots := impl.NewSnapshotService(tracker, store.NewOrderBook(kv), bucket, slog.Default())

	return e, NewInventoryHandler(impl.NewInventoryService(tracker), snapshots), tracker
}

func TestInventoryHandler_CreateItem(t *testing.T) {
	t.Parallel()

	e, handler, _ := newInventoryEcho(t)

	payload := `{"name": "Arabica Beans", "category": "coffee", "quantity": 10, "unit": "kg", "price": 12.50, "reorder_level": 5}`
	req := httptest.NewRequest(http.MethodPost, "/inventory/items", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestInventoryHandler_RecordSaleInsufficientStock(t *testing.T) {
	t.Parallel()

	e, handler, tracker := newInventoryEcho(t)

	item, err := tracker.AddItem(context.Background(), entity.InventoryItem{
		Name:     "Arabica Beans",
		Quantity: 2,
		Price:    decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/inventory/sales", strings.NewReader(`{"item_id": 1, "quantity": 10}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.RecordSale(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INSUFFICIENT_STOCK")

	unchanged, err := tracker.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.Quantity)
}

func TestInventoryHandler_ImportBackupRejectsGarbage(t *testing.T) {
	t.Parallel()

	e, handler, _ := newInventoryEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/inventory/backup/import", strings.NewReader("{broken"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ImportBackup(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BACKUP")
}

func TestInventoryHandler_InventoryCSV(t *testing.T) {
	t.Parallel()

	e, handler, tracker := newInventoryEcho(t)

	_, err := tracker.AddItem(context.Background(), entity.InventoryItem{
		Name:     "Arabica Beans",
		Quantity: 10,
		Price:    decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/inventory/report/inventory.csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.InventoryCSV(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "inventory.csv")
	assert.Contains(t, rec.Body.String(), "Arabica Beans")
}
