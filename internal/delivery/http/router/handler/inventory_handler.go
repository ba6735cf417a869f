package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"
)

// maxBackupSize bounds an uploaded backup file.
const maxBackupSize = 16 << 20

// InventoryHandler holds dependencies for the tracker handlers.
type InventoryHandler struct {
	uc        usecase.InventoryUsecase
	snapshots usecase.SnapshotUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, snapshots usecase.SnapshotUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc, snapshots: snapshots}
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil
}

// Items lists every inventory item.
func (h *InventoryHandler) Items(c echo.Context) error {
	items, err := h.uc.Items(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Item returns one inventory item by id.
func (h *InventoryHandler) Item(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	item, err := h.uc.Item(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// CreateItem stores a new inventory item.
func (h *InventoryHandler) CreateItem(c echo.Context) error {
	var input usecase.ItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item created")
}

// UpdateItem replaces an inventory item's fields.
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	var input usecase.ItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated")
}

// DeleteItem removes an inventory item.
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.uc.DeleteItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted")
}

// LowStock lists items at or below their reorder level.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	items, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Sales lists every recorded sale.
func (h *InventoryHandler) Sales(c echo.Context) error {
	sales, err := h.uc.Sales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "")
}

// RecordSale records a sale against an inventory item.
func (h *InventoryHandler) RecordSale(c echo.Context) error {
	var input usecase.SaleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	sale, err := h.uc.RecordSale(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded")
}

// DeleteSale removes a sale record.
func (h *InventoryHandler) DeleteSale(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sale id")
	}

	if err := h.uc.DeleteSale(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale deleted")
}

// Suppliers lists every supplier.
func (h *InventoryHandler) Suppliers(c echo.Context) error {
	suppliers, err := h.uc.Suppliers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suppliers, "")
}

// CreateSupplier stores a new supplier.
func (h *InventoryHandler) CreateSupplier(c echo.Context) error {
	var input usecase.SupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	supplier, err := h.uc.CreateSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, supplier, "Supplier created")
}

// UpdateSupplier replaces a supplier's fields.
func (h *InventoryHandler) UpdateSupplier(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier id")
	}

	var input usecase.SupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	supplier, err := h.uc.UpdateSupplier(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier updated")
}

// DeleteSupplier removes a supplier.
func (h *InventoryHandler) DeleteSupplier(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier id")
	}

	if err := h.uc.DeleteSupplier(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supplier deleted")
}

// Report summarizes the recorded sales.
func (h *InventoryHandler) Report(c echo.Context) error {
	stats, err := h.uc.Report(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// InventoryCSV streams the inventory report as CSV.
func (h *InventoryHandler) InventoryCSV(c echo.Context) error {
	raw, err := h.snapshots.InventoryCSV(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory.csv"`)

	return c.Blob(http.StatusOK, "text/csv", raw)
}

// SalesCSV streams the sales report as CSV.
func (h *InventoryHandler) SalesCSV(c echo.Context) error {
	raw, err := h.snapshots.SalesCSV(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales.csv"`)

	return c.Blob(http.StatusOK, "text/csv", raw)
}

// SuppliersCSV streams the supplier report as CSV.
func (h *InventoryHandler) SuppliersCSV(c echo.Context) error {
	raw, err := h.snapshots.SuppliersCSV(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="suppliers.csv"`)

	return c.Blob(http.StatusOK, "text/csv", raw)
}

// ExportBackup writes a tracker snapshot to the backup bucket.
func (h *InventoryHandler) ExportBackup(c echo.Context) error {
	key, err := h.snapshots.ExportBackup(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key}, "Backup exported")
}

// ImportBackup replaces the tracker state from an uploaded snapshot.
func (h *InventoryHandler) ImportBackup(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBackupSize))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read backup payload")
	}

	if err := h.snapshots.ImportBackup(c.Request().Context(), raw); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Backup imported")
}

// ClearAllData resets the tracker.
func (h *InventoryHandler) ClearAllData(c echo.Context) error {
	if err := h.snapshots.ClearAllData(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All tracker data cleared")
}
