package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gocloud.dev/blob"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

type snapshotService struct {
	tracker *store.InventoryTracker
	orders  *store.OrderBook
	bucket  *blob.Bucket
	logger  *slog.Logger
}

// NewSnapshotService creates a new snapshot service instance
func NewSnapshotService(
	tracker *store.InventoryTracker,
	orders *store.OrderBook,
	bucket *blob.Bucket,
	logger *slog.Logger,
) usecase.SnapshotUsecase {
	return &snapshotService{
		tracker: tracker,
		orders:  orders,
		bucket:  bucket,
		logger:  logger,
	}
}

func (s *snapshotService) ExportBackup(ctx context.Context) (string, error) {
	backup := s.tracker.Snapshot()

	raw, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "encode backup")
	}

	key := fmt.Sprintf("backups/tracker-%s.json", backup.ExportDate.Format("20060102-150405"))
	if err := s.bucket.WriteAll(ctx, key, raw, nil); err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "write backup")
	}

	s.logger.Info("tracker backup written", slog.String("key", key))

	return key, nil
}

// ImportBackup replaces the tracker state wholesale. A payload missing any
// of the top-level sections is rejected before anything changes.
func (s *snapshotService) ImportBackup(ctx context.Context, raw []byte) error {
	var payload struct {
		Inventory  *[]entity.InventoryItem `json:"inventory"`
		Sales      *[]entity.Sale          `json:"sales"`
		Suppliers  *[]entity.Supplier      `json:"suppliers"`
		LastID     *entity.Counters        `json:"lastId"`
		ExportDate time.Time               `json:"exportDate"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return domainerrors.ErrInvalidBackup.WithDetails(err.Error())
	}
	if payload.Inventory == nil || payload.Sales == nil || payload.Suppliers == nil || payload.LastID == nil {
		return domainerrors.ErrInvalidBackup
	}

	backup := entity.TrackerBackup{
		Inventory:  *payload.Inventory,
		Sales:      *payload.Sales,
		Suppliers:  *payload.Suppliers,
		LastID:     *payload.LastID,
		ExportDate: payload.ExportDate,
	}

	if err := s.tracker.Replace(ctx, backup); err != nil {
		return wrapStorage(err, "import backup")
	}

	s.logger.Info("tracker backup imported",
		slog.Int("items", len(backup.Inventory)),
		slog.Int("sales", len(backup.Sales)),
		slog.Int("suppliers", len(backup.Suppliers)),
	)

	return nil
}

func (s *snapshotService) ExportOrders(ctx context.Context) (string, error) {
	orders := s.orders.Orders("")

	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "encode orders")
	}

	key := fmt.Sprintf("exports/orders-%s.json", time.Now().Format("20060102-150405"))
	if err := s.bucket.WriteAll(ctx, key, raw, nil); err != nil {
		return "", domainerrors.NewStorageExecuteError(err, "write orders export")
	}

	return key, nil
}

func (s *snapshotService) InventoryCSV(_ context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{
		"Name", "Category", "Quantity", "Unit", "Price",
		"Reorder Level", "Status", "Supplier", "Location", "Total Value",
	}}
	for _, item := range s.tracker.Items() {
		records = append(records, []string{
			item.Name,
			item.Category,
			fmt.Sprintf("%d", item.Quantity),
			item.Unit,
			item.Price.StringFixed(2),
			fmt.Sprintf("%d", item.ReorderLevel),
			string(item.Status()),
			item.Supplier,
			item.Location,
			item.TotalValue().StringFixed(2),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "render inventory csv")
	}

	return buf.Bytes(), nil
}

func (s *snapshotService) SalesCSV(_ context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{
		"Date", "Item", "Category", "Quantity", "Unit Price", "Total", "Customer", "Notes",
	}}
	for _, sale := range s.tracker.Sales() {
		records = append(records, []string{
			sale.Date,
			sale.ItemName,
			sale.Category,
			fmt.Sprintf("%d", sale.Quantity),
			sale.UnitPrice.StringFixed(2),
			sale.Total.StringFixed(2),
			sale.Customer,
			sale.Notes,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "render sales csv")
	}

	return buf.Bytes(), nil
}

func (s *snapshotService) SuppliersCSV(_ context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{
		"Supplier Name", "Contact Person", "Phone", "Email", "Address", "Notes",
	}}
	for _, supplier := range s.tracker.Suppliers() {
		records = append(records, []string{
			supplier.Name,
			supplier.Contact,
			supplier.Phone,
			supplier.Email,
			supplier.Address,
			supplier.Notes,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "render supplier csv")
	}

	return buf.Bytes(), nil
}

func (s *snapshotService) ClearAllData(ctx context.Context) error {
	if err := s.tracker.ClearAll(ctx); err != nil {
		return wrapStorage(err, "clear tracker data")
	}

	s.logger.Info("tracker data cleared")

	return nil
}
