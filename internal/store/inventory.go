package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/errors"
)

// SaleInput is the payload for recording a sale. A non-positive UnitPrice
// falls back to the item's current price.
type SaleInput struct {
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	Date      string
	Customer  string
	Notes     string
}

// InventoryTracker owns the standalone tracker state: items, sales,
// suppliers, and the per-type id counters persisted under lastId.
type InventoryTracker struct {
	mu        sync.Mutex
	kv        repository.KVStore
	items     []entity.InventoryItem
	sales     []entity.Sale
	suppliers []entity.Supplier
	counters  entity.Counters
}

// NewInventoryTracker creates an empty tracker backed by kv. Call Load
// before use.
func NewInventoryTracker(kv repository.KVStore) *InventoryTracker {
	return &InventoryTracker{kv: kv}
}

// Load rehydrates every list and the counters from the store.
func (t *InventoryTracker) Load(ctx context.Context) error {
	items, err := loadList[entity.InventoryItem](ctx, t.kv, repository.KeyInventory)
	if err != nil {
		return err
	}

	sales, err := loadList[entity.Sale](ctx, t.kv, repository.KeySales)
	if err != nil {
		return err
	}

	suppliers, err := loadList[entity.Supplier](ctx, t.kv, repository.KeySuppliers)
	if err != nil {
		return err
	}

	counters, err := t.loadCounters(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = items
	t.sales = sales
	t.suppliers = suppliers
	t.counters = counters

	return nil
}

func (t *InventoryTracker) loadCounters(ctx context.Context) (entity.Counters, error) {
	raw, err := t.kv.Get(ctx, repository.KeyLastID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return entity.Counters{}, nil
		}

		return entity.Counters{}, errors.Wrap(err, "failed to load counters")
	}

	var counters entity.Counters
	if err := json.Unmarshal(raw, &counters); err != nil {
		return entity.Counters{}, nil
	}

	return counters, nil
}

func (t *InventoryTracker) saveCounters(ctx context.Context) error {
	raw, err := json.Marshal(t.counters)
	if err != nil {
		return errors.Wrap(err, "failed to encode counters")
	}

	if err := t.kv.Set(ctx, repository.KeyLastID, raw); err != nil {
		return errors.Wrap(err, "failed to persist counters")
	}

	return nil
}

// AddItem assigns the next item id, stamps the add date, and stores the item.
func (t *InventoryTracker) AddItem(ctx context.Context, item entity.InventoryItem) (entity.InventoryItem, error) {
	if item.Quantity < 0 {
		return entity.InventoryItem{}, domainerrors.ErrValidationFailed
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.counters.Item++
	item.ID = t.counters.Item
	item.DateAdded = time.Now()
	t.items = append(t.items, item)

	if err := saveList(ctx, t.kv, repository.KeyInventory, t.items); err != nil {
		return entity.InventoryItem{}, err
	}
	if err := t.saveCounters(ctx); err != nil {
		return entity.InventoryItem{}, err
	}

	return item, nil
}

// UpdateItem replaces the stored item with the same id, keeping the original
// add date.
func (t *InventoryTracker) UpdateItem(ctx context.Context, item entity.InventoryItem) (entity.InventoryItem, error) {
	if item.Quantity < 0 {
		return entity.InventoryItem{}, domainerrors.ErrValidationFailed
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].ID != item.ID {
			continue
		}

		item.DateAdded = t.items[i].DateAdded
		t.items[i] = item

		if err := saveList(ctx, t.kv, repository.KeyInventory, t.items); err != nil {
			return entity.InventoryItem{}, err
		}

		return item, nil
	}

	return entity.InventoryItem{}, domainerrors.ErrItemNotFound
}

// DeleteItem removes the item with the given id.
func (t *InventoryTracker) DeleteItem(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)

			return saveList(ctx, t.kv, repository.KeyInventory, t.items)
		}
	}

	return domainerrors.ErrItemNotFound
}

// Item returns the item with the given id.
func (t *InventoryTracker) Item(id int64) (entity.InventoryItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, item := range t.items {
		if item.ID == id {
			return item, nil
		}
	}

	return entity.InventoryItem{}, domainerrors.ErrItemNotFound
}

// Items returns a copy of the item list.
func (t *InventoryTracker) Items() []entity.InventoryItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.InventoryItem, len(t.items))
	copy(out, t.items)

	return out
}

// LowStock returns items at or below their reorder level, including items
// that are out of stock.
func (t *InventoryTracker) LowStock() []entity.InventoryItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []entity.InventoryItem
	for _, item := range t.items {
		if item.Status() != entity.StockStatusIn {
			out = append(out, item)
		}
	}

	return out
}

// RecordSale freezes the sale total at the item's current price and
// decrements the item quantity. Selling more than is in stock is rejected
// with no state change.
func (t *InventoryTracker) RecordSale(ctx context.Context, input SaleInput) (entity.Sale, error) {
	if input.Quantity <= 0 {
		return entity.Sale{}, domainerrors.ErrValidationFailed
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var item *entity.InventoryItem
	for i := range t.items {
		if t.items[i].ID == input.ItemID {
			item = &t.items[i]

			break
		}
	}
	if item == nil {
		return entity.Sale{}, domainerrors.ErrItemNotFound
	}

	if input.Quantity > item.Quantity {
		return entity.Sale{}, domainerrors.ErrInsufficientStock
	}

	unitPrice := input.UnitPrice
	if !unitPrice.IsPositive() {
		unitPrice = item.Price
	}
	customer := strings.TrimSpace(input.Customer)
	if customer == "" {
		customer = "Walk-in"
	}

	t.counters.Sale++
	sale := entity.Sale{
		ID:         t.counters.Sale,
		ItemID:     item.ID,
		ItemName:   item.Name,
		Category:   item.Category,
		Quantity:   input.Quantity,
		UnitPrice:  unitPrice,
		Total:      unitPrice.Mul(decimalFromInt(input.Quantity)),
		Date:       input.Date,
		Customer:   customer,
		Notes:      input.Notes,
		RecordedAt: time.Now(),
	}

	item.Quantity -= input.Quantity
	t.sales = append(t.sales, sale)

	if err := saveList(ctx, t.kv, repository.KeyInventory, t.items); err != nil {
		return entity.Sale{}, err
	}
	if err := saveList(ctx, t.kv, repository.KeySales, t.sales); err != nil {
		return entity.Sale{}, err
	}
	if err := t.saveCounters(ctx); err != nil {
		return entity.Sale{}, err
	}

	return sale, nil
}

// DeleteSale removes a sale record. The sold quantity is never restored to
// inventory.
func (t *InventoryTracker) DeleteSale(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.sales {
		if t.sales[i].ID == id {
			t.sales = append(t.sales[:i], t.sales[i+1:]...)

			return saveList(ctx, t.kv, repository.KeySales, t.sales)
		}
	}

	return domainerrors.ErrSaleNotFound
}

// Sales returns a copy of the sale list.
func (t *InventoryTracker) Sales() []entity.Sale {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.Sale, len(t.sales))
	copy(out, t.sales)

	return out
}

// AddSupplier assigns the next supplier id and stores the record. Name and
// phone are required.
func (t *InventoryTracker) AddSupplier(ctx context.Context, supplier entity.Supplier) (entity.Supplier, error) {
	if strings.TrimSpace(supplier.Name) == "" || strings.TrimSpace(supplier.Phone) == "" {
		return entity.Supplier{}, domainerrors.ErrValidationFailed
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.counters.Supplier++
	supplier.ID = t.counters.Supplier
	supplier.DateAdded = time.Now()
	t.suppliers = append(t.suppliers, supplier)

	if err := saveList(ctx, t.kv, repository.KeySuppliers, t.suppliers); err != nil {
		return entity.Supplier{}, err
	}
	if err := t.saveCounters(ctx); err != nil {
		return entity.Supplier{}, err
	}

	return supplier, nil
}

// UpdateSupplier replaces the stored supplier with the same id, keeping the
// original add date.
func (t *InventoryTracker) UpdateSupplier(ctx context.Context, supplier entity.Supplier) (entity.Supplier, error) {
	if strings.TrimSpace(supplier.Name) == "" || strings.TrimSpace(supplier.Phone) == "" {
		return entity.Supplier{}, domainerrors.ErrValidationFailed
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.suppliers {
		if t.suppliers[i].ID != supplier.ID {
			continue
		}

		supplier.DateAdded = t.suppliers[i].DateAdded
		t.suppliers[i] = supplier

		if err := saveList(ctx, t.kv, repository.KeySuppliers, t.suppliers); err != nil {
			return entity.Supplier{}, err
		}

		return supplier, nil
	}

	return entity.Supplier{}, domainerrors.ErrSupplierNotFound
}

// DeleteSupplier removes the supplier with the given id. Items referencing
// it by name are left untouched.
func (t *InventoryTracker) DeleteSupplier(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.suppliers {
		if t.suppliers[i].ID == id {
			t.suppliers = append(t.suppliers[:i], t.suppliers[i+1:]...)

			return saveList(ctx, t.kv, repository.KeySuppliers, t.suppliers)
		}
	}

	return domainerrors.ErrSupplierNotFound
}

// Suppliers returns a copy of the supplier list.
func (t *InventoryTracker) Suppliers() []entity.Supplier {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.Supplier, len(t.suppliers))
	copy(out, t.suppliers)

	return out
}

// Snapshot captures the whole tracker state for export.
func (t *InventoryTracker) Snapshot() entity.TrackerBackup {
	t.mu.Lock()
	defer t.mu.Unlock()

	backup := entity.TrackerBackup{
		Inventory:  make([]entity.InventoryItem, len(t.items)),
		Sales:      make([]entity.Sale, len(t.sales)),
		Suppliers:  make([]entity.Supplier, len(t.suppliers)),
		LastID:     t.counters,
		ExportDate: time.Now(),
	}
	copy(backup.Inventory, t.items)
	copy(backup.Sales, t.sales)
	copy(backup.Suppliers, t.suppliers)

	return backup
}

// Replace swaps in a backup wholesale, in memory and in the store.
func (t *InventoryTracker) Replace(ctx context.Context, backup entity.TrackerBackup) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = backup.Inventory
	t.sales = backup.Sales
	t.suppliers = backup.Suppliers
	t.counters = backup.LastID

	if err := saveList(ctx, t.kv, repository.KeyInventory, t.items); err != nil {
		return err
	}
	if err := saveList(ctx, t.kv, repository.KeySales, t.sales); err != nil {
		return err
	}
	if err := saveList(ctx, t.kv, repository.KeySuppliers, t.suppliers); err != nil {
		return err
	}

	return t.saveCounters(ctx)
}

// ClearAll resets every list and the counters.
func (t *InventoryTracker) ClearAll(ctx context.Context) error {
	return t.Replace(ctx, entity.TrackerBackup{})
}
