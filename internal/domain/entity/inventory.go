package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is derived from quantity vs reorder level and never stored.
type StockStatus string

const (
	StockStatusOut StockStatus = "out-of-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusIn  StockStatus = "in-stock"
)

// StockStatusOf derives the stock status for a quantity and reorder level.
func StockStatusOf(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= reorderLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// InventoryItem is one tracked stock item.
type InventoryItem struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"` // Never negative.
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level"`
	Supplier     string          `json:"supplier"` // Denormalized supplier name, not enforced.
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
	DateAdded    time.Time       `json:"date_added"`
}

// Status derives the current stock status.
func (i InventoryItem) Status() StockStatus {
	return StockStatusOf(i.Quantity, i.ReorderLevel)
}

// TotalValue returns quantity times unit price.
func (i InventoryItem) TotalValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale records a stock sale. The total is computed at entry time and frozen;
// deleting a sale never restores the sold quantity.
type Sale struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"` // Weak reference to the inventory item.
	ItemName   string          `json:"item_name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"` // quantity x unit price, frozen.
	Date       string          `json:"date"`  // Sale date as entered, YYYY-MM-DD.
	Customer   string          `json:"customer"`
	Notes      string          `json:"notes"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Supplier is a vendor record; inventory items reference it by name only.
type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	DateAdded time.Time `json:"date_added"`
}

// Counters holds the last issued sequential id per record type, persisted
// under the lastId key.
type Counters struct {
	Item     int64 `json:"item"`
	Sale     int64 `json:"sale"`
	Supplier int64 `json:"supplier"`
}

// TrackerBackup is the portable snapshot of the whole tracker. Importing one
// replaces every list and the counters wholesale.
type TrackerBackup struct {
	Inventory  []InventoryItem `json:"inventory"`
	Sales      []Sale          `json:"sales"`
	Suppliers  []Supplier      `json:"suppliers"`
	LastID     Counters        `json:"lastId"`
	ExportDate time.Time       `json:"exportDate"`
}
