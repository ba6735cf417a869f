package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
)

// ItemInput is the create/update payload for an inventory item.
type ItemInput struct {
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
}

// SaleRequest is the payload for recording a sale.
type SaleRequest struct {
	ItemID   int64  `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	// UnitPrice overrides the item's current price when positive.
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      string          `json:"date"`
	Customer  string          `json:"customer"`
	Notes     string          `json:"notes"`
}

// SupplierInput is the create/update payload for a supplier.
type SupplierInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// ReportStats summarizes the recorded sales.
type ReportStats struct {
	TotalSalesValue  decimal.Decimal `json:"total_sales_value"`
	TransactionCount int             `json:"transaction_count"`
	AverageSale      decimal.Decimal `json:"average_sale"`
	TopCategory      string          `json:"top_category"`
}

// InventoryUsecase defines the standalone tracker operations
type InventoryUsecase interface {
	// Items lists every inventory item
	Items(ctx context.Context) ([]entity.InventoryItem, error)

	// Item returns one item by id
	Item(ctx context.Context, id int64) (*entity.InventoryItem, error)

	// CreateItem stores a new item under the next sequential id
	CreateItem(ctx context.Context, input ItemInput) (*entity.InventoryItem, error)

	// UpdateItem replaces an existing item's fields
	UpdateItem(ctx context.Context, id int64, input ItemInput) (*entity.InventoryItem, error)

	// DeleteItem removes an item
	DeleteItem(ctx context.Context, id int64) error

	// LowStock lists items at or below their reorder level
	LowStock(ctx context.Context) ([]entity.InventoryItem, error)

	// Sales lists every recorded sale
	Sales(ctx context.Context) ([]entity.Sale, error)

	// RecordSale records a sale and decrements the item's stock
	RecordSale(ctx context.Context, req SaleRequest) (*entity.Sale, error)

	// DeleteSale removes a sale without restoring stock
	DeleteSale(ctx context.Context, id int64) error

	// Suppliers lists every supplier
	Suppliers(ctx context.Context) ([]entity.Supplier, error)

	// CreateSupplier stores a new supplier
	CreateSupplier(ctx context.Context, input SupplierInput) (*entity.Supplier, error)

	// UpdateSupplier replaces an existing supplier's fields
	UpdateSupplier(ctx context.Context, id int64, input SupplierInput) (*entity.Supplier, error)

	// DeleteSupplier removes a supplier
	DeleteSupplier(ctx context.Context, id int64) error

	// Report summarizes the recorded sales
	Report(ctx context.Context) (*ReportStats, error)
}
