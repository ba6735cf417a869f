package impl

import (
	"context"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

type inventoryService struct {
	tracker *store.InventoryTracker
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(tracker *store.InventoryTracker) usecase.InventoryUsecase {
	return &inventoryService{tracker: tracker}
}

func (s *inventoryService) Items(_ context.Context) ([]entity.InventoryItem, error) {
	return s.tracker.Items(), nil
}

func (s *inventoryService) Item(_ context.Context, id int64) (*entity.InventoryItem, error) {
	item, err := s.tracker.Item(id)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, input usecase.ItemInput) (*entity.InventoryItem, error) {
	item, err := s.tracker.AddItem(ctx, itemFromInput(input))
	if err != nil {
		return nil, wrapStorage(err, "create inventory item")
	}

	return &item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id int64, input usecase.ItemInput) (*entity.InventoryItem, error) {
	updated := itemFromInput(input)
	updated.ID = id

	item, err := s.tracker.UpdateItem(ctx, updated)
	if err != nil {
		return nil, wrapStorage(err, "update inventory item")
	}

	return &item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.tracker.DeleteItem(ctx, id); err != nil {
		return wrapStorage(err, "delete inventory item")
	}

	return nil
}

func (s *inventoryService) LowStock(_ context.Context) ([]entity.InventoryItem, error) {
	return s.tracker.LowStock(), nil
}

func (s *inventoryService) Sales(_ context.Context) ([]entity.Sale, error) {
	return s.tracker.Sales(), nil
}

func (s *inventoryService) RecordSale(ctx context.Context, req usecase.SaleRequest) (*entity.Sale, error) {
	sale, err := s.tracker.RecordSale(ctx, store.SaleInput{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Date:      req.Date,
		Customer:  req.Customer,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, wrapStorage(err, "record sale")
	}

	return &sale, nil
}

func (s *inventoryService) DeleteSale(ctx context.Context, id int64) error {
	if err := s.tracker.DeleteSale(ctx, id); err != nil {
		return wrapStorage(err, "delete sale")
	}

	return nil
}

func (s *inventoryService) Suppliers(_ context.Context) ([]entity.Supplier, error) {
	return s.tracker.Suppliers(), nil
}

func (s *inventoryService) CreateSupplier(ctx context.Context, input usecase.SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.tracker.AddSupplier(ctx, supplierFromInput(input))
	if err != nil {
		return nil, wrapStorage(err, "create supplier")
	}

	return &supplier, nil
}

func (s *inventoryService) UpdateSupplier(ctx context.Context, id int64, input usecase.SupplierInput) (*entity.Supplier, error) {
	updated := supplierFromInput(input)
	updated.ID = id

	supplier, err := s.tracker.UpdateSupplier(ctx, updated)
	if err != nil {
		return nil, wrapStorage(err, "update supplier")
	}

	return &supplier, nil
}

func (s *inventoryService) DeleteSupplier(ctx context.Context, id int64) error {
	if err := s.tracker.DeleteSupplier(ctx, id); err != nil {
		return wrapStorage(err, "delete supplier")
	}

	return nil
}

// Report summarizes every recorded sale. The top category is the one with
// the highest summed sale value.
func (s *inventoryService) Report(_ context.Context) (*usecase.ReportStats, error) {
	sales := s.tracker.Sales()

	stats := usecase.ReportStats{
		TotalSalesValue: decimal.Zero,
		AverageSale:     decimal.Zero,
	}

	categories := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		stats.TotalSalesValue = stats.TotalSalesValue.Add(sale.Total)
		stats.TransactionCount++
		categories[sale.Category] = categories[sale.Category].Add(sale.Total)
	}

	if stats.TransactionCount > 0 {
		stats.AverageSale = stats.TotalSalesValue.
			Div(decimal.NewFromInt(int64(stats.TransactionCount))).
			Round(2)
	}

	top := decimal.Zero
	for category, value := range categories {
		if value.GreaterThan(top) {
			top = value
			stats.TopCategory = category
		}
	}

	return &stats, nil
}

func itemFromInput(input usecase.ItemInput) entity.InventoryItem {
	return entity.InventoryItem{
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Price:        input.Price,
		ReorderLevel: input.ReorderLevel,
		Supplier:     input.Supplier,
		Location:     input.Location,
		Notes:        input.Notes,
	}
}

func supplierFromInput(input usecase.SupplierInput) entity.Supplier {
	return entity.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	}
}
