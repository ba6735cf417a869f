package impl

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/store"
)

func seedOrder(t *testing.T, book *store.OrderBook, id, customer string, total float64, items ...entity.CartItem) {
	t.Helper()

	require.NoError(t, book.Submit(context.Background(), entity.Order{
		ID:          id,
		OrderNumber: "ORD" + id,
		Customer:    entity.Customer{Name: customer, Phone: "0912345678", Address: "1 Main St"},
		Items:       items,
		Total:       decimal.NewFromFloat(total),
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now(),
	}))
}

func TestAdminService_Dashboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := store.NewOrderBook(memory.New())
	service := NewAdminService(book)

	seedOrder(t, book, "1", "John", 10.80, entity.CartItem{Name: "Latte", Quantity: 2})
	seedOrder(t, book, "2", "Jane", 6.40, entity.CartItem{Name: "Latte", Quantity: 1}, entity.CartItem{Name: "Mocha", Quantity: 3})
	seedOrder(t, book, "3", "John", 4.20, entity.CartItem{Name: "Espresso", Quantity: 1})

	_, err := service.Transition(ctx, "3", entity.OrderStatusCompleted)
	require.NoError(t, err)

	stats, err := service.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 2, stats.DistinctCustomers)
	assert.True(t, stats.Revenue.Pending.Equal(decimal.NewFromFloat(17.20)))
	assert.True(t, stats.Revenue.Completed.Equal(decimal.NewFromFloat(4.20)))
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromFloat(21.40)))
	assert.Len(t, stats.RecentOrders, 3)

	require.NotEmpty(t, stats.PopularItems)
	assert.Equal(t, "Latte", stats.PopularItems[0].Name)
	assert.Equal(t, 3, stats.PopularItems[0].Quantity)
}

func TestAdminService_DashboardExcludesCancelledRevenue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := store.NewOrderBook(memory.New())
	service := NewAdminService(book)

	seedOrder(t, book, "1", "John", 10.00)
	_, err := service.Transition(ctx, "1", entity.OrderStatusCancelled)
	require.NoError(t, err)

	stats, err := service.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestAdminService_TransitionRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := store.NewOrderBook(memory.New())
	service := NewAdminService(book)

	seedOrder(t, book, "1", "John", 10.00)

	order, err := service.Transition(ctx, "1", entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)

	_, err = service.Transition(ctx, "1", entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = service.Transition(ctx, "missing", entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAdminService_Customers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := store.NewOrderBook(memory.New())
	service := NewAdminService(book)

	seedOrder(t, book, "1", "John", 10.00)
	seedOrder(t, book, "2", "Jane", 5.00)
	seedOrder(t, book, "3", "John", 7.50)

	customers, err := service.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	john := -1
	for i := range customers {
		if customers[i].Customer.Name == "John" {
			john = i

			break
		}
	}
	require.NotEqual(t, -1, john)
	assert.Equal(t, 2, customers[john].OrderCount)
	assert.True(t, customers[john].TotalSpent.Equal(decimal.NewFromFloat(17.50)))
}

func TestAdminService_OrderLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := store.NewOrderBook(memory.New())
	service := NewAdminService(book)

	seedOrder(t, book, "1", "John", 10.00)

	order, err := service.Order(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ORD1", order.OrderNumber)

	_, err = service.Order(ctx, "2")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
