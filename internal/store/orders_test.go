package store

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
)

func testOrder(id string) entity.Order {
	return entity.Order{
		ID:          id,
		OrderNumber: "ORD" + id,
		Customer:    entity.Customer{Name: "John Doe", Phone: "0912345678", Address: "1 Main St"},
		Items: []entity.CartItem{
			{ID: 1, Name: "Latte", UnitPrice: decimal.NewFromFloat(4.00), Quantity: 2},
		},
		Subtotal:  decimal.NewFromFloat(8.00),
		Tax:       decimal.NewFromFloat(0.80),
		Delivery:  decimal.NewFromFloat(2.00),
		Total:     decimal.NewFromFloat(10.80),
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestOrderBook_SubmitPrepends(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := NewOrderBook(memory.New())

	require.NoError(t, book.Submit(ctx, testOrder("1")))
	require.NoError(t, book.Submit(ctx, testOrder("2")))

	orders := book.Orders("")
	require.Len(t, orders, 2)
	assert.Equal(t, "2", orders[0].ID)
}

func TestOrderBook_Transition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := NewOrderBook(memory.New())
	require.NoError(t, book.Submit(ctx, testOrder("1")))

	order, err := book.Transition(ctx, "1", entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)

	// Terminal orders cannot move again.
	_, err = book.Transition(ctx, "1", entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderBook_TransitionRejectsNonTerminalTarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := NewOrderBook(memory.New())
	require.NoError(t, book.Submit(ctx, testOrder("1")))

	_, err := book.Transition(ctx, "1", entity.OrderStatusPending)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = book.Transition(ctx, "1", entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderBook_TransitionUnknownID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := NewOrderBook(memory.New())

	_, err := book.Transition(ctx, "missing", entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderBook_OrdersFilterByStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	book := NewOrderBook(memory.New())
	require.NoError(t, book.Submit(ctx, testOrder("1")))
	require.NoError(t, book.Submit(ctx, testOrder("2")))

	_, err := book.Transition(ctx, "1", entity.OrderStatusCancelled)
	require.NoError(t, err)

	assert.Len(t, book.Orders(entity.OrderStatusPending), 1)
	assert.Len(t, book.Orders(entity.OrderStatusCancelled), 1)
	assert.Empty(t, book.Orders(entity.OrderStatusCompleted))
	assert.Len(t, book.Orders(""), 2)
}

func TestOrderBook_ClearAndReload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memory.New()

	book := NewOrderBook(kv)
	require.NoError(t, book.Submit(ctx, testOrder("1")))
	require.NoError(t, book.Clear(ctx))

	reloaded := NewOrderBook(kv)
	require.NoError(t, reloaded.Load(ctx))
	assert.Empty(t, reloaded.Orders(""))
}
