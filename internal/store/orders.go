package store

import (
	"context"
	"sync"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
)

// OrderBook owns the pending-orders list, newest first. Orders are immutable
// snapshots except for their status field.
type OrderBook struct {
	mu     sync.Mutex
	kv     repository.KVStore
	orders []entity.Order
}

// NewOrderBook creates an empty book backed by kv. Call Load before use.
func NewOrderBook(kv repository.KVStore) *OrderBook {
	return &OrderBook{kv: kv}
}

// Load rehydrates the order list from the store.
func (o *OrderBook) Load(ctx context.Context) error {
	orders, err := loadList[entity.Order](ctx, o.kv, repository.KeyPendingOrders)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = orders

	return nil
}

// Submit prepends a new order.
func (o *OrderBook) Submit(ctx context.Context, order entity.Order) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = append([]entity.Order{order}, o.orders...)

	return saveList(ctx, o.kv, repository.KeyPendingOrders, o.orders)
}

// Orders returns a copy of the list, optionally filtered by status. An empty
// filter returns everything.
func (o *OrderBook) Orders(status entity.OrderStatus) []entity.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]entity.Order, 0, len(o.orders))
	for _, order := range o.orders {
		if status == "" || order.Status == status {
			out = append(out, order)
		}
	}

	return out
}

// Get returns the order with the given id.
func (o *OrderBook) Get(id string) (entity.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, order := range o.orders {
		if order.ID == id {
			return order, nil
		}
	}

	return entity.Order{}, domainerrors.ErrOrderNotFound
}

// Transition overwrites an order's status. Only pending orders may move, and
// only to a terminal status. The write is last-write-wins.
func (o *OrderBook) Transition(ctx context.Context, id string, status entity.OrderStatus) (entity.Order, error) {
	if !status.Valid() || !status.Terminal() {
		return entity.Order{}, domainerrors.ErrInvalidTransition
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.orders {
		if o.orders[i].ID != id {
			continue
		}

		if o.orders[i].Status != entity.OrderStatusPending {
			return entity.Order{}, domainerrors.ErrInvalidTransition
		}

		o.orders[i].Status = status

		if err := saveList(ctx, o.kv, repository.KeyPendingOrders, o.orders); err != nil {
			return entity.Order{}, err
		}

		return o.orders[i], nil
	}

	return entity.Order{}, domainerrors.ErrOrderNotFound
}

// Clear removes every order.
func (o *OrderBook) Clear(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = nil

	return saveList(ctx, o.kv, repository.KeyPendingOrders, o.orders)
}
