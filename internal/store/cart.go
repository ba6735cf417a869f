package store

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
)

// CartLedger owns the storefront cart. One line per item name; the unit
// price is fixed when the line is first added.
type CartLedger struct {
	mu     sync.Mutex
	kv     repository.KVStore
	items  []entity.CartItem
	nextID int64
}

// NewCartLedger creates an empty ledger backed by kv. Call Load before use.
func NewCartLedger(kv repository.KVStore) *CartLedger {
	return &CartLedger{kv: kv, nextID: 1}
}

// Load rehydrates the cart from the store.
func (l *CartLedger) Load(ctx context.Context) error {
	items, err := loadList[entity.CartItem](ctx, l.kv, repository.KeyCart)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = items
	l.nextID = 1
	for _, item := range items {
		if item.ID >= l.nextID {
			l.nextID = item.ID + 1
		}
	}

	return nil
}

// AddItem adds one unit of the named item. A line with the same name gains
// quantity instead, keeping its original price. Blank names and negative
// prices are ignored.
func (l *CartLedger) AddItem(ctx context.Context, name string, price decimal.Decimal) ([]entity.CartItem, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.IsNegative() {
		return l.Items(), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	merged := false
	for i := range l.items {
		if l.items[i].Name == name {
			l.items[i].Quantity++
			merged = true

			break
		}
	}

	if !merged {
		l.items = append(l.items, entity.CartItem{
			ID:        l.nextID,
			Name:      name,
			UnitPrice: price,
			Quantity:  1,
		})
		l.nextID++
	}

	if err := saveList(ctx, l.kv, repository.KeyCart, l.items); err != nil {
		return nil, err
	}

	return cloneCart(l.items), nil
}

// ChangeQuantity adjusts a line by delta. A resulting quantity of zero or
// less removes the line. Unknown ids are ignored.
func (l *CartLedger) ChangeQuantity(ctx context.Context, id int64, delta int) ([]entity.CartItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := false
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}

		l.items[i].Quantity += delta
		if l.items[i].Quantity <= 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
		changed = true

		break
	}

	if !changed {
		return cloneCart(l.items), nil
	}

	if err := saveList(ctx, l.kv, repository.KeyCart, l.items); err != nil {
		return nil, err
	}

	return cloneCart(l.items), nil
}

// RemoveItem drops the line with the given id. Unknown ids are ignored.
func (l *CartLedger) RemoveItem(ctx context.Context, id int64) ([]entity.CartItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)

			if err := saveList(ctx, l.kv, repository.KeyCart, l.items); err != nil {
				return nil, err
			}

			break
		}
	}

	return cloneCart(l.items), nil
}

// Clear empties the cart.
func (l *CartLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil

	return saveList(ctx, l.kv, repository.KeyCart, l.items)
}

// Items returns a copy of the current lines.
func (l *CartLedger) Items() []entity.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	return cloneCart(l.items)
}

// Totals sums quantities and line totals without mutating anything.
func (l *CartLedger) Totals() entity.CartTotals {
	l.mu.Lock()
	defer l.mu.Unlock()

	totals := entity.CartTotals{TotalPrice: decimal.Zero}
	for _, item := range l.items {
		totals.TotalItems += item.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(item.LineTotal())
	}

	return totals
}

func cloneCart(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)

	return out
}
