package store

import (
	"context"
	"log/slog"

	"brewhub/internal/domain/repository"
)

// Watcher subscribes to the key-value change feed and rehydrates the
// container owning each changed key. Events are best-effort: a missed event
// is repaired by the next one, and concurrent writers remain last-write-wins.
type Watcher struct {
	kv         repository.KVStore
	cart       *CartLedger
	orders     *OrderBook
	inbox      *Inbox
	tracker    *InventoryTracker
	activities *ActivityLog
	logger     *slog.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewWatcher creates a watcher over every container.
func NewWatcher(
	kv repository.KVStore,
	cart *CartLedger,
	orders *OrderBook,
	inbox *Inbox,
	tracker *InventoryTracker,
	activities *ActivityLog,
	logger *slog.Logger,
) *Watcher {
	return &Watcher{
		kv:         kv,
		cart:       cart,
		orders:     orders,
		inbox:      inbox,
		tracker:    tracker,
		activities: activities,
		logger:     logger,
	}
}

// Start begins consuming change events until Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	events, err := w.kv.Watch(ctx)
	if err != nil {
		cancel()

		return err
	}

	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx, events)

	return nil
}

// Stop cancels the subscription and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context, events <-chan repository.KVEvent) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			if err := w.reload(ctx, event.Key); err != nil {
				w.logger.Warn("failed to rehydrate after change",
					slog.String("key", event.Key),
					slog.Any("error", err),
				)
			}
		}
	}
}

func (w *Watcher) reload(ctx context.Context, key string) error {
	switch key {
	case repository.KeyCart:
		return w.cart.Load(ctx)
	case repository.KeyPendingOrders:
		return w.orders.Load(ctx)
	case repository.KeyAdminNotifications, repository.KeyAdminMessages:
		return w.inbox.Load(ctx)
	case repository.KeyInventory, repository.KeySales, repository.KeySuppliers, repository.KeyLastID:
		return w.tracker.Load(ctx)
	case repository.KeyUserActivities:
		return w.activities.Load(ctx)
	}

	return nil
}
