// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"brewhub/internal/errors"
)

// Storage keys. Every state list is serialized whole under its fixed key;
// writes are last-write-wins at single-key granularity.
const (
	KeyCart               = "cart"
	KeyPendingOrders      = "pendingOrders"
	KeyAdminNotifications = "adminNotifications"
	KeyAdminMessages      = "adminMessages"
	KeyInventory          = "inventory"
	KeySales              = "sales"
	KeySuppliers          = "suppliers"
	KeyLastID             = "lastId"
	KeyUserActivities     = "userActivities"
)

// ErrKeyNotFound is returned by KVStore.Get for an absent key. Readers treat
// it as an empty collection.
var ErrKeyNotFound = errors.New("kv: key not found")

// KVEvent signals that a key was written or deleted. Events are best-effort:
// there is no ordering guarantee relative to the triggering write, and events
// may be dropped under load.
type KVEvent struct {
	Key string
}

// KVStore is the durable key-value store backing every state list. Values are
// opaque JSON blobs. There are no transactions; a Set replaces the stored
// value unconditionally.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Watch subscribes to change events until ctx is done.
	Watch(ctx context.Context) (<-chan KVEvent, error)

	Close() error
}
