// Package store holds the owned state containers. Each container keeps its
// list in memory, serializes the whole list on every mutation, and rehydrates
// from the key-value store on load. Missing or corrupt persisted JSON is
// treated as an empty collection.
package store

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/repository"
	"brewhub/internal/errors"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// loadList reads and decodes the list stored under key. An absent key or a
// value that fails to decode yields a nil slice.
func loadList[T any](ctx context.Context, kv repository.KVStore, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to load %s", key)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, nil
	}

	return list, nil
}

// saveList serializes the whole list and overwrites the stored value.
func saveList[T any](ctx context.Context, kv repository.KVStore, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := kv.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to persist %s", key)
	}

	return nil
}
