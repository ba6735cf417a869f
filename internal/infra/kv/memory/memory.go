// Package memory contains an in-process implementation of the key-value
// store port, used for tests and single-node deployments.
package memory

import (
	"context"
	"sync"

	"brewhub/internal/domain/repository"
)

// Store is a mutex-guarded map with best-effort change fan-out. Values are
// copied on the way in and out so callers never share backing arrays.
type Store struct {
	mu       sync.RWMutex
	data     map[string][]byte
	watchers map[int]chan repository.KVEvent
	nextID   int
	closed   bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data:     make(map[string][]byte),
		watchers: make(map[int]chan repository.KVEvent),
	}
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set replaces the value stored under key unconditionally.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()

	s.notify(key)

	return nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	_, existed := s.data[key]
	delete(s.data, key)
	s.mu.Unlock()

	if existed {
		s.notify(key)
	}

	return nil
}

// Watch subscribes to change events until ctx is done. Events are dropped if
// the subscriber falls behind.
func (s *Store) Watch(ctx context.Context) (<-chan repository.KVEvent, error) {
	events := make(chan repository.KVEvent, 16)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = events
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
		close(events)
	}()

	return events, nil
}

// Close drops all watchers.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.watchers = make(map[int]chan repository.KVEvent)

	return nil
}

func (s *Store) notify(key string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, events := range s.watchers {
		select {
		case events <- repository.KVEvent{Key: key}:
		default:
			// Best effort only; a slow watcher misses events.
		}
	}
}
