package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
)

// ActivityLog owns the prepend-only user activity feed shown on the profile
// page.
type ActivityLog struct {
	mu         sync.Mutex
	kv         repository.KVStore
	activities []entity.Activity
}

// NewActivityLog creates an empty log backed by kv. Call Load before use.
func NewActivityLog(kv repository.KVStore) *ActivityLog {
	return &ActivityLog{kv: kv}
}

// Load rehydrates the feed from the store.
func (l *ActivityLog) Load(ctx context.Context) error {
	activities, err := loadList[entity.Activity](ctx, l.kv, repository.KeyUserActivities)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.activities = activities

	return nil
}

// Record prepends a new activity entry.
func (l *ActivityLog) Record(ctx context.Context, title, description string) (entity.Activity, error) {
	activity := entity.Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.activities = append([]entity.Activity{activity}, l.activities...)

	if err := saveList(ctx, l.kv, repository.KeyUserActivities, l.activities); err != nil {
		return entity.Activity{}, err
	}

	return activity, nil
}

// Activities returns a copy of the feed, newest first.
func (l *ActivityLog) Activities() []entity.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Activity, len(l.activities))
	copy(out, l.activities)

	return out
}
