// Package schedule provides a registry of delayed one-shot tasks keyed by
// caller-chosen ids. Scheduling under an existing key cancels the previous
// task, and keys are cleared once their task fires.
package schedule

import (
	"sync"
	"time"
)

// Scheduler runs functions after a delay. The zero value is not usable; call
// New.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// After schedules fn to run once delay has elapsed. A pending task under the
// same key is cancelled first. fn runs on its own goroutine.
func (s *Scheduler) After(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}

	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel stops the pending task under key, reporting whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[key]
	if !ok {
		return false
	}

	timer.Stop()
	delete(s.timers, key)

	return true
}

// Close cancels every pending task and rejects further scheduling.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}

	return nil
}
