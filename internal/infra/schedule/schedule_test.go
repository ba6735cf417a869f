package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_After(t *testing.T) {
	t.Parallel()

	scheduler := New()
	defer func() { _ = scheduler.Close() }()

	fired := make(chan struct{})
	scheduler.After("msg-1", 10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}
}

func TestScheduler_Cancel(t *testing.T) {
	t.Parallel()

	scheduler := New()
	defer func() { _ = scheduler.Close() }()

	var fired atomic.Bool
	scheduler.After("msg-1", 20*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, scheduler.Cancel("msg-1"))
	assert.False(t, scheduler.Cancel("msg-1"))

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestScheduler_AfterReplacesPendingTask(t *testing.T) {
	t.Parallel()

	scheduler := New()
	defer func() { _ = scheduler.Close() }()

	var first atomic.Bool
	second := make(chan struct{})

	scheduler.After("msg-1", 20*time.Millisecond, func() { first.Store(true) })
	scheduler.After("msg-1", 10*time.Millisecond, func() { close(second) })

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("replacement task never fired")
	}

	time.Sleep(50 * time.Millisecond)
	assert.False(t, first.Load())
}

func TestScheduler_CloseCancelsPendingTasks(t *testing.T) {
	t.Parallel()

	scheduler := New()

	var fired atomic.Bool
	scheduler.After("msg-1", 20*time.Millisecond, func() { fired.Store(true) })

	assert.NoError(t, scheduler.Close())

	scheduler.After("msg-2", time.Millisecond, func() { fired.Store(true) })

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}
