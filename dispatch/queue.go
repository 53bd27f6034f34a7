// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/squaregrid/internal/goid"
)

// Queue is a Dispatcher pumped by a host framework.
//
// The goroutine that last called Bind or RunPending is the render
// context. Hosts call RunPending once per frame from their render
// callback; work dispatched from other goroutines waits until then.
//
// Call from a goroutine other than the render context blocks until the
// host's next RunPending, so it must not be used before the host loop
// is running.
//
// Thread safety: Queue is safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []task
	closed  bool

	owner atomic.Uint64

	logger *slog.Logger
}

// NewQueue creates an empty queue with no render context bound.
func NewQueue(opts ...Option) *Queue {
	o := applyOptions(opts)
	return &Queue{logger: o.logger}
}

// Bind makes the calling goroutine the render context.
func (q *Queue) Bind() {
	q.owner.Store(goid.Current())
}

// OnRenderThread reports whether the caller is the bound render context.
func (q *Queue) OnRenderThread() bool {
	return goid.Current() == q.owner.Load()
}

// Len returns the number of queued functions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunPending binds the calling goroutine as the render context and runs
// all queued work, including work queued while it runs.
// It returns the number of functions run.
func (q *Queue) RunPending() int {
	q.Bind()

	n := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return n
		}
		for _, t := range batch {
			t.run()
		}
		n += len(batch)
	}
}

// Dispatch runs fn on the render context. See Dispatcher.
func (q *Queue) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	if q.OnRenderThread() {
		fn()
		return
	}
	if !q.enqueue(task{fn: fn}) {
		q.logger.Debug("dispatch: queue closed, dropping work")
	}
}

// Call runs fn on the render context and waits for it. See Dispatcher.
func (q *Queue) Call(fn func()) error {
	if fn == nil {
		return nil
	}
	if q.OnRenderThread() {
		fn()
		return nil
	}
	t := newWaitTask(fn)
	if !q.enqueue(t) {
		return ErrClosed
	}
	return <-t.done
}

// Close discards queued work and rejects further work. Callers blocked
// in Call receive ErrClosed. Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	dropped := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, t := range dropped {
		t.drop()
	}
	if len(dropped) > 0 {
		q.logger.Debug("dispatch: queue closed with pending work", slog.Int("dropped", len(dropped)))
	}
	return nil
}

func (q *Queue) enqueue(t task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.pending = append(q.pending, t)
	return true
}
