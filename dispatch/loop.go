// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/squaregrid/internal/goid"
)

// Loop is a Dispatcher backed by a dedicated goroutine.
//
// Work runs in the order it was dispatched. The queue is unbounded, so
// Dispatch never blocks the sender.
//
// Thread safety: Loop is safe for concurrent use.
type Loop struct {
	mu      sync.Mutex
	pending []task

	// wake has capacity 1; a pending signal means "the queue may be non-empty".
	wake chan struct{}

	// done signals the worker to stop.
	done chan struct{}

	// wg waits for the worker to finish.
	wg sync.WaitGroup

	// running indicates whether the loop is accepting work.
	running atomic.Bool

	// owner is the goroutine id of the worker.
	owner atomic.Uint64

	logger *slog.Logger
}

// NewLoop starts a render loop. Call Close to stop it.
func NewLoop(opts ...Option) *Loop {
	o := applyOptions(opts)

	l := &Loop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: o.logger,
	}
	l.running.Store(true)

	started := make(chan struct{})
	l.wg.Add(1)
	go l.worker(started)
	<-started

	return l
}

// worker is the main loop of the render goroutine.
func (l *Loop) worker(started chan<- struct{}) {
	defer l.wg.Done()

	l.owner.Store(goid.Current())
	close(started)

	for {
		select {
		case <-l.done:
			// Drain remaining work before exiting
			l.drain()
			return
		case <-l.wake:
			l.drain()
		}
	}
}

// drain runs queued work until the queue is empty.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, t := range batch {
			t.run()
		}
	}
}

// OnLoop reports whether the caller is running on the loop's goroutine.
func (l *Loop) OnLoop() bool {
	return goid.Current() == l.owner.Load()
}

// Running reports whether the loop still accepts work.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Dispatch runs fn on the loop. See Dispatcher.
// Work dispatched after Close is dropped.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	if l.OnLoop() {
		fn()
		return
	}
	if !l.enqueue(task{fn: fn}) {
		l.logger.Debug("dispatch: loop closed, dropping work")
	}
}

// Call runs fn on the loop and waits for it. See Dispatcher.
func (l *Loop) Call(fn func()) error {
	if fn == nil {
		return nil
	}
	if l.OnLoop() {
		fn()
		return nil
	}
	t := newWaitTask(fn)
	if !l.enqueue(t) {
		return ErrClosed
	}
	return <-t.done
}

// Flush waits until all work dispatched before the call has run.
func (l *Loop) Flush() error {
	return l.Call(func() {})
}

// Close stops accepting work, runs what is already queued and stops
// the worker. Close is idempotent. When called from the loop itself,
// Close does not wait for the worker to exit.
func (l *Loop) Close() error {
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		return nil
	}
	l.running.Store(false)
	l.mu.Unlock()

	close(l.done)
	if !l.OnLoop() {
		l.wg.Wait()
	}
	return nil
}

func (l *Loop) enqueue(t task) bool {
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		return false
	}
	l.pending = append(l.pending, t)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}
