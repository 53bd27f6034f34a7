// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"log/slog"
)

// ErrClosed is returned by Call when the dispatcher no longer runs work.
var ErrClosed = errors.New("dispatch: dispatcher is closed")

// Dispatcher runs functions on a single render context.
type Dispatcher interface {
	// Dispatch runs fn on the render context. If the caller is already
	// on the render context, fn runs before Dispatch returns; otherwise
	// fn is queued and Dispatch returns immediately. No completion signal
	// is delivered for queued work.
	Dispatch(fn func())

	// Call runs fn on the render context and waits for it to finish.
	// Returns ErrClosed if fn was not run.
	Call(fn func()) error
}

// Immediate is a Dispatcher whose render context is whichever goroutine
// calls it. Every function runs inline.
type Immediate struct{}

// Dispatch runs fn inline.
func (Immediate) Dispatch(fn func()) {
	if fn != nil {
		fn()
	}
}

// Call runs fn inline.
func (Immediate) Call(fn func()) error {
	if fn != nil {
		fn()
	}
	return nil
}

// task is a unit of queued work. done is nil for fire-and-forget work
// and receives exactly one value otherwise.
type task struct {
	fn   func()
	done chan error
}

func (t task) run() {
	t.fn()
	if t.done != nil {
		t.done <- nil
	}
}

func (t task) drop() {
	if t.done != nil {
		t.done <- ErrClosed
	}
}

func newWaitTask(fn func()) task {
	return task{fn: fn, done: make(chan error, 1)}
}

// Option configures a Loop or Queue.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used to report dropped work.
// Nil keeps the default silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
