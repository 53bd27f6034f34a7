// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"testing"
	"time"
)

func TestQueueDefersUntilRunPending(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	ran := 0
	q.Dispatch(func() { ran++ })
	q.Dispatch(func() { ran++ })

	if ran != 0 {
		t.Fatal("Dispatch ran work before the host pumped the queue")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}

	if n := q.RunPending(); n != 2 {
		t.Errorf("RunPending() = %d, want 2", n)
	}
	if ran != 2 || q.Len() != 0 {
		t.Errorf("ran = %d, Len() = %d after RunPending", ran, q.Len())
	}
}

func TestQueueBoundGoroutineRunsInline(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	if q.OnRenderThread() {
		t.Fatal("OnRenderThread() = true before Bind")
	}
	q.Bind()
	if !q.OnRenderThread() {
		t.Fatal("OnRenderThread() = false after Bind")
	}

	ran := false
	q.Dispatch(func() { ran = true })
	if !ran {
		t.Error("Dispatch on the render context did not run inline")
	}
	if err := q.Call(func() {}); err != nil {
		t.Errorf("Call() on the render context = %v", err)
	}

	// Work from other goroutines still queues.
	done := make(chan bool)
	go func() { done <- q.OnRenderThread() }()
	if <-done {
		t.Error("other goroutine reported as the render context")
	}
}

func TestQueueRunPendingIncludesNestedWork(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var order []int
	q.Dispatch(func() {
		order = append(order, 1)
		// Runs inline: RunPending bound this goroutine.
		q.Dispatch(func() { order = append(order, 2) })
	})
	q.Dispatch(func() { order = append(order, 3) })

	if n := q.RunPending(); n != 2 {
		t.Errorf("RunPending() = %d, want 2 queued functions", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestQueueCallBlocksUntilPumped(t *testing.T) {
	q := NewQueue()
	defer q.Close()
	q.Bind()

	result := make(chan error, 1)
	ran := make(chan struct{}, 1)
	go func() {
		result <- q.Call(func() { ran <- struct{}{} })
	}()

	// Wait for the call to be queued.
	deadline := time.Now().Add(5 * time.Second)
	for q.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Call was never queued")
		}
		time.Sleep(time.Millisecond)
	}

	select {
	case <-result:
		t.Fatal("Call returned before RunPending")
	default:
	}

	q.RunPending()
	if err := <-result; err != nil {
		t.Errorf("Call() = %v", err)
	}
	select {
	case <-ran:
	default:
		t.Error("Call returned without running its function")
	}
}

func TestQueueCloseReleasesWaiters(t *testing.T) {
	q := NewQueue()

	result := make(chan error, 1)
	go func() {
		result <- q.Call(func() { t.Error("ran after Close") })
	}()

	deadline := time.Now().Add(5 * time.Second)
	for q.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Call was never queued")
		}
		time.Sleep(time.Millisecond)
	}

	if err := q.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := <-result; !errors.Is(err, ErrClosed) {
		t.Errorf("Call() = %v, want ErrClosed", err)
	}
	if err := q.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestQueueAfterClose(t *testing.T) {
	q := NewQueue()
	_ = q.Close()

	q.Dispatch(func() { t.Error("ran after Close") })
	if q.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", q.Len())
	}
	if err := q.Call(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Call() after Close = %v, want ErrClosed", err)
	}
	if n := q.RunPending(); n != 0 {
		t.Errorf("RunPending() after Close = %d, want 0", n)
	}
}
