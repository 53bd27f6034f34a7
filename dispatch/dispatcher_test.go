// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"testing"
)

// Verify dispatchers implement Dispatcher.
var (
	_ Dispatcher = Immediate{}
	_ Dispatcher = (*Loop)(nil)
	_ Dispatcher = (*Queue)(nil)
)

func TestImmediate(t *testing.T) {
	var d Immediate

	ran := 0
	d.Dispatch(func() { ran++ })
	if ran != 1 {
		t.Errorf("Dispatch ran %d times, want 1 inline", ran)
	}

	if err := d.Call(func() { ran++ }); err != nil {
		t.Errorf("Call() = %v", err)
	}
	if ran != 2 {
		t.Errorf("Call ran %d times total, want 2", ran)
	}

	// Nil functions are ignored.
	d.Dispatch(nil)
	if err := d.Call(nil); err != nil {
		t.Errorf("Call(nil) = %v", err)
	}
}

func TestTaskDrop(t *testing.T) {
	tk := newWaitTask(func() { t.Error("dropped task ran") })
	tk.drop()
	if err := <-tk.done; err != ErrClosed {
		t.Errorf("dropped task reported %v, want ErrClosed", err)
	}

	// Fire-and-forget tasks have no one to notify.
	task{fn: func() {}}.drop()
}
