// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dispatch serializes drawing onto a single render context.
//
// All surface mutation in squaregrid happens on one logical thread. A
// Dispatcher is the handle to that thread: work sent from the render
// thread itself runs immediately, work sent from any other goroutine is
// queued and the sender continues without waiting.
//
// # Dispatchers
//
//   - Immediate runs everything inline. Use it when the caller is the only
//     goroutine that touches the grid, and in tests.
//   - Loop owns a dedicated goroutine that executes queued work in order.
//   - Queue is pumped by a host framework: the host's frame callback calls
//     RunPending on its render thread, which becomes the render context.
//
// # Usage
//
//	loop := dispatch.NewLoop()
//	defer loop.Close()
//
//	loop.Dispatch(func() { /* draw */ }) // fire-and-forget
//	_ = loop.Flush()                      // wait for queued work
package dispatch
