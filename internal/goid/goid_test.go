// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package goid

import (
	"sync"
	"testing"
)

func TestCurrentStable(t *testing.T) {
	a := Current()
	if a == 0 {
		t.Fatal("Current() = 0, want a positive id")
	}
	if b := Current(); a != b {
		t.Errorf("Current() changed within one goroutine: %d then %d", a, b)
	}
}

func TestCurrentDistinct(t *testing.T) {
	const goroutines = 16

	main := Current()
	ids := make([]uint64, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = Current()
		}()
	}
	wg.Wait()

	seen := map[uint64]bool{main: true}
	for i, id := range ids {
		if id == 0 {
			t.Fatalf("goroutine %d: Current() = 0", i)
		}
		if seen[id] {
			t.Errorf("goroutine %d: id %d is not unique", i, id)
		}
		seen[id] = true
	}
}

func BenchmarkCurrent(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Current()
	}
}
