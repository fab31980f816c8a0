// Author: momentics <momentics@gmail.com>

package control

import (
	"sync"
	"testing"
)

func TestMetricsRegistry_Counters(t *testing.T) {
	mr := NewMetricsRegistry()

	mr.Inc(KeyAcquireTotal, 1)
	mr.Inc(KeyAcquireTotal, 2)
	if got := mr.Get(KeyAcquireTotal); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := mr.Get(KeySweepTotal); got != 0 {
		t.Errorf("Expected 0 for untouched key, got %d", got)
	}

	snap := mr.Snapshot()
	if snap[KeyAcquireTotal] != 3 {
		t.Errorf("Expected snapshot to carry 3, got %d", snap[KeyAcquireTotal])
	}
	if mr.Updated().IsZero() {
		t.Errorf("Expected Updated to advance after Inc")
	}
}

func TestMetricsRegistry_NilIsNoop(t *testing.T) {
	var mr *MetricsRegistry

	mr.Inc(KeyReleaseTotal, 1)
	if got := mr.Get(KeyReleaseTotal); got != 0 {
		t.Errorf("Expected 0 from nil registry, got %d", got)
	}
	if snap := mr.Snapshot(); snap != nil {
		t.Errorf("Expected nil snapshot from nil registry, got %v", snap)
	}
}

func TestMetricsRegistry_ConcurrentInc(t *testing.T) {
	mr := NewMetricsRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				mr.Inc(KeyReleaseTotal, 1)
			}
		}()
	}
	wg.Wait()

	if got := mr.Get(KeyReleaseTotal); got != 16000 {
		t.Errorf("Expected 16000, got %d", got)
	}
}
