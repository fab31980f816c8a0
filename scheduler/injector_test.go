// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tests for the lock-free idle pool.

package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/accelsched/api"
)

// steal retries through contention so tests can treat the pool as a plain
// success/empty queue.
func steal[T any](q *injector[T]) (T, bool) {
	for {
		item, st := q.Steal()
		switch st {
		case api.StealSuccess:
			return item, true
		case api.StealEmpty:
			var zero T
			return zero, false
		}
	}
}

func TestInjector_PushSteal(t *testing.T) {
	q := newInjector[int](4)

	if _, ok := steal(q); ok {
		t.Errorf("Expected empty pool, got an element")
	}

	for i := 1; i <= 4; i++ {
		if !q.Push(i) {
			t.Fatalf("Push(%d) failed on non-full pool", i)
		}
	}

	seen := make(map[int]bool)
	for i := 0; i < 4; i++ {
		v, ok := steal(q)
		if !ok {
			t.Fatalf("Expected 4 elements, pool empty after %d", i)
		}
		if seen[v] {
			t.Errorf("Element %d stolen twice", v)
		}
		seen[v] = true
	}

	if _, ok := steal(q); ok {
		t.Errorf("Expected drained pool, got an element")
	}
}

func TestInjector_FullReportsFalse(t *testing.T) {
	q := newInjector[int](2)
	if !q.Push(1) || !q.Push(2) {
		t.Fatalf("Push failed below capacity")
	}
	if q.Push(3) {
		t.Errorf("Expected Push to report false on a full pool")
	}
}

func TestInjector_MPMC(t *testing.T) {
	q := newInjector[int](1024)
	producers := 8
	consumers := 8
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64
	var receivedSum int64
	var receivedCount int64
	totalItems := int64(producers * itemsPerProducer)

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !q.Push(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	consumerWg := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				val, st := q.Steal()
				switch st {
				case api.StealSuccess:
					atomic.AddInt64(&receivedSum, int64(val))
					if atomic.AddInt64(&receivedCount, 1) == totalItems {
						return
					}
				case api.StealEmpty:
					if atomic.LoadInt64(&receivedCount) >= totalItems {
						return
					}
					runtime.Gosched()
				case api.StealRetry:
					// contention, try again
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("Timeout waiting for consumers. Received %d/%d", atomic.LoadInt64(&receivedCount), totalItems)
	}
}
