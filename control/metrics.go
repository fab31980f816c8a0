// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime counters for scheduling observability.
// Exposes counters in a thread-safe map with dynamic registration; a nil
// registry is a valid no-op sink, so instrumented code never branches.

package control

import (
	"sync"
	"time"
)

// Counter keys written by the scheduler.
const (
	KeyAcquireTotal     = "acquire.total"
	KeyAcquireCancelled = "acquire.cancelled"
	KeyReleaseTotal     = "release.total"
	KeyReleaseRejected  = "release.rejected"
	KeySweepTotal       = "sweep.total"
	KeySweepDrained     = "sweep.drained"
	KeySweepSkipped     = "sweep.skipped"
)

// MetricsRegistry holds named monotonic counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]int64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]int64),
	}
}

// Inc adds delta to a counter key, creating it on first use.
func (mr *MetricsRegistry) Inc(key string, delta int64) {
	if mr == nil {
		return
	}
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the current value of a counter key.
func (mr *MetricsRegistry) Get(key string) int64 {
	if mr == nil {
		return 0
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// Snapshot returns a copy of all counters.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	if mr == nil {
		return nil
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last counter change.
func (mr *MetricsRegistry) Updated() time.Time {
	if mr == nil {
		return time.Time{}
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
