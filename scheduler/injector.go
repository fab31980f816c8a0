// File: scheduler/injector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unordered lock-free MPMC pool for idle handles, based on the sequence-
// number scheme by Dmitry Vyukov for bounded MPMC queues. Steal makes a
// single attempt and reports success, empty, or contention, so callers
// decide their own retry policy.

package scheduler

import (
	"sync/atomic"

	"github.com/momentics/accelsched/api"
)

const cacheLinePad = 64

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// injector is a bounded MPMC pool. Capacity is rounded up to a power of
// two; the scheduler sizes each pool to its type's catalog population, so
// under the conservation invariant a push never finds the pool full.
type injector[T any] struct {
	head uint64
	_    [cacheLinePad]byte
	tail uint64
	_    [cacheLinePad]byte

	mask  uint64
	cells []cell[T]
}

func newInjector[T any](capacity int) *injector[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	q := &injector[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// Push inserts val, spinning through producer contention. Returns false
// only if the pool is full, which the scheduler treats as an invariant
// violation rather than a wait condition.
func (q *injector[T]) Push(val T) bool {
	for {
		tail := atomic.LoadUint64(&q.tail)
		c := &q.cells[tail&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Steal attempts to remove one element. A failed CAS or a cell still being
// written by a producer reports StealRetry; a consumed-up pool reports
// StealEmpty.
func (q *injector[T]) Steal() (item T, st api.Steal) {
	head := atomic.LoadUint64(&q.head)
	c := &q.cells[head&q.mask]
	seq := c.sequence.Load()
	dif := int64(seq) - int64(head+1)

	if dif == 0 {
		if !atomic.CompareAndSwapUint64(&q.head, head, head+1) {
			return item, api.StealRetry
		}
		item = c.data
		var zero T
		c.data = zero
		c.sequence.Store(head + q.mask + 1)
		return item, api.StealSuccess
	}
	if dif < 0 {
		return item, api.StealEmpty
	}
	return item, api.StealRetry
}
