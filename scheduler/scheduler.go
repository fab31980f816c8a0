// File: scheduler/scheduler.go
// Author: momentics <momentics@gmail.com>
//
// The scheduling core: construction from the PE catalog, blocking and
// non-blocking acquisition, release with the active-guard, and the
// interrupt-normalization sweep.

package scheduler

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/eapache/queue"
	"github.com/rs/zerolog"

	"github.com/momentics/accelsched/api"
	"github.com/momentics/accelsched/control"
	"github.com/momentics/accelsched/pe"
)

// Option customizes scheduler construction.
type Option func(*Scheduler)

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithMetrics attaches a counter registry for scheduling observability.
func WithMetrics(m *control.MetricsRegistry) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// Scheduler hands out and reclaims PE handles. The PEId-to-pool mapping is
// built once and never structurally mutated, so lookups need no lock; all
// contention lands on the per-type pools.
type Scheduler struct {
	pes    map[api.PEId]*injector[*pe.Handle]
	counts map[api.PEId]int

	log     zerolog.Logger
	metrics *control.MetricsRegistry
}

// New groups the catalog into per-type idle pools. The slot index of each
// handle is its catalog position. completion may be nil when no
// notification transport is attached.
func New(catalog []api.PEDescriptor, mem api.DeviceMemory, completion *os.File, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		pes:    make(map[api.PEId]*injector[*pe.Handle]),
		counts: make(map[api.PEId]int),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, desc := range catalog {
		s.counts[desc.ID]++
	}

	active := pe.NewActiveSet(completion)
	for i, desc := range catalog {
		h, err := pe.NewHandle(uint(i), desc.ID, desc.Offset, desc.Size, desc.Name, mem, active)
		if err != nil {
			return nil, fmt.Errorf("construct PE catalog: %w", err)
		}
		pool, ok := s.pes[desc.ID]
		if !ok {
			s.log.Trace().Uint32("pe_type", uint32(desc.ID)).Str("name", desc.Name).Msg("new PE type found")
			pool = newInjector[*pe.Handle](s.counts[desc.ID])
			s.pes[desc.ID] = pool
		}
		if !pool.Push(h) {
			return nil, fmt.Errorf("construct PE catalog: idle pool for type %d rejected slot %d", desc.ID, i)
		}
	}
	return s, nil
}

// Types returns the set of PE types present in the catalog.
func (s *Scheduler) Types() []api.PEId {
	ids := make([]api.PEId, 0, len(s.pes))
	for id := range s.pes {
		ids = append(ids, id)
	}
	return ids
}

// InstanceCount returns how many catalog entries declared the given type.
func (s *Scheduler) InstanceCount(id api.PEId) int { return s.counts[id] }

// Acquire removes one idle handle of the given type, blocking the calling
// goroutine until one is available. An unknown type fails fast with
// NoSuchPE; a known type never returns an availability error, so a type
// whose instances are all perpetually held will spin forever. Use
// AcquireContext when that is not acceptable.
func (s *Scheduler) Acquire(id api.PEId) (*pe.Handle, error) {
	pool, ok := s.pes[id]
	if !ok {
		return nil, &api.NoSuchPEError{ID: id}
	}
	for {
		h, st := pool.Steal()
		switch st {
		case api.StealSuccess:
			s.metrics.Inc(control.KeyAcquireTotal, 1)
			return h, nil
		case api.StealEmpty:
			runtime.Gosched()
		case api.StealRetry:
			// contention, retry immediately
		}
	}
}

// AcquireContext is Acquire with a cancellation hook: when ctx fires the
// wait ends with ErrCancelled wrapping the context's error.
func (s *Scheduler) AcquireContext(ctx context.Context, id api.PEId) (*pe.Handle, error) {
	pool, ok := s.pes[id]
	if !ok {
		return nil, &api.NoSuchPEError{ID: id}
	}
	for {
		if err := ctx.Err(); err != nil {
			s.metrics.Inc(control.KeyAcquireCancelled, 1)
			return nil, fmt.Errorf("acquire PE type %d: %w (%w)", id, api.ErrCancelled, err)
		}
		h, st := pool.Steal()
		switch st {
		case api.StealSuccess:
			s.metrics.Inc(control.KeyAcquireTotal, 1)
			return h, nil
		case api.StealEmpty:
			runtime.Gosched()
		case api.StealRetry:
		}
	}
}

// TryAcquire is the non-blocking probe: it retries through contention but
// reports PEUnavailable as soon as the pool is observed empty.
func (s *Scheduler) TryAcquire(id api.PEId) (*pe.Handle, error) {
	pool, ok := s.pes[id]
	if !ok {
		return nil, &api.NoSuchPEError{ID: id}
	}
	for {
		h, st := pool.Steal()
		switch st {
		case api.StealSuccess:
			s.metrics.Inc(control.KeyAcquireTotal, 1)
			return h, nil
		case api.StealEmpty:
			return nil, &api.PEUnavailableError{ID: id}
		case api.StealRetry:
		}
	}
}

// Release returns a handle to its type's idle pool. A handle the hardware
// still reports as executing is rejected with PEStillActive and the pool is
// left untouched; reissuing a running unit would corrupt its results.
func (s *Scheduler) Release(h *pe.Handle) error {
	if h.Active() {
		s.metrics.Inc(control.KeyReleaseRejected, 1)
		return &api.PEStillActiveError{Slot: h.Slot(), Name: h.Name()}
	}
	pool, ok := s.pes[h.TypeID()]
	if !ok {
		// unreachable while handles only come from this scheduler
		return &api.NoSuchPEError{ID: h.TypeID()}
	}
	if !pool.Push(h) {
		return fmt.Errorf("release PE %s (slot %d): idle pool rejected push", h.Name(), h.Slot())
	}
	s.metrics.Inc(control.KeyReleaseTotal, 1)
	return nil
}

// ResetInterrupts normalizes interrupt state across every idle handle: for
// each type, the pool is drained, every drained handle gets its interrupt
// line enabled and any pending interrupt acknowledged, then the handles go
// back into the pool. Handles checked out during the sweep are skipped and
// left exactly as-is; the per-type skipped count is recorded for
// observability. A register failure aborts the sweep, but handles drained
// so far are restored first so none is lost.
func (s *Scheduler) ResetInterrupts() error {
	for id, pool := range s.pes {
		drained := queue.New()
		restore := func() {
			for drained.Length() > 0 {
				pool.Push(drained.Remove().(*pe.Handle))
			}
		}

		var sweepErr error
		for sweepErr == nil {
			h, st := pool.Steal()
			if st == api.StealRetry {
				continue
			}
			if st == api.StealEmpty {
				break
			}
			drained.Add(h)
			sweepErr = normalizeInterrupt(h)
		}

		n := drained.Length()
		skipped := s.counts[id] - n
		restore()
		if sweepErr != nil {
			return fmt.Errorf("interrupt sweep for PE type %d: %w", id, sweepErr)
		}
		s.metrics.Inc(control.KeySweepDrained, int64(n))
		s.metrics.Inc(control.KeySweepSkipped, int64(skipped))
		s.log.Debug().Uint32("pe_type", uint32(id)).Int("drained", n).Int("skipped", skipped).Msg("interrupt sweep")
	}
	s.metrics.Inc(control.KeySweepTotal, 1)
	return nil
}

func normalizeInterrupt(h *pe.Handle) error {
	if err := h.EnableInterrupt(); err != nil {
		return err
	}
	pending, err := h.InterruptSet()
	if err != nil {
		return err
	}
	if pending {
		return h.ResetInterrupt(true)
	}
	return nil
}
