// File: pe/activeset.go
// Author: momentics <momentics@gmail.com>
//
// Shared record of executing slots plus the serialized completion stream.
// One ActiveSet is shared by every handle of a catalog. Membership is
// mutated by the work-submission/completion path; the scheduler only reads
// it through Handle.Active. The completion lock is never held across an
// idle-pool operation, so there is no lock-ordering cycle with the pools.

package pe

import (
	"os"
	"sync"
)

// ActiveSet tracks which slot indices are currently executing and owns the
// completion-notification handle. Safe for concurrent use.
type ActiveSet struct {
	running sync.Map // slot (uint) -> struct{}

	mu         sync.Mutex
	completion *os.File
}

// NewActiveSet wraps a completion-notification handle. completion may be nil
// when no notification transport is attached (offline tooling, tests).
func NewActiveSet(completion *os.File) *ActiveSet {
	return &ActiveSet{completion: completion}
}

// Mark records slot as executing.
func (s *ActiveSet) Mark(slot uint) {
	s.running.Store(slot, struct{}{})
}

// Unmark records slot as no longer executing.
func (s *ActiveSet) Unmark(slot uint) {
	s.running.Delete(slot)
}

// Contains reports whether slot is currently executing.
func (s *ActiveSet) Contains(slot uint) bool {
	_, ok := s.running.Load(slot)
	return ok
}

// WithCompletion runs fn with exclusive access to the completion handle.
// The underlying stream supports only one reader/writer sequence at a time,
// so all traffic must go through here.
func (s *ActiveSet) WithCompletion(fn func(*os.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.completion)
}
