// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides test collaborators for the scheduling core.
package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/accelsched/api"
)

// isrOffset locates the interrupt-status register inside a PE window.
const isrOffset = 0x0C

// Memory is an in-RAM api.DeviceMemory that behaves like the hardware
// register file for interrupt acknowledgement: writes to a catalog entry's
// ISR are write-1-to-clear instead of plain stores, so a sweep's ack
// actually clears the pending bit.
type Memory struct {
	mu   sync.Mutex
	data []uint32
	isr  map[uint64]struct{}
}

// NewMemory builds a zeroed register file of size bytes, treating the ISR
// of every catalog entry with W1C semantics.
func NewMemory(size uint64, catalog []api.PEDescriptor) *Memory {
	m := &Memory{
		data: make([]uint32, size/4),
		isr:  make(map[uint64]struct{}, len(catalog)),
	}
	for _, desc := range catalog {
		m.isr[desc.Offset+isrOffset] = struct{}{}
	}
	return m
}

// Size returns the region length in bytes.
func (m *Memory) Size() uint64 { return uint64(len(m.data)) * 4 }

// ReadU32 returns the register at off.
func (m *Memory) ReadU32(off uint64) (uint32, error) {
	if err := m.check(off); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[off/4], nil
}

// WriteU32 stores v into the register at off, clearing instead of setting
// the written bits when off is an ISR.
func (m *Memory) WriteU32(off uint64, v uint32) error {
	if err := m.check(off); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, w1c := m.isr[off]; w1c {
		m.data[off/4] &^= v
	} else {
		m.data[off/4] = v
	}
	return nil
}

// SetPending raises the pending bit in the ISR of the given PE window.
func (m *Memory) SetPending(windowOffset uint64) {
	m.mu.Lock()
	m.data[(windowOffset+isrOffset)/4] |= 1
	m.mu.Unlock()
}

// Pending reports the pending bit in the ISR of the given PE window.
func (m *Memory) Pending(windowOffset uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[(windowOffset+isrOffset)/4]&1 != 0
}

func (m *Memory) check(off uint64) error {
	if off%4 != 0 || off+4 > m.Size() {
		return fmt.Errorf("fake memory: offset %#x invalid: %w", off, api.ErrOutOfRange)
	}
	return nil
}
