// File: pe/pe.go
// Author: momentics <momentics@gmail.com>
//
// One physical processing element. The handle owns no queue membership;
// the scheduler alone tracks which pool a handle currently belongs to.
// Interrupt control follows the HLS control-register layout at the base of
// the PE register window: GIER at +0x04, IER at +0x08, ISR at +0x0C.

package pe

import (
	"fmt"

	"github.com/momentics/accelsched/api"
)

// Control-register offsets within a PE window.
const (
	regControl = 0x00
	regGIER    = 0x04
	regIER     = 0x08
	regISR     = 0x0C
)

// Handle represents one compute-unit instance. The slot index is unique
// across the whole catalog and never changes.
type Handle struct {
	slot   uint
	typeID api.PEId
	offset uint64
	size   uint64
	name   string
	mem    api.DeviceMemory
	active *ActiveSet
}

// NewHandle builds a handle for the instance at slot whose register window
// is [offset, offset+size) inside mem. The window must fit the mapped
// region and be large enough to hold the control registers.
func NewHandle(slot uint, id api.PEId, offset, size uint64, name string, mem api.DeviceMemory, active *ActiveSet) (*Handle, error) {
	if mem == nil {
		return nil, fmt.Errorf("pe %s (slot %d): nil device memory", name, slot)
	}
	if active == nil {
		return nil, fmt.Errorf("pe %s (slot %d): nil active set", name, slot)
	}
	if size < regISR+4 || offset+size > mem.Size() || offset+size < offset {
		return nil, fmt.Errorf("pe %s (slot %d): register window [%#x, %#x) outside mapped region of %d bytes: %w",
			name, slot, offset, offset+size, mem.Size(), api.ErrOutOfRange)
	}
	return &Handle{
		slot:   slot,
		typeID: id,
		offset: offset,
		size:   size,
		name:   name,
		mem:    mem,
		active: active,
	}, nil
}

// Slot returns the catalog-wide slot index.
func (h *Handle) Slot() uint { return h.slot }

// TypeID returns the PE type of this instance.
func (h *Handle) TypeID() api.PEId { return h.typeID }

// Name returns the display name from the catalog.
func (h *Handle) Name() string { return h.name }

// Active reports whether the hardware currently considers this instance
// executing.
func (h *Handle) Active() bool { return h.active.Contains(h.slot) }

// ActiveSet exposes the shared set for the work-submission/completion path,
// which is the only writer of execution state.
func (h *Handle) ActiveSet() *ActiveSet { return h.active }

// EnableInterrupt turns on the instance's interrupt line (global enable plus
// the done-interrupt source).
func (h *Handle) EnableInterrupt() error {
	if err := h.mem.WriteU32(h.offset+regGIER, 1); err != nil {
		return fmt.Errorf("pe %s (slot %d): enable global interrupt: %w", h.name, h.slot, err)
	}
	if err := h.mem.WriteU32(h.offset+regIER, 1); err != nil {
		return fmt.Errorf("pe %s (slot %d): enable interrupt source: %w", h.name, h.slot, err)
	}
	return nil
}

// InterruptSet reports whether an interrupt is currently pending on this
// instance.
func (h *Handle) InterruptSet() (bool, error) {
	v, err := h.mem.ReadU32(h.offset + regISR)
	if err != nil {
		return false, fmt.Errorf("pe %s (slot %d): read interrupt status: %w", h.name, h.slot, err)
	}
	return v&1 != 0, nil
}

// ResetInterrupt acknowledges a pending interrupt when ack is true.
func (h *Handle) ResetInterrupt(ack bool) error {
	if !ack {
		return nil
	}
	if err := h.mem.WriteU32(h.offset+regISR, 1); err != nil {
		return fmt.Errorf("pe %s (slot %d): acknowledge interrupt: %w", h.name, h.slot, err)
	}
	return nil
}
