// File: device/region.go
// Author: momentics <momentics@gmail.com>
//
// Shared view of the accelerator register space. A Region is cheaply
// shareable: every holder sees the same backing memory. Register access is
// 32-bit, aligned and atomic, so concurrent handles never tear each other's
// reads or writes.

package device

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/accelsched/api"
)

// Region implements api.DeviceMemory over a byte-addressable register space.
// The backing slice is either a hardware mmap (see MapRegion) or plain
// process memory (see NewRAMRegion).
type Region struct {
	data   []byte
	mapped bool
}

// NewRAMRegion allocates a zeroed region of the given size in process
// memory. It obeys the same access rules as a hardware mapping and is meant
// for examples and offline tooling.
func NewRAMRegion(size uint64) *Region {
	return &Region{data: make([]byte, size)}
}

// Size returns the region length in bytes.
func (r *Region) Size() uint64 { return uint64(len(r.data)) }

// ReadU32 returns the register at off.
func (r *Region) ReadU32(off uint64) (uint32, error) {
	if err := r.check(off); err != nil {
		return 0, err
	}
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&r.data[off]))), nil
}

// WriteU32 stores v into the register at off.
func (r *Region) WriteU32(off uint64, v uint32) error {
	if err := r.check(off); err != nil {
		return err
	}
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&r.data[off])), v)
	return nil
}

func (r *Region) check(off uint64) error {
	if off%4 != 0 {
		return fmt.Errorf("offset %#x not 4-byte aligned: %w", off, api.ErrOutOfRange)
	}
	if off+4 > uint64(len(r.data)) {
		return fmt.Errorf("offset %#x beyond region of %d bytes: %w", off, len(r.data), api.ErrOutOfRange)
	}
	return nil
}
