// File: api/interfaces.go
// Author: momentics <momentics@gmail.com>
//
// Abstractions over the accelerator's memory-mapped register space.
// Handles never touch raw bytes; all register traffic goes through
// DeviceMemory so hardware regions and test register files are
// interchangeable.

package api

// DeviceMemory is a shared view of the accelerator register space.
// Implementations must support concurrent 32-bit access from multiple
// goroutines; offsets are in bytes from the start of the region and must
// be 4-byte aligned.
type DeviceMemory interface {
	// ReadU32 returns the register at off.
	ReadU32(off uint64) (uint32, error)

	// WriteU32 stores v into the register at off.
	WriteU32(off uint64, v uint32) error

	// Size returns the mapped region length in bytes.
	Size() uint64
}
