// File: device/region_linux.go
//go:build linux
// +build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hardware register mapping via mmap on the TLKM device file.

package device

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapRegion maps size bytes of the accelerator register space starting at
// offset within the device file. The mapping is shared and writable; it must
// be released with Close.
func MapRegion(f *os.File, offset int64, size uint64) (*Region, error) {
	data, err := unix.Mmap(int(f.Fd()), offset, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap register space (%d bytes at %#x): %w", size, offset, err)
	}
	return &Region{data: data, mapped: true}, nil
}

// Close unmaps a hardware-backed region. RAM-backed regions are a no-op.
func (r *Region) Close() error {
	if !r.mapped || r.data == nil {
		r.data = nil
		return nil
	}
	data := r.data
	r.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap register space: %w", err)
	}
	return nil
}
