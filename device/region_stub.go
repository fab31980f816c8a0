// File: device/region_stub.go
//go:build !linux
// +build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-Linux fallback: hardware mapping is unsupported, RAM regions work.

package device

import (
	"errors"
	"os"
)

// ErrMmapNotSupported is returned by MapRegion on platforms without a TLKM
// device driver.
var ErrMmapNotSupported = errors.New("register-space mmap not supported on this platform")

// MapRegion is unavailable without the Linux kernel module.
func MapRegion(_ *os.File, _ int64, _ uint64) (*Region, error) {
	return nil, ErrMmapNotSupported
}

// Close releases the region's backing memory reference.
func (r *Region) Close() error {
	r.data = nil
	return nil
}
