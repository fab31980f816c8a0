// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy of the scheduling core. All errors here are recoverable:
// they are reported to the caller and never terminate the process. Typed
// errors carry the offending identifiers; sentinel values allow matching
// with errors.Is without unpacking.

package api

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching.
var (
	// ErrNoSuchPE indicates a PE type absent from the catalog-derived mapping.
	ErrNoSuchPE = errors.New("PE type is unknown")

	// ErrPEStillActive indicates a release of a handle the hardware still
	// reports as executing.
	ErrPEStillActive = errors.New("PE is still active")

	// ErrPEUnavailable indicates no idle instance of a known type at probe time.
	ErrPEUnavailable = errors.New("PE type unavailable")

	// ErrCancelled indicates an acquisition abandoned via its context.
	ErrCancelled = errors.New("PE acquisition cancelled")

	// ErrOutOfRange indicates a register access outside the mapped region
	// or at a misaligned offset.
	ErrOutOfRange = errors.New("register access out of range")
)

// NoSuchPEError reports a PE type that was never present in the catalog.
type NoSuchPEError struct {
	ID PEId
}

func (e *NoSuchPEError) Error() string {
	return fmt.Sprintf("PE Type %d is unknown.", e.ID)
}

func (e *NoSuchPEError) Is(target error) bool { return target == ErrNoSuchPE }

// PEStillActiveError reports a release attempted while the instance is
// executing. This is a caller protocol violation, not a transient condition.
type PEStillActiveError struct {
	Slot uint
	Name string
}

func (e *PEStillActiveError) Error() string {
	return fmt.Sprintf("PE %s (slot %d) is still active. Can't release it.", e.Name, e.Slot)
}

func (e *PEStillActiveError) Is(target error) bool { return target == ErrPEStillActive }

// PEUnavailableError reports that a known type had no idle instance when a
// non-blocking probe ran.
type PEUnavailableError struct {
	ID PEId
}

func (e *PEUnavailableError) Error() string {
	return fmt.Sprintf("PE Type %d unavailable.", e.ID)
}

func (e *PEUnavailableError) Is(target error) bool { return target == ErrPEUnavailable }
