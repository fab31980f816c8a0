// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Identifier and catalog types for processing elements.

package api

// PEId identifies a PE type (one accelerator function), not a specific
// instance. A loaded bitstream may carry many instances of the same PEId.
type PEId uint32

// PEDescriptor is one entry of the device status catalog. The slot index of
// an instance is its position in the catalog slice and is not repeated here.
type PEDescriptor struct {
	ID     PEId   `json:"id"`
	Offset uint64 `json:"offset"`
	Size   uint64 `json:"size"`
	Name   string `json:"name"`
}

// Steal reports the outcome of a single removal attempt on an idle pool.
type Steal int

const (
	// StealSuccess means one element was removed and ownership transferred.
	StealSuccess Steal = iota

	// StealEmpty means no element was observable at the time of the attempt.
	StealEmpty

	// StealRetry means a concurrent remover interfered; the attempt can be
	// repeated immediately.
	StealRetry
)

// String returns a short label for logging.
func (s Steal) String() string {
	switch s {
	case StealSuccess:
		return "success"
	case StealEmpty:
		return "empty"
	case StealRetry:
		return "retry"
	default:
		return "unknown"
	}
}
