// File: scheduler/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free checkout/check-in scheduling of processing elements. One idle
// pool per PE type, multi-producer/multi-consumer, no lock on the hot
// acquire/release path. The type-to-pool mapping is immutable after
// construction; pools alone carry the mutable state.
package scheduler
