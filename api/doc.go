// File: api/doc.go
// Author: momentics <momentics@gmail.com>
//
// Public contract surface of accelsched: identifier and catalog types,
// the device-memory abstraction handles operate on, the steal protocol
// spoken by idle pools, and the scheduler error taxonomy.
//
// Nothing in this package performs I/O; it only defines the vocabulary
// shared by device, pe and scheduler.
package api
