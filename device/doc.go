// File: device/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Device-facing collaborators: the memory-mapped register region of the
// accelerator and the status-descriptor parser that yields the PE catalog.
// Hardware mapping is Linux-only (build-tagged); a RAM-backed region with
// identical access rules is available on every platform for examples and
// tooling.
package device
