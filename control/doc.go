// control/doc.go
// Author: momentics <momentics@gmail.com>
//
// Observability helpers for the scheduling core.
package control
