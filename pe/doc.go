// File: pe/doc.go
// Author: momentics <momentics@gmail.com>
//
// Processing-element handles and the shared active-set. A Handle wraps one
// physical compute-unit instance: its register window inside the device
// mapping and its interrupt line. The ActiveSet records which slots the
// hardware currently considers executing and serializes access to the
// completion-notification stream.
//
// A handle is a move-only resource. After construction it lives in exactly
// one place: an idle pool inside the scheduler, or the hands of one caller.
package pe
