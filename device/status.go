// File: device/status.go
// Author: momentics <momentics@gmail.com>
//
// Status-descriptor parsing. The loaded bitstream publishes its PE catalog
// as a JSON status descriptor; ParseStatus turns it into the ordered
// catalog the scheduler is constructed from. Parsing is transport only:
// register windows are validated against the mapped region when handles
// are built, not here.

package device

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"

	"github.com/momentics/accelsched/api"
)

// statusDescriptor mirrors the on-device status layout. Fields beyond the
// PE list (clock info, platform components) are ignored by this core.
type statusDescriptor struct {
	PEs []api.PEDescriptor `json:"pes"`
}

// ParseStatus decodes the device status descriptor into the ordered PE
// catalog. Catalog order is significant: it assigns slot indices.
func ParseStatus(data []byte) ([]api.PEDescriptor, error) {
	var st statusDescriptor
	if err := sonnet.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse status descriptor: %w", err)
	}
	return st.PEs, nil
}
