// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package device

import "testing"

func TestParseStatus(t *testing.T) {
	data := []byte(`{
		"pes": [
			{"id": 1, "offset": 0, "size": 65536, "name": "arrayinit"},
			{"id": 1, "offset": 65536, "size": 65536, "name": "arrayinit"},
			{"id": 3, "offset": 131072, "size": 65536, "name": "warraw"}
		]
	}`)

	catalog, err := ParseStatus(data)
	if err != nil {
		t.Fatalf("ParseStatus failed: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("Expected 3 catalog entries, got %d", len(catalog))
	}
	if catalog[0].ID != 1 || catalog[0].Offset != 0 || catalog[0].Name != "arrayinit" {
		t.Errorf("Unexpected first entry: %+v", catalog[0])
	}
	if catalog[2].ID != 3 || catalog[2].Offset != 131072 || catalog[2].Size != 65536 {
		t.Errorf("Unexpected third entry: %+v", catalog[2])
	}
}

func TestParseStatus_Malformed(t *testing.T) {
	if _, err := ParseStatus([]byte(`{"pes": [`)); err == nil {
		t.Errorf("Expected error for truncated descriptor")
	}
}

func TestParseStatus_EmptyCatalog(t *testing.T) {
	catalog, err := ParseStatus([]byte(`{"pes": []}`))
	if err != nil {
		t.Fatalf("ParseStatus failed: %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog, got %d entries", len(catalog))
	}
}
