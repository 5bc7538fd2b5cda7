package dbtypes

import (
	"testing"
)

func TestStringMapRoundTrip(t *testing.T) {
	in := StringMap{"conteudo": "500ml", "tom": "8.0"}

	value, err := in.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var out StringMap
	if err := out.Scan(value); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(out) != 2 || out["conteudo"] != "500ml" || out["tom"] != "8.0" {
		t.Fatalf("unexpected round trip result: %#v", out)
	}
}

func TestStringMapScanNilAndEmpty(t *testing.T) {
	var m StringMap
	if err := m.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %#v", m)
	}

	value, err := StringMap{}.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if value != "{}" {
		t.Fatalf("expected {} literal, got %v", value)
	}
}

func TestStringMapScanRejectsUnsupportedType(t *testing.T) {
	var m StringMap
	if err := m.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
