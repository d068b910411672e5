package models

import (
	"reflect"
	"testing"
)

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["Mon","Wed"]`)); err != nil {
		t.Fatalf("scan bytes failed: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"Mon", "Wed"}) {
		t.Fatalf("unexpected value %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("nil column should scan to an empty list, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Fatal("scan should reject non-string values")
	}
}

func TestStringListValueNeverNull(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Fatalf("nil list should serialize as [], got %s", v)
	}
}
