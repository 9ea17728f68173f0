package restapi

import (
	"strings"
	"testing"

	"github.com/five82/roster/internal/employee"
)

func TestDecodeRecords_BareArrayWithShortKeys(t *testing.T) {
	records, err := decodeRecords([]byte(`[{"id":3,"name":"Cy","salary":3000.5,"age":25}]`))
	if err != nil {
		t.Fatalf("decodeRecords returned error: %v", err)
	}
	want := employee.Record{ID: 3, Name: "Cy", Salary: 3000.5, Age: 25}
	if len(records) != 1 || records[0] != want {
		t.Fatalf("records = %#v, want %#v", records, want)
	}
}

func TestDecodeRecords_EmptyList(t *testing.T) {
	records, err := decodeRecords([]byte(`{"data":[]}`))
	if err != nil {
		t.Fatalf("decodeRecords returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %#v, want empty", records)
	}
}

func TestDecodeRecords_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid", `{"data":`, "invalid json"},
		{"no list", `{"status":"error"}`, "no record list"},
		{"scalar item", `[1]`, "record 0: not an object"},
		{"missing id", `[{"id":1},{"name":"x"}]`, "record 1: missing id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRecords([]byte(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("decodeRecords error = %v, want %q", err, tt.want)
			}
		})
	}
}
