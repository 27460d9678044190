package clickup

import (
	"encoding/json"
	"testing"
)

func TestFieldValueFromJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absent", raw: ``, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "string", raw: `"MC1234 / S12345"`, want: "MC1234 / S12345"},
		{name: "number", raw: `2`, want: "2"},
		{name: "bool", raw: `true`, want: "true"},
		{name: "object", raw: `{"url":"https://x","name":"P99999 ballot"}`, want: "P99999 ballot https://x"},
		{name: "list of objects", raw: `[{"name":"Z00001"},"S12345"]`, want: "Z00001 S12345"},
		{name: "malformed", raw: `{"name":`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldValueFromJSON(json.RawMessage(tt.raw)).Flatten()
			if got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEpochMillisUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want epochMillis
	}{
		{raw: `"1743465600000"`, want: epochMillis{Value: 1743465600000, Valid: true}},
		{raw: `1743465600000`, want: epochMillis{Value: 1743465600000, Valid: true}},
		{raw: `null`, want: epochMillis{}},
		{raw: `""`, want: epochMillis{}},
		{raw: `"soon"`, want: epochMillis{}},
		{raw: `"1743465600000.0"`, want: epochMillis{}},
		{raw: `{"ms":1}`, want: epochMillis{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := epochMillis{Value: 7, Valid: true}
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsOpen(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{status: TaskStatus{Status: "to do", Type: "open"}, want: true},
		{status: TaskStatus{Status: "in progress", Type: "custom"}, want: true},
		{status: TaskStatus{Status: "complete", Type: "done"}, want: false},
		{status: TaskStatus{Status: "Closed", Type: "closed"}, want: false},
		{status: TaskStatus{Status: "complete"}, want: false},
		{status: TaskStatus{}, want: true},
	}

	for _, tt := range tests {
		if got := isOpen(tt.status); got != tt.want {
			t.Errorf("isOpen(%+v) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
