package model_test

import (
	"testing"

	"proxy-jobs-export/internal/model"
)

func TestFieldValueFlatten(t *testing.T) {
	tests := []struct {
		name  string
		value model.FieldValue
		want  string
	}{
		{name: "empty", value: model.FieldValue{}, want: ""},
		{name: "text", value: model.TextValue("MC1234"), want: "MC1234"},
		{name: "integer number", value: model.NumberValue(42), want: "42"},
		{name: "fractional number", value: model.NumberValue(1.5), want: "1.5"},
		{
			name: "structured sorted by key",
			value: model.StructuredValue(map[string]model.FieldValue{
				"name": model.TextValue("S12345"),
				"id":   model.TextValue("abc"),
				"skip": {},
			}),
			want: "abc S12345",
		},
		{
			name: "nested list",
			value: model.ListValue(
				model.TextValue("P99999"),
				model.ListValue(model.TextValue("Z00001"), model.NumberValue(7)),
			),
			want: "P99999 Z00001 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Flatten(); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobRecordBRDCode(t *testing.T) {
	r := model.JobRecord{BRDCodes: []string{"S12345", "P99999"}}
	if got := r.BRDCode(); got != "S12345, P99999" {
		t.Errorf("BRDCode() = %q", got)
	}
	if got := (model.JobRecord{}).BRDCode(); got != "" {
		t.Errorf("empty BRDCode() = %q", got)
	}
}
