package model

import (
	"sort"
	"strconv"
	"strings"
)

// FieldKind tags the variant held by a FieldValue.
type FieldKind int

const (
	FieldEmpty FieldKind = iota
	FieldText
	FieldNumber
	FieldStructured
	FieldList
)

// FieldValue is a tagged union over the shapes a custom field value can take.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	Number float64
	Fields map[string]FieldValue
	Items  []FieldValue
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: FieldText, Text: s}
}

func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: FieldNumber, Number: n}
}

func ListValue(items ...FieldValue) FieldValue {
	return FieldValue{Kind: FieldList, Items: items}
}

func StructuredValue(fields map[string]FieldValue) FieldValue {
	return FieldValue{Kind: FieldStructured, Fields: fields}
}

// Flatten renders the value as searchable text. Structured keys are visited in
// sorted order so the result is stable across runs.
func (v FieldValue) Flatten() string {
	switch v.Kind {
	case FieldText:
		return v.Text
	case FieldNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case FieldStructured:
		keys := make([]string, 0, len(v.Fields))
		for k := range v.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := v.Fields[k].Flatten(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case FieldList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if s := item.Flatten(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
