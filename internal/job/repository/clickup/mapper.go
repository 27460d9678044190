package clickup

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"proxy-jobs-export/internal/model"
)

// closedStatusTypes are the status types ClickUp uses for finished tasks.
var closedStatusTypes = map[string]bool{
	"closed": true,
	"done":   true,
}

func toTask(t Task) model.Task {
	out := model.Task{
		ID:   string(t.ID),
		Name: t.Name,
		Open: isOpen(t.Status),
	}
	if t.DueDate.Valid {
		due := t.DueDate.Value
		out.DueDate = &due
	}
	for _, cf := range t.CustomFields {
		out.CustomFields = append(out.CustomFields, model.CustomField{
			Name:  cf.Name,
			Value: fieldValueFromJSON(cf.Value),
		})
	}
	return out
}

func isOpen(s TaskStatus) bool {
	typ := strings.ToLower(strings.TrimSpace(s.Type))
	if typ != "" {
		return !closedStatusTypes[typ]
	}
	status := strings.ToLower(strings.TrimSpace(s.Status))
	return !closedStatusTypes[status] && status != "complete"
}

// fieldValueFromJSON converts a raw custom field value into the tagged union.
// Malformed JSON yields an empty value.
func fieldValueFromJSON(raw json.RawMessage) model.FieldValue {
	if len(bytes.TrimSpace(raw)) == 0 {
		return model.FieldValue{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return model.FieldValue{}
	}
	return toFieldValue(v)
}

func toFieldValue(v any) model.FieldValue {
	switch val := v.(type) {
	case nil:
		return model.FieldValue{}
	case string:
		return model.TextValue(val)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return model.NumberValue(f)
		}
		return model.TextValue(val.String())
	case bool:
		return model.TextValue(strconv.FormatBool(val))
	case map[string]any:
		fields := make(map[string]model.FieldValue, len(val))
		for k, item := range val {
			fields[k] = toFieldValue(item)
		}
		return model.StructuredValue(fields)
	case []any:
		items := make([]model.FieldValue, 0, len(val))
		for _, item := range val {
			items = append(items, toFieldValue(item))
		}
		return model.ListValue(items...)
	default:
		return model.FieldValue{}
	}
}
