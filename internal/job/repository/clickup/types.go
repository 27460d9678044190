package clickup

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ---- Request/Response types scoped to this package ----

// flexID accepts ids encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = flexID(str)
		return nil
	}
	*f = flexID(s)
	return nil
}

// epochMillis is a ClickUp timestamp: a string or number of epoch
// milliseconds, or null. Anything else decodes as an absent timestamp.
type epochMillis struct {
	Value int64
	Valid bool
}

func (e *epochMillis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*e = epochMillis{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*e = epochMillis{}
		return nil
	}
	*e = epochMillis{Value: v, Valid: true}
	return nil
}

// Team is a ClickUp workspace.
type Team struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// Space is a ClickUp space.
type Space struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// Folder is a ClickUp folder.
type Folder struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// List is a ClickUp list.
type List struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// TaskStatus is the status block of a task.
type TaskStatus struct {
	Status string `json:"status"`
	Type   string `json:"type"` // open, custom, done, closed
}

// CustomField is a task custom field with its untyped value.
type CustomField struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Task is the ClickUp task object.
type Task struct {
	ID           flexID        `json:"id"`
	Name         string        `json:"name"`
	Status       TaskStatus    `json:"status"`
	DueDate      epochMillis   `json:"due_date"`
	CustomFields []CustomField `json:"custom_fields"`
}

type teamsResp struct {
	Teams []Team `json:"teams"`
}

type spacesResp struct {
	Spaces []Space `json:"spaces"`
}

type foldersResp struct {
	Folders []Folder `json:"folders"`
}

type listsResp struct {
	Lists []List `json:"lists"`
}

type tasksResp struct {
	Tasks    []Task `json:"tasks"`
	LastPage *bool  `json:"last_page"`
}
