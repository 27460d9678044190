package model

import "strings"

// JobRecord is one output row.
type JobRecord struct {
	JobNumber       string
	JobName         string
	MCCode          string
	BRDCodes        []string
	RecordDate      string // YYYY-MM-DD or empty
	MeetingDate     string
	AdjournmentDate string

	FolderID   string
	FolderName string
}

// BRDCode renders the family B codes as a single cell value.
func (r JobRecord) BRDCode() string {
	return strings.Join(r.BRDCodes, ", ")
}
