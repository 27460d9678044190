package gsheets

// PublishRequest is the input for publishing a table to one sheet tab.
type PublishRequest struct {
	SpreadsheetID string
	SheetName     string     // created when missing
	Rows          [][]string // header first
}

// PublishResult describes what was written.
type PublishResult struct {
	SpreadsheetID string
	UpdatedRange  string
	UpdatedRows   int64
	Created       bool // the sheet tab did not exist before
}
