package export

import "proxy-jobs-export/internal/model"

// Column headers of the export, in order.
const (
	ColJobNumber       = "Job Number"
	ColJobName         = "Job Name"
	ColMCCode          = "Broadridge MC"
	ColBRDCode         = "BRD S or P Job Number"
	ColRecordDate      = "Record Date"
	ColMeetingDate     = "Meeting Date"
	ColAdjournmentDate = "Adjournment Date"
)

// Default file and sheet names.
const (
	DefaultFileName = "ACTIVE_Proxy_Jobs"
	SheetJobs       = "Jobs"
	SheetByName     = "By Name"
	SheetByMeeting  = "By Meeting Date"
)

// Options controls the column schema.
type Options struct {
	IncludeAdjournment bool
}

// Columns returns the header row.
func Columns(opt Options) []string {
	cols := []string{ColJobNumber, ColJobName, ColMCCode, ColBRDCode, ColRecordDate, ColMeetingDate}
	if opt.IncludeAdjournment {
		cols = append(cols, ColAdjournmentDate)
	}
	return cols
}

// dateColumns is the index of the first date column.
const dateColumns = 4

// Row renders one record as cell text. Dates stay in YYYY-MM-DD form and
// missing values are empty.
func Row(r model.JobRecord, opt Options) []string {
	row := []string{r.JobNumber, r.JobName, r.MCCode, r.BRDCode(), r.RecordDate, r.MeetingDate}
	if opt.IncludeAdjournment {
		row = append(row, r.AdjournmentDate)
	}
	return row
}

// Table renders the header followed by one row per record.
func Table(records []model.JobRecord, opt Options) [][]string {
	table := make([][]string, 0, len(records)+1)
	table = append(table, Columns(opt))
	for _, r := range records {
		table = append(table, Row(r, opt))
	}
	return table
}
