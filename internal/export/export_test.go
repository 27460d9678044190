package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/internal/model"
)

func sampleRecords() []model.JobRecord {
	return []model.JobRecord{
		{JobNumber: "100200", JobName: "zeta Fund", MeetingDate: "2025-06-01"},
		{
			JobNumber:       "123456",
			JobName:         "Acme Growth Fund",
			MCCode:          "MC1234",
			BRDCodes:        []string{"S12345", "P99999"},
			RecordDate:      "2025-04-01",
			MeetingDate:     "2025-05-10",
			AdjournmentDate: "2025-05-24",
		},
		{JobNumber: "", JobName: "Misc Folder"},
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{
		"Job Number", "Job Name", "Broadridge MC", "BRD S or P Job Number", "Record Date", "Meeting Date",
	}, export.Columns(export.Options{}))

	withAdj := export.Columns(export.Options{IncludeAdjournment: true})
	assert.Len(t, withAdj, 7)
	assert.Equal(t, "Adjournment Date", withAdj[6])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleRecords(), export.Options{IncludeAdjournment: true}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Job Number", "Job Name", "Broadridge MC", "BRD S or P Job Number", "Record Date", "Meeting Date", "Adjournment Date"},
		{"100200", "zeta Fund", "", "", "", "2025-06-01", ""},
		{"123456", "Acme Growth Fund", "MC1234", "S12345, P99999", "2025-04-01", "2025-05-10", "2025-05-24"},
		{"", "Misc Folder", "", "", "", "", ""},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestSortViews(t *testing.T) {
	records := sampleRecords()

	byName := export.ByName(records)
	assert.Equal(t, []string{"Acme Growth Fund", "Misc Folder", "zeta Fund"},
		[]string{byName[0].JobName, byName[1].JobName, byName[2].JobName})

	byMeeting := export.ByMeetingDate(records)
	assert.Equal(t, []string{"2025-05-10", "2025-06-01", ""},
		[]string{byMeeting[0].MeetingDate, byMeeting[1].MeetingDate, byMeeting[2].MeetingDate})

	// The input order is left untouched.
	assert.Equal(t, "100200", records[0].JobNumber)
}

func TestXLSX(t *testing.T) {
	data, err := export.XLSX(sampleRecords(), export.Options{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Jobs", "By Name", "By Meeting Date"}, f.GetSheetList())

	header, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, header, 4)
	assert.Equal(t, export.Columns(export.Options{}), header[0])

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "123456", cell("Jobs", "A3"))
	assert.Equal(t, "S12345, P99999", cell("Jobs", "D3"))
	// Dates are stored as serial day numbers.
	assert.Equal(t, "45748", cell("Jobs", "E3"))
	assert.Equal(t, "45787", cell("Jobs", "F3"))
	assert.Equal(t, "", cell("Jobs", "E2"))
	assert.Equal(t, "", cell("Jobs", "A4"))

	assert.Equal(t, "Acme Growth Fund", cell("By Name", "B2"))
	assert.Equal(t, "123456", cell("By Meeting Date", "A2"))
	assert.Equal(t, "Misc Folder", cell("By Meeting Date", "B4"))
}
