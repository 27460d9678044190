package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"proxy-jobs-export/internal/model"
	"proxy-jobs-export/pkg/datemath"
)

const (
	excelDateFormat = "yyyy-mm-dd"
	defaultSheet    = "Sheet1"
)

var columnWidths = []float64{14, 48, 16, 28, 14, 14, 18}

// WriteXLSX writes a workbook with the canonical "Jobs" sheet followed by the
// by-name and by-meeting-date views.
func WriteXLSX(w io.Writer, records []model.JobRecord, opt Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetJobs); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	sheets := []struct {
		name    string
		records []model.JobRecord
	}{
		{SheetJobs, records},
		{SheetByName, ByName(records)},
		{SheetByMeeting, ByMeetingDate(records)},
	}
	for i, s := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("create sheet %q: %w", s.name, err)
			}
		}
		if err := writeSheet(f, s.name, s.records, opt, styles); err != nil {
			return fmt.Errorf("write sheet %q: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// XLSX renders the workbook into memory.
func XLSX(records []model.JobRecord, opt Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, records, opt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	header int
	date   int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("header style: %w", err)
	}
	format := excelDateFormat
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("date style: %w", err)
	}
	return sheetStyles{header: header, date: date}, nil
}

func writeSheet(f *excelize.File, sheet string, records []model.JobRecord, opt Options, styles sheetStyles) error {
	cols := Columns(opt)

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, styles.header); err != nil {
		return err
	}

	for i, r := range records {
		rowNum := i + 2
		for col, text := range Row(r, opt) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if text == "" {
				continue
			}
			if col < dateColumns {
				if err := f.SetCellStr(sheet, cell, text); err != nil {
					return err
				}
				continue
			}
			if err := setDateCell(f, sheet, cell, text, styles.date); err != nil {
				return err
			}
		}
	}

	for i := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidths[i]); err != nil {
			return err
		}
	}
	return nil
}

// setDateCell writes iso as a real date cell. Text that is not an ISO date is
// kept as a string.
func setDateCell(f *excelize.File, sheet, cell, iso string, style int) error {
	d, err := time.Parse(datemath.ISOLayout, iso)
	if err != nil {
		return f.SetCellStr(sheet, cell, iso)
	}
	if err := f.SetCellValue(sheet, cell, d); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
