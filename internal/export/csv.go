package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"proxy-jobs-export/internal/model"
)

// WriteCSV writes the header and one line per record, in the given order.
func WriteCSV(w io.Writer, records []model.JobRecord, opt Options) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Table(records, opt)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
