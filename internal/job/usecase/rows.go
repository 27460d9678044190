package usecase

import (
	"sort"
	"strings"

	"proxy-jobs-export/internal/model"
)

func (uc *implUseCase) skipped(jobName string) bool {
	return uc.skip[strings.ToUpper(strings.TrimSpace(jobName))]
}

// sortRecords orders rows by job number then job name. Rows without a job
// number go last.
func sortRecords(records []model.JobRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if (a.JobNumber == "") != (b.JobNumber == "") {
			return a.JobNumber != ""
		}
		if a.JobNumber != b.JobNumber {
			return a.JobNumber < b.JobNumber
		}
		return a.JobName < b.JobName
	})
}
