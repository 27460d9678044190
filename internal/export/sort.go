package export

import (
	"sort"
	"strings"

	"proxy-jobs-export/internal/model"
)

// ByName returns a copy of records ordered by job name, then job number.
func ByName(records []model.JobRecord) []model.JobRecord {
	out := append([]model.JobRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].JobName), strings.ToLower(out[j].JobName)
		if a != b {
			return a < b
		}
		return out[i].JobNumber < out[j].JobNumber
	})
	return out
}

// ByMeetingDate returns a copy of records ordered by meeting date ascending.
// Rows without a meeting date go last and keep their relative order.
func ByMeetingDate(records []model.JobRecord) []model.JobRecord {
	out := append([]model.JobRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].MeetingDate, out[j].MeetingDate
		if (a == "") != (b == "") {
			return a != ""
		}
		return a < b
	})
	return out
}
