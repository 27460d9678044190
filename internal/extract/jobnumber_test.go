package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proxy-jobs-export/internal/extract"
)

func TestParseJobTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []extract.JobID
	}{
		{
			name:  "no leading number",
			title: "  Project List Template  ",
			want:  []extract.JobID{{Number: "", Name: "Project List Template"}},
		},
		{
			name:  "empty title",
			title: "   ",
			want:  []extract.JobID{{Number: "", Name: ""}},
		},
		{
			name:  "seven leading digits is not a job number",
			title: "1234567 Fund",
			want:  []extract.JobID{{Number: "", Name: "1234567 Fund"}},
		},
		{
			name:  "single number without parens",
			title: "123456 Acme Fund",
			want:  []extract.JobID{{Number: "123456", Name: "123456 Acme Fund"}},
		},
		{
			name:  "comma numbers",
			title: "123456, 654321 (ACME) Acme Growth Fund",
			want: []extract.JobID{
				{Number: "123456", Name: "Acme Growth Fund"},
				{Number: "654321", Name: "Acme Growth Fund"},
			},
		},
		{
			name:  "dash suffix borrows base prefix",
			title: "123456-789 (ACME) Acme Trust",
			want: []extract.JobID{
				{Number: "123456", Name: "Acme Trust"},
				{Number: "123789", Name: "Acme Trust"},
			},
		},
		{
			name:  "comma and dash combined, dedup",
			title: "123456, 555555 - 456 -789 (X) Combo",
			want: []extract.JobID{
				{Number: "123456", Name: "Combo"},
				{Number: "555555", Name: "Combo"},
				{Number: "123789", Name: "Combo"},
			},
		},
		{
			name:  "four digit dash is not a suffix",
			title: "123456-2025 (A) Annual",
			want:  []extract.JobID{{Number: "123456", Name: "Annual"}},
		},
		{
			name:  "trailing counter is the last paren group",
			title: "123456 (A) (B) Fund Name (2)",
			want:  []extract.JobID{{Number: "123456", Name: ""}},
		},
		{
			name:  "name after the last of several groups",
			title: "123456 (A) (B) Fund Name",
			want:  []extract.JobID{{Number: "123456", Name: "Fund Name"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.ParseJobTitle(tt.title))
		})
	}
}

func TestParseJobTitleDashSynthesis(t *testing.T) {
	for _, suffix := range []string{"000", "001", "789", "999"} {
		ids := extract.ParseJobTitle("987654-" + suffix + " Fund")
		if assert.Len(t, ids, 2) {
			assert.Equal(t, "987"+suffix, ids[1].Number)
			assert.Equal(t, ids[0].Name, ids[1].Name)
		}
	}
}

func TestJobName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Plain Name", want: "Plain Name"},
		{title: "123456 (ABC) Fund", want: "Fund"},
		{title: "123456 (ABC) Fund (3)", want: ""},
		{title: "123456 Fund (2)", want: ""},
		{title: "123456 Fund (ABC)", want: ""},
		{title: "Fund Name (12)", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.JobName(tt.title))
		})
	}
}
