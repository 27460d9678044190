package http

import (
	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/internal/model"
	"proxy-jobs-export/pkg/gsheets"
	"proxy-jobs-export/pkg/response"
)

// --- Request DTOs ---

type buildReq struct {
	WorkspaceName string `json:"workspace_name" binding:"max=255"`
	SpaceName     string `json:"space_name"     binding:"max=255"`
}

func (r buildReq) toInput() job.BuildInput {
	return job.BuildInput{
		WorkspaceName: r.WorkspaceName,
		SpaceName:     r.SpaceName,
	}
}

// --- Response DTOs ---

type rowResp struct {
	JobNumber       string `json:"job_number"`
	JobName         string `json:"job_name"`
	MCCode          string `json:"mc_code"`
	BRDCode         string `json:"brd_code"`
	RecordDate      string `json:"record_date"`
	MeetingDate     string `json:"meeting_date"`
	AdjournmentDate string `json:"adjournment_date,omitempty"`
	FolderID        string `json:"folder_id"`
	FolderName      string `json:"folder_name"`
}

func newRowResp(r model.JobRecord, opt export.Options) rowResp {
	row := rowResp{
		JobNumber:   r.JobNumber,
		JobName:     r.JobName,
		MCCode:      r.MCCode,
		BRDCode:     r.BRDCode(),
		RecordDate:  r.RecordDate,
		MeetingDate: r.MeetingDate,
		FolderID:    r.FolderID,
		FolderName:  r.FolderName,
	}
	if opt.IncludeAdjournment {
		row.AdjournmentDate = r.AdjournmentDate
	}
	return row
}

type exportResp struct {
	ID          string            `json:"id"`
	CreatedAt   response.DateTime `json:"created_at"`
	Workspace   string            `json:"workspace"`
	Space       string            `json:"space"`
	FolderCount int               `json:"folder_count"`
	RowCount    int               `json:"row_count"`
	Columns     []string          `json:"columns"`
	Preview     []rowResp         `json:"preview"`
}

func (h *handler) newExportResp(e exportEntry) exportResp {
	records := e.Output.Records
	n := min(len(records), h.cfg.PreviewRows)
	if h.cfg.PreviewRows <= 0 {
		n = len(records)
	}

	preview := make([]rowResp, n)
	for i := 0; i < n; i++ {
		preview[i] = newRowResp(records[i], h.cfg.Export)
	}

	return exportResp{
		ID:          e.ID,
		CreatedAt:   response.DateTime(e.CreatedAt),
		Workspace:   e.Output.Workspace.Name,
		Space:       e.Output.Space.Name,
		FolderCount: e.Output.FolderCount,
		RowCount:    len(records),
		Columns:     export.Columns(h.cfg.Export),
		Preview:     preview,
	}
}

type publishResp struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	UpdatedRange  string `json:"updated_range"`
	UpdatedRows   int64  `json:"updated_rows"`
	Created       bool   `json:"created"`
}

func newPublishResp(r *gsheets.PublishResult) publishResp {
	return publishResp{
		SpreadsheetID: r.SpreadsheetID,
		UpdatedRange:  r.UpdatedRange,
		UpdatedRows:   r.UpdatedRows,
		Created:       r.Created,
	}
}
