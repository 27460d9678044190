package usecase

import (
	"context"
	"fmt"
	"time"

	"proxy-jobs-export/internal/extract"
	"proxy-jobs-export/internal/job/repository"
	"proxy-jobs-export/internal/model"
)

// folderMeta accumulates codes and date candidates over one folder scan.
type folderMeta struct {
	codes      extract.Codes
	candidates map[extract.Kind][]extract.DateCandidate
}

func (m folderMeta) observe(text string) folderMeta {
	m.codes = m.codes.Observe(text)
	return m
}

func (m folderMeta) offer(kind extract.Kind, c extract.DateCandidate) folderMeta {
	if m.candidates == nil {
		m.candidates = make(map[extract.Kind][]extract.DateCandidate)
	}
	m.candidates[kind] = append(m.candidates[kind], c)
	return m
}

// buildFolder scans one folder and emits a record per job number.
func (uc *implUseCase) buildFolder(ctx context.Context, f model.Folder, now time.Time) ([]model.JobRecord, error) {
	ids := extract.ParseJobTitle(f.Name)

	meta, err := uc.scanFolder(ctx, f, folderMeta{})
	if err != nil {
		return nil, err
	}

	dates := make(map[extract.Kind]string, len(extract.Kinds()))
	for _, k := range extract.Kinds() {
		dates[k] = uc.selector.Select(meta.candidates[k], now)
	}

	rows := make([]model.JobRecord, 0, len(ids))
	for _, id := range ids {
		if uc.skipped(id.Name) {
			uc.l.Debugf(ctx, "job.usecase.buildFolder: skipping folder %s (%q)", f.ID, f.Name)
			continue
		}
		rows = append(rows, model.JobRecord{
			JobNumber:       id.Number,
			JobName:         id.Name,
			MCCode:          meta.codes.MC,
			BRDCodes:        append([]string(nil), meta.codes.BRD...),
			RecordDate:      dates[extract.KindRecord],
			MeetingDate:     dates[extract.KindMeeting],
			AdjournmentDate: dates[extract.KindAdjournment],
			FolderID:        f.ID,
			FolderName:      f.Name,
		})
	}
	uc.l.Infof(ctx, "job.usecase.buildFolder: folder %s (%q) produced %d rows", f.ID, f.Name, len(rows))
	return rows, nil
}

// scanFolder folds list names first, then every task of every list, into meta.
func (uc *implUseCase) scanFolder(ctx context.Context, f model.Folder, meta folderMeta) (folderMeta, error) {
	lists, err := uc.repo.ListLists(ctx, f.ID)
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.scanFolder: failed to list lists of folder %s: %v", f.ID, err)
		return meta, fmt.Errorf("list lists of folder %s: %w", f.ID, err)
	}

	for _, l := range lists {
		meta = meta.observe(l.Name)
	}

	for _, l := range lists {
		tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
			ListID:          l.ID,
			IncludeClosed:   true,
			IncludeSubtasks: true,
		})
		if err != nil {
			return meta, fmt.Errorf("list tasks of list %s: %w", l.ID, err)
		}
		for _, t := range tasks {
			meta = uc.scanTask(t, meta)
		}
	}
	return meta, nil
}

// scanTask folds the task name, its labelled due date and its custom fields.
func (uc *implUseCase) scanTask(t model.Task, meta folderMeta) folderMeta {
	meta = meta.observe(t.Name)

	if t.DueDate != nil {
		date := uc.dateMath.FromEpochMillis(*t.DueDate)
		for _, k := range uc.matcher.Kinds(t.Name) {
			meta = meta.offer(k, extract.DateCandidate{Date: date, Open: t.Open})
		}
	}

	for _, cf := range t.CustomFields {
		meta = meta.observe(cf.Value.Flatten())
	}
	return meta
}
