package usecase_test

import (
	"context"
	"fmt"

	"proxy-jobs-export/internal/job/repository"
	"proxy-jobs-export/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// infoRecorder keeps every Infof line.
type infoRecorder struct {
	mockLogger
	lines []string
}

func (r *infoRecorder) Infof(ctx context.Context, template string, arg ...any) {
	r.lines = append(r.lines, fmt.Sprintf(template, arg...))
}

// fakeSource serves a fixed hierarchy from memory.
type fakeSource struct {
	workspaces []model.Workspace
	spaces     map[string][]model.Space
	folders    map[string][]model.Folder
	lists      map[string][]model.List
	tasks      map[string][]model.Task

	tasksErr  error
	taskCalls []repository.ListTasksOptions
}

func (f *fakeSource) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return f.workspaces, nil
}

func (f *fakeSource) ListSpaces(ctx context.Context, workspaceID string) ([]model.Space, error) {
	return f.spaces[workspaceID], nil
}

func (f *fakeSource) ListFolders(ctx context.Context, spaceID string) ([]model.Folder, error) {
	return f.folders[spaceID], nil
}

func (f *fakeSource) ListLists(ctx context.Context, folderID string) ([]model.List, error) {
	return f.lists[folderID], nil
}

func (f *fakeSource) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	f.taskCalls = append(f.taskCalls, opt)
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.tasks[opt.ListID], nil
}

func due(ms int64) *int64 {
	return &ms
}

// Epoch milliseconds at 16:00 UTC, which is the same calendar day in New York.
const (
	dec15_2024 int64 = 1734278400000
	feb20_2025 int64 = 1740067200000
	mar01_2025 int64 = 1740844800000
	apr01_2025 int64 = 1743523200000
	may10_2025 int64 = 1746892800000
	jun01_2025 int64 = 1748793600000
)

func newFixtureSource() *fakeSource {
	return &fakeSource{
		workspaces: []model.Workspace{
			{ID: "1", Name: "Other Workspace"},
			{ID: "9", Name: " fund solution workspace "},
		},
		spaces: map[string][]model.Space{
			"9": {{ID: "77", Name: "ACTIVE Proxy Efforts"}},
		},
		folders: map[string][]model.Folder{
			"77": {
				{ID: "f1", Name: "123456, 123457-789 (ACME) Acme Growth Fund"},
				{ID: "f2", Name: "Project List Template"},
				{ID: "f3", Name: "Misc Folder"},
				{ID: "f4", Name: "100200 (X) Beta Fund (2)"},
			},
		},
		lists: map[string][]model.List{
			"f1": {{ID: "l1", Name: "Timeline MC1234"}, {ID: "l2", Name: "Docs"}},
			"f3": {{ID: "l3", Name: "Meeting"}},
		},
		tasks: map[string][]model.Task{
			"l1": {
				{ID: "t1", Name: "Record Date", DueDate: due(apr01_2025), Open: true},
				{ID: "t2", Name: "RECORD DATE", DueDate: due(dec15_2024), Open: false},
				{ID: "t3", Name: "Meeting Date: TBD", DueDate: due(jun01_2025), Open: false},
				{ID: "t4", Name: "Meeting Date", DueDate: due(may10_2025), Open: true},
				{ID: "t5", Name: "Record Date Range", DueDate: due(mar01_2025), Open: true},
				{ID: "t6", Name: "Mail S12345 and p99999"},
			},
			"l2": {
				{ID: "t7", Name: "Upload docs", CustomFields: []model.CustomField{
					{Name: "Codes", Value: model.TextValue("s12345 Z00001 MC9999")},
				}},
			},
			"l3": {
				{ID: "t8", Name: "Meeting Adjourned Date", DueDate: due(feb20_2025), Open: true},
			},
		},
	}
}
