package repository

import (
	"context"

	"proxy-jobs-export/internal/model"
)

// Source is read access to the task-tracking hierarchy:
// workspace → space → folder → list → task.
type Source interface {
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	ListSpaces(ctx context.Context, workspaceID string) ([]model.Space, error)
	ListFolders(ctx context.Context, spaceID string) ([]model.Folder, error)
	ListLists(ctx context.Context, folderID string) ([]model.List, error)
	// ListTasks returns every task of a list, fetching all pages.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
