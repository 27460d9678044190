package clickup

import (
	"context"

	"proxy-jobs-export/internal/job/repository"
	"proxy-jobs-export/internal/model"
	pkgLog "proxy-jobs-export/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a ClickUp-backed task source.
func New(client *Client, l pkgLog.Logger) repository.Source {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	teams, err := r.client.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Workspace, 0, len(teams))
	for _, t := range teams {
		out = append(out, model.Workspace{ID: string(t.ID), Name: t.Name})
	}
	return out, nil
}

func (r *implRepository) ListSpaces(ctx context.Context, workspaceID string) ([]model.Space, error) {
	spaces, err := r.client.ListSpaces(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Space, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, model.Space{ID: string(s.ID), Name: s.Name})
	}
	return out, nil
}

func (r *implRepository) ListFolders(ctx context.Context, spaceID string) ([]model.Folder, error) {
	folders, err := r.client.ListFolders(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Folder, 0, len(folders))
	for _, f := range folders {
		out = append(out, model.Folder{ID: string(f.ID), Name: f.Name})
	}
	return out, nil
}

func (r *implRepository) ListLists(ctx context.Context, folderID string) ([]model.List, error) {
	lists, err := r.client.ListLists(ctx, folderID)
	if err != nil {
		return nil, err
	}
	out := make([]model.List, 0, len(lists))
	for _, l := range lists {
		out = append(out, model.List{ID: string(l.ID), Name: l.Name})
	}
	return out, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := r.client.ListAllTasks(ctx, opt.ListID, opt.IncludeClosed, opt.IncludeSubtasks)
	if err != nil {
		r.l.Errorf(ctx, "clickup repository: failed to list tasks of list %s: %v", opt.ListID, err)
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTask(t))
	}
	r.l.Debugf(ctx, "clickup repository: list %s returned %d tasks", opt.ListID, len(out))
	return out, nil
}
