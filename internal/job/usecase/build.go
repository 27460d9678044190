package usecase

import (
	"context"
	"fmt"
	"strings"

	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/internal/model"
)

// Build resolves the workspace and space by name, then scans every folder of
// the space in order. Any source error aborts the build without partial output.
func (uc *implUseCase) Build(ctx context.Context, input job.BuildInput) (job.BuildOutput, error) {
	if strings.TrimSpace(input.WorkspaceName) == "" {
		input.WorkspaceName = uc.defaults.WorkspaceName
	}
	if strings.TrimSpace(input.SpaceName) == "" {
		input.SpaceName = uc.defaults.SpaceName
	}

	ws, err := uc.findWorkspace(ctx, input.WorkspaceName)
	if err != nil {
		return job.BuildOutput{}, err
	}

	space, err := uc.findSpace(ctx, ws, input.SpaceName)
	if err != nil {
		return job.BuildOutput{}, err
	}

	folders, err := uc.repo.ListFolders(ctx, space.ID)
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.Build: failed to list folders of space %s: %v", space.ID, err)
		return job.BuildOutput{}, fmt.Errorf("list folders: %w", err)
	}
	uc.l.Infof(ctx, "job.usecase.Build: scanning %d folders in %q / %q", len(folders), ws.Name, space.Name)

	now := uc.now()
	var records []model.JobRecord
	for _, f := range folders {
		rows, err := uc.buildFolder(ctx, f, now)
		if err != nil {
			return job.BuildOutput{}, err
		}
		records = append(records, rows...)
	}

	sortRecords(records)
	uc.l.Infof(ctx, "job.usecase.Build: built %d rows from %d folders", len(records), len(folders))

	return job.BuildOutput{
		Workspace:   ws,
		Space:       space,
		Records:     records,
		FolderCount: len(folders),
	}, nil
}

func (uc *implUseCase) findWorkspace(ctx context.Context, name string) (model.Workspace, error) {
	workspaces, err := uc.repo.ListWorkspaces(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.findWorkspace: %v", err)
		return model.Workspace{}, fmt.Errorf("list workspaces: %w", err)
	}
	for _, ws := range workspaces {
		if sameName(ws.Name, name) {
			return ws, nil
		}
	}
	return model.Workspace{}, fmt.Errorf("%w: %q", job.ErrWorkspaceNotFound, name)
}

func (uc *implUseCase) findSpace(ctx context.Context, ws model.Workspace, name string) (model.Space, error) {
	spaces, err := uc.repo.ListSpaces(ctx, ws.ID)
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.findSpace: %v", err)
		return model.Space{}, fmt.Errorf("list spaces: %w", err)
	}
	for _, s := range spaces {
		if sameName(s.Name, name) {
			return s, nil
		}
	}
	return model.Space{}, fmt.Errorf("%w: %q in workspace %q", job.ErrSpaceNotFound, name, ws.Name)
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
