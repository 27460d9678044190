package job

import "proxy-jobs-export/internal/model"

// BuildInput selects the workspace and space to scan. Empty names fall back to
// the configured defaults.
type BuildInput struct {
	WorkspaceName string `json:"workspace_name"`
	SpaceName     string `json:"space_name"`
}

// BuildOutput is the result of one build.
type BuildOutput struct {
	Workspace   model.Workspace
	Space       model.Space
	Records     []model.JobRecord
	FolderCount int
}
