package job

import "errors"

// Domain-specific errors for the job package.
var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrSpaceNotFound     = errors.New("space not found")
)
