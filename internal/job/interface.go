package job

import "context"

// UseCase defines the business logic interface for the job export domain.
type UseCase interface {
	// Build walks the configured workspace and space and folds every folder
	// into sorted job records.
	Build(ctx context.Context, input BuildInput) (BuildOutput, error)
}
