package ports

import "context"

// A ProblemRepository that can also be loaded with problem files.
type ProblemStore interface {
	ProblemRepository
	// Insert or replace problem files keyed by path.
	SaveProblems(ctx context.Context, files []ProblemFile) error
}
