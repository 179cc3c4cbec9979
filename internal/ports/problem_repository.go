package ports

import "context"

// Raw TSPLIB text together with where it came from.
type ProblemFile struct {
	Path string
	Body []byte
}

// Port: a boundary for retrieving problem files from a data source.
type ProblemRepository interface {
	// Retrieve all problem files available for evaluation.
	ListProblems(ctx context.Context) ([]ProblemFile, error)
}
