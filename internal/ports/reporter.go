package ports

import "tsp-tour-service/internal/domain"

// Contract for presenting evaluation results to the user.
type Reporter interface {
	// Render per-file results followed by an optional batch summary.
	Report(evals []domain.Evaluation, summary []domain.HeuristicSummary) error
}
