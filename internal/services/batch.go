package services

import (
	"context"
	"fmt"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/ports"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

type BatchOptions struct {
	Heuristics []domain.Heuristic
	Workers    int
}

// ProcessBatch evaluates every file with bounded parallelism.
//
// Problems are independent and never shared between goroutines, so files
// may finish in any order; the returned slice follows the input order.
// A failing file only sets its own Evaluation.Err.
func ProcessBatch(ctx context.Context, files []ports.ProblemFile, opts BatchOptions) []domain.Evaluation {
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	evals := make([]domain.Evaluation, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		// Stop scheduling once the caller gives up; report the rest as cancelled.
		if err := gctx.Err(); err != nil {
			evals[i] = domain.Evaluation{Path: f.Path, Err: fmt.Errorf("process batch: %w", err)}
			continue
		}

		g.Go(func() error {
			evals[i] = EvaluateFile(gctx, f, opts.Heuristics)
			return nil
		})
	}

	_ = g.Wait()
	return evals
}

// Summarize aggregates tour lengths per heuristic over the successful evaluations.
// Heuristics that produced no results are omitted.
func Summarize(evals []domain.Evaluation) ([]domain.HeuristicSummary, error) {
	byHeuristic := make(map[domain.Heuristic][]float64)
	for _, e := range evals {
		if e.Err != nil {
			continue
		}
		for _, r := range e.Results {
			byHeuristic[r.Heuristic] = append(byHeuristic[r.Heuristic], float64(r.Length))
		}
	}

	out := make([]domain.HeuristicSummary, 0, len(byHeuristic))
	for _, h := range domain.AllHeuristics {
		data := byHeuristic[h]
		if len(data) == 0 {
			continue
		}

		s, err := summarize(h, data)
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", h, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func summarize(h domain.Heuristic, data stats.Float64Data) (domain.HeuristicSummary, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return domain.HeuristicSummary{}, fmt.Errorf("mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return domain.HeuristicSummary{}, fmt.Errorf("median: %w", err)
	}
	lo, err := stats.Min(data)
	if err != nil {
		return domain.HeuristicSummary{}, fmt.Errorf("min: %w", err)
	}
	hi, err := stats.Max(data)
	if err != nil {
		return domain.HeuristicSummary{}, fmt.Errorf("max: %w", err)
	}

	return domain.HeuristicSummary{
		Heuristic: h,
		Files:     len(data),
		Mean:      mean,
		Median:    median,
		Min:       lo,
		Max:       hi,
	}, nil
}
