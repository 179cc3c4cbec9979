package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/platform/obs"
	"tsp-tour-service/internal/ports"
	"tsp-tour-service/internal/tsplib"

	"github.com/dustin/go-humanize"
)

// EvaluateProblem runs each requested heuristic on p and measures the resulting tour.
// Results keep the order of heuristics.
func EvaluateProblem(
	ctx context.Context,
	p *domain.Problem,
	heuristics []domain.Heuristic,
) (_ []domain.HeuristicResult, err error) {
	defer obs.Time(ctx, "tour.Evaluate")(&err)

	if p == nil {
		return nil, fmt.Errorf("evaluate problem: %w", errNilProblem)
	}

	results := make([]domain.HeuristicResult, 0, len(heuristics))
	for _, h := range heuristics {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluate problem %q: %w", p.Name, err)
		}

		tour, err := BuildTour(p, h)
		if err != nil {
			return nil, fmt.Errorf("evaluate problem %q: %s: %w", p.Name, h, err)
		}

		if err := checkTour(p, tour); err != nil {
			return nil, fmt.Errorf("evaluate problem %q: %s: %w", p.Name, h, err)
		}

		length, err := TourLength(p, tour)
		if err != nil {
			return nil, fmt.Errorf("evaluate problem %q: %s: %w", p.Name, h, err)
		}

		results = append(results, domain.HeuristicResult{
			Heuristic: h,
			Tour:      tour,
			Length:    length,
		})
	}

	return results, nil
}

// EvaluateFile parses one problem file and evaluates it.
// Failures are recorded on the returned Evaluation rather than returned.
func EvaluateFile(ctx context.Context, f ports.ProblemFile, heuristics []domain.Heuristic) domain.Evaluation {
	ctx = obs.WithFile(ctx, f.Path)
	eval := domain.Evaluation{Path: f.Path}

	p, err := parseProblem(ctx, f)
	if err != nil {
		eval.Err = err
		return eval
	}

	results, err := EvaluateProblem(ctx, p, heuristics)
	if err != nil {
		eval.Err = err
		return eval
	}

	eval.Problem = p
	eval.Results = results
	return eval
}

func parseProblem(ctx context.Context, f ports.ProblemFile) (_ *domain.Problem, err error) {
	defer obs.Time(ctx, "tsplib.Parse")(&err)

	p, err := tsplib.Parse(bytes.NewReader(f.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", f.Path, err)
	}

	log.Printf(
		"file=%s parsed name=%q type=%s cities=%d size=%s",
		f.Path, p.Name, p.CoordinateSystem, p.Dimension, humanize.Bytes(uint64(len(f.Body))),
	)
	return p, nil
}
