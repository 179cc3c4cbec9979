package services

import (
	"errors"
	"fmt"
	"tsp-tour-service/internal/domain"
)

// Cities are numbered from 1; every greedy tour starts here.
const startCity = 1

var (
	errNilProblem  = errors.New("problem must be non-nil")
	errInvalidTour = errors.New("invalid tour")
)

// InOrderPath returns the open path [1, 2, ..., n].
func InOrderPath(p *domain.Problem) domain.Tour {
	path := make(domain.Tour, 0, p.Dimension+1)
	for c := 1; c <= p.Dimension; c++ {
		path = append(path, c)
	}
	return path
}

// InOrderTour returns [1, 2, ..., n, 1].
func InOrderTour(p *domain.Problem) domain.Tour {
	return closeTour(InOrderPath(p))
}

// Build a tour using a greedy nearest-neighbor algorithm.
//
// Starting at city 1, the closest unvisited city is visited next.
// Ties go to the lowest city number. No improvement pass is made.
func NearestNeighborTour(p *domain.Problem) (domain.Tour, error) {
	t, err := greedyTour(p, func(d, best int) bool { return d < best })
	if err != nil {
		return nil, fmt.Errorf("nearest neighbor tour: %w", err)
	}
	return t, nil
}

// Same as NearestNeighborTour but always moves to the furthest unvisited city.
func FurthestNeighborTour(p *domain.Problem) (domain.Tour, error) {
	t, err := greedyTour(p, func(d, best int) bool { return d > best })
	if err != nil {
		return nil, fmt.Errorf("furthest neighbor tour: %w", err)
	}
	return t, nil
}

// greedyTour visits every city once, choosing at each step the unvisited city
// whose distance from the current one beats the best so far. Candidates are
// scanned in ascending order, so a strict comparison keeps the lowest number on ties.
func greedyTour(p *domain.Problem, better func(d, best int) bool) (domain.Tour, error) {
	if p == nil {
		return nil, errNilProblem
	}

	n := p.Dimension
	if n == 0 {
		return domain.Tour{}, nil
	}

	path := make(domain.Tour, 0, n+1)
	path = append(path, startCity)

	visited := make([]bool, n+1)
	visited[startCity] = true
	remaining := n - 1
	current := startCity

	for remaining > 0 {
		next, bestDist := 0, 0

		for c := 1; c <= n; c++ {
			if visited[c] {
				continue
			}
			d, err := p.Distance(current, c)
			if err != nil {
				return nil, fmt.Errorf("distance %d -> %d: %w", current, c, err)
			}
			if next == 0 || better(d, bestDist) {
				next, bestDist = c, d
			}
		}

		path = append(path, next)
		visited[next] = true
		remaining--
		current = next
	}

	return closeTour(path), nil
}

func closeTour(path domain.Tour) domain.Tour {
	if len(path) == 0 {
		return path
	}
	return append(path, path[0])
}

// TourLength sums the distance of each consecutive pair of cities in tour,
// including the closing edge when the tour returns to its start.
func TourLength(p *domain.Problem, tour domain.Tour) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("tour length: %w", errNilProblem)
	}

	total := 0
	for i := 0; i+1 < len(tour); i++ {
		d, err := p.Distance(tour[i], tour[i+1])
		if err != nil {
			return 0, fmt.Errorf("tour length: edge %d (%d -> %d): %w", i, tour[i], tour[i+1], err)
		}
		total += d
	}
	return total, nil
}

// checkTour verifies that tour is closed and visits every city of p once.
// A problem with no cities has only the empty tour.
func checkTour(p *domain.Problem, tour domain.Tour) error {
	if p.Dimension == 0 {
		if len(tour) != 0 {
			return fmt.Errorf("%w: %v for a problem with no cities", errInvalidTour, tour)
		}
		return nil
	}

	if !tour.Closed() {
		return fmt.Errorf("%w: %v does not return to city %d", errInvalidTour, tour, startCity)
	}
	if len(tour) != p.Dimension+1 {
		return fmt.Errorf("%w: %v has %d stops, want %d", errInvalidTour, tour, len(tour)-1, p.Dimension)
	}

	seen := make([]bool, p.Dimension+1)
	for _, c := range tour[:len(tour)-1] {
		if c < 1 || c > p.Dimension || seen[c] {
			return fmt.Errorf("%w: %v repeats or leaves out city %d", errInvalidTour, tour, c)
		}
		seen[c] = true
	}
	return nil
}

// BuildTour constructs a tour with the given heuristic.
func BuildTour(p *domain.Problem, h domain.Heuristic) (domain.Tour, error) {
	if p == nil {
		return nil, fmt.Errorf("build tour: %w", errNilProblem)
	}

	switch h {
	case domain.InOrder:
		return InOrderTour(p), nil
	case domain.NearestNeighbor:
		return NearestNeighborTour(p)
	case domain.FurthestNeighbor:
		return FurthestNeighborTour(p)
	}
	return nil, fmt.Errorf("build tour: unsupported heuristic %v", h)
}
