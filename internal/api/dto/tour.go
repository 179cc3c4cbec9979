package dto

import "tsp-tour-service/internal/domain"

type TourResultResponse struct {
	Heuristic string `json:"heuristic" yaml:"heuristic"`
	Length    int    `json:"length" yaml:"length"`
	Tour      []int  `json:"tour,omitempty" yaml:"tour,omitempty,flow"`
}

type ProblemResponse struct {
	Path           string               `json:"path,omitempty" yaml:"path,omitempty"`
	Name           string               `json:"name,omitempty" yaml:"name,omitempty"`
	Comment        string               `json:"comment,omitempty" yaml:"comment,omitempty"`
	Type           string               `json:"type,omitempty" yaml:"type,omitempty"`
	Dimension      int                  `json:"dimension" yaml:"dimension"`
	EdgeWeightType string               `json:"edge_weight_type,omitempty" yaml:"edge_weight_type,omitempty"`
	Error          string               `json:"error,omitempty" yaml:"error,omitempty"`
	Results        []TourResultResponse `json:"results,omitempty" yaml:"results,omitempty"`
}

type SummaryResponse struct {
	Heuristic string  `json:"heuristic" yaml:"heuristic"`
	Files     int     `json:"files" yaml:"files"`
	Mean      float64 `json:"mean" yaml:"mean"`
	Median    float64 `json:"median" yaml:"median"`
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
}

type ReportResponse struct {
	Problems []ProblemResponse `json:"problems" yaml:"problems"`
	Summary  []SummaryResponse `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// FromEvaluation maps a processed file to its response shape.
// Tours are only included when withTours is set.
func FromEvaluation(e domain.Evaluation, withTours bool) ProblemResponse {
	res := ProblemResponse{Path: e.Path}
	if e.Err != nil {
		res.Error = e.Err.Error()
		return res
	}

	if p := e.Problem; p != nil {
		res.Name = p.Name
		res.Comment = p.Comment
		res.Type = p.Type
		res.Dimension = p.Dimension
		res.EdgeWeightType = p.CoordinateSystem.String()
	}

	res.Results = make([]TourResultResponse, 0, len(e.Results))
	for _, r := range e.Results {
		tr := TourResultResponse{Heuristic: r.Heuristic.String(), Length: r.Length}
		if withTours {
			tr.Tour = []int(r.Tour)
		}
		res.Results = append(res.Results, tr)
	}
	return res
}

func FromSummary(s domain.HeuristicSummary) SummaryResponse {
	return SummaryResponse{
		Heuristic: s.Heuristic.String(),
		Files:     s.Files,
		Mean:      s.Mean,
		Median:    s.Median,
		Min:       s.Min,
		Max:       s.Max,
	}
}
