package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"tsp-tour-service/internal/api/dto"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/services"
	"tsp-tour-service/internal/tsplib"
)

const DefaultMaxBodyBytes = 8 << 20

// TourHandler evaluates a TSPLIB problem posted as the request body.
type TourHandler struct {
	MaxBodyBytes int64
}

// Evaluate parses the body and runs the heuristics named in the
// "heuristics" query parameter (all of them when absent).
// Tours are included in the response when "tours" is true.
func (h *TourHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	heuristics, err := parseHeuristics(r.URL.Query().Get("heuristics"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	withTours := false
	if v := r.URL.Query().Get("tours"); v != "" {
		withTours, err = strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "tours must be a boolean")
			return
		}
	}

	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	p, err := tsplib.Parse(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := services.EvaluateProblem(r.Context(), p, heuristics)
	if err != nil {
		log.Printf("evaluate problem failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.FromEvaluation(domain.Evaluation{Problem: p, Results: results}, withTours)
	writeJSON(w, r, http.StatusOK, res)
}

func parseHeuristics(raw string) ([]domain.Heuristic, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.AllHeuristics, nil
	}

	var out []domain.Heuristic
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		h, err := domain.ParseHeuristic(part)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
