package handlers

import (
	"net/http"
	"tsp-tour-service/internal/domain"
)

type healthResponse struct {
	Status     string   `json:"status"`
	Heuristics []string `json:"heuristics"`
}

// Health reports liveness and the heuristics /tours accepts.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := healthResponse{Status: "ok"}
	for _, h := range domain.AllHeuristics {
		res.Heuristics = append(res.Heuristics, h.String())
	}
	writeJSON(w, r, http.StatusOK, res)
}
