package api

import (
	"net/http"
	"tsp-tour-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers and returns an http.Handler.
func NewRouter(maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()

	tourHandler := &handlers.TourHandler{MaxBodyBytes: maxBodyBytes}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/tours", tourHandler.Evaluate)

	return loggingMiddleware(mux)
}
