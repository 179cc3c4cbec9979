package main

import (
	"log"
	"net/http"
	"time"
	"tsp-tour-service/internal/api"
	"tsp-tour-service/internal/api/handlers"
	"tsp-tour-service/internal/config"
)

// main is the application composition root for the HTTP service.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", "8080")
	maxBody, err := config.GetInt("MAX_BODY_BYTES", handlers.DefaultMaxBodyBytes)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(int64(maxBody))

	// Large GEO instances take a while to upload and evaluate.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
