package main

import (
	"context"
	"log"
	"os"
	"strings"
	"tsp-tour-service/internal/adapters/files"
	"tsp-tour-service/internal/adapters/repositories"
	"tsp-tour-service/internal/config"
	"tsp-tour-service/internal/platform/db"
)

// dbtool creates the problem schema and loads .tsp files into it.
//
//	dbtool PATH...
func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.Get("SEED_PATH", "data/problems")}
	}

	conn, driver, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	store, err := repositories.NewProblemStore(conn, driver)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Loading problem files...")
	problems, err := files.NewFileProblemRepository(paths).ListProblems(ctx)
	if err != nil {
		log.Fatalf("loading failed: %v", err)
	}
	if err := store.SaveProblems(ctx, problems); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. problems=%d driver=%s", len(problems), driver)
}
