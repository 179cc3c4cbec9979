package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tsp-tour-service/internal/platform/db"
	"tsp-tour-service/internal/ports"
)

// Initialize the problem source schema. The statements are valid for both
// SQLite and Postgres.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProblemsQuery := `
	CREATE TABLE IF NOT EXISTS tsp_problems (
		path TEXT PRIMARY KEY,
		body TEXT NOT NULL
	);
	`

	statements := []string{
		createProblemsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// NewProblemStore returns the store implementation matching driver.
func NewProblemStore(conn *sql.DB, driver string) (ports.ProblemStore, error) {
	switch driver {
	case db.DriverPostgres:
		return NewSQLProblemRepository(conn), nil
	case db.DriverSQLite:
		return NewSqliteProblemRepository(conn), nil
	}
	return nil, fmt.Errorf("new problem store: unsupported driver %q", driver)
}

func validateFiles(files []ports.ProblemFile) error {
	seen := make(map[string]struct{}, len(files))
	for i, f := range files {
		if f.Path == "" {
			return fmt.Errorf("problem at index %d: path cannot be empty", i)
		}
		if _, ok := seen[f.Path]; ok {
			return fmt.Errorf("problem at index %d: duplicate path %q", i, f.Path)
		}
		seen[f.Path] = struct{}{}
	}
	return nil
}
