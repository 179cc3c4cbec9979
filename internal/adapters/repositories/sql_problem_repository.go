package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tsp-tour-service/internal/platform/obs"
	"tsp-tour-service/internal/ports"
)

// SQLProblemRepository is a Postgres-backed problem source (pgx stdlib driver).
type SQLProblemRepository struct {
	DB *sql.DB
}

func NewSQLProblemRepository(db *sql.DB) *SQLProblemRepository {
	return &SQLProblemRepository{DB: db}
}

// Return all problem files stored in the database, ordered by path.
func (s *SQLProblemRepository) ListProblems(ctx context.Context) (_ []ports.ProblemFile, err error) {
	defer obs.Time(ctx, "postgres.ListProblems")(&err)

	if s.DB == nil {
		return nil, errors.New("problem repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT path, body
	FROM tsp_problems
	ORDER BY path;
	`)
	if err != nil {
		return nil, fmt.Errorf("list problems: query tsp_problems table: %w", err)
	}
	defer rows.Close()

	return scanProblems(rows)
}

// Store problem files, updating the body of any existing path.
func (s *SQLProblemRepository) SaveProblems(ctx context.Context, files []ports.ProblemFile) (err error) {
	defer obs.Time(ctx, "postgres.SaveProblems")(&err)

	if s.DB == nil {
		return errors.New("problem repository: db is nil")
	}

	if err := validateFiles(files); err != nil {
		return fmt.Errorf("save problems: %w", err)
	}

	if len(files) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save problems: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO tsp_problems (path, body)
	VALUES ($1, $2)
	ON CONFLICT (path) DO UPDATE
	SET body = EXCLUDED.body;
	`)
	if err != nil {
		return fmt.Errorf("save problems: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, f := range files {
		if _, err := stmt.ExecContext(ctx, f.Path, string(f.Body)); err != nil {
			return fmt.Errorf("save problems path=%q: %w", f.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save problems commit: %w", err)
	}

	return nil
}
