package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tsp-tour-service/internal/platform/obs"
	"tsp-tour-service/internal/ports"
)

// SQLite-backed implementation of the ProblemStore port.
type SqliteProblemRepository struct{ DB *sql.DB }

func NewSqliteProblemRepository(db *sql.DB) *SqliteProblemRepository {
	return &SqliteProblemRepository{DB: db}
}

// Return all problem files stored in the database, ordered by path.
func (s *SqliteProblemRepository) ListProblems(ctx context.Context) (_ []ports.ProblemFile, err error) {
	defer obs.Time(ctx, "sqlite.ListProblems")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite problem repository: DB is nil")
	}

	query := `
	SELECT
		path,
		body
	FROM tsp_problems
	ORDER BY path;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list problems: query tsp_problems table: %w", err)
	}
	defer rows.Close()

	return scanProblems(rows)
}

// Store problem files, replacing any existing row with the same path.
func (s *SqliteProblemRepository) SaveProblems(ctx context.Context, files []ports.ProblemFile) error {
	if s.DB == nil {
		return errors.New("sqlite problem repository: DB is nil")
	}

	if err := validateFiles(files); err != nil {
		return fmt.Errorf("save problems: %w", err)
	}

	if len(files) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save problems: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO tsp_problems (
		path,
		body
	)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save problems: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range files {
		if _, err := stmt.ExecContext(ctx, f.Path, string(f.Body)); err != nil {
			return fmt.Errorf("save problems: insert path=%q: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save problems: commit tx: %w", err)
	}

	return nil
}

func scanProblems(rows *sql.Rows) ([]ports.ProblemFile, error) {
	problems := make([]ports.ProblemFile, 0, 16)
	for rows.Next() {
		var path, body string
		if err := rows.Scan(&path, &body); err != nil {
			return nil, fmt.Errorf("list problems: scan row: %w", err)
		}
		problems = append(problems, ports.ProblemFile{Path: path, Body: []byte(body)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list problems: row iteration: %w", err)
	}

	return problems, nil
}
