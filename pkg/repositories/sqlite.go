package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbodonnell/asteroids/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection keeps in-memory databases alive and serializes writers
	db.SetMaxOpenConns(1)

	err = runMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := db.ExecContext(ctx, q)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveRun(ctx context.Context, run *models.Run) error {
	q := `
	INSERT INTO runs (id, started_at, ended_at, score, ticks, immortal)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		ended_at = COALESCE(runs.ended_at, excluded.ended_at),
		score = MAX(runs.score, excluded.score),
		ticks = MAX(runs.ticks, excluded.ticks),
		immortal = runs.immortal OR excluded.immortal;
	`
	_, err := r.db.ExecContext(ctx, q, run.ID.String(), run.StartedAt, run.EndedAt, run.Score, run.Ticks, run.Immortal)
	if err != nil {
		return fmt.Errorf("failed to save run: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) GetRun(ctx context.Context, runID uuid.UUID) (*models.Run, error) {
	q := `
	SELECT id, started_at, ended_at, score, ticks, immortal FROM runs WHERE id = ?;
	`
	run, err := scanSQLiteRun(r.db.QueryRowContext(ctx, q, runID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan run: %v", err)
	}

	return run, nil
}

func (r *SQLiteRepository) ListTopRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	q := `
	SELECT id, started_at, ended_at, score, ticks, immortal FROM runs
	ORDER BY score DESC, ticks ASC, started_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	runs := make([]*models.Run, 0)
	for rows.Next() {
		run, err := scanSQLiteRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %v", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %v", err)
	}

	return runs, nil
}

type sqliteScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteRun(row sqliteScanner) (*models.Run, error) {
	var id string
	var endedAt sql.NullInt64
	run := &models.Run{}
	if err := row.Scan(&id, &run.StartedAt, &endedAt, &run.Score, &run.Ticks, &run.Immortal); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %v", id, err)
	}
	run.ID = parsed
	if endedAt.Valid {
		run.EndedAt = &endedAt.Int64
	}
	return run, nil
}
