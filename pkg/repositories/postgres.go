package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// pgx.Conn is not safe for concurrent use
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	err = runMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := conn.Exec(ctx, q)
		return err
	})
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveRun(ctx context.Context, run *models.Run) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO runs (id, started_at, ended_at, score, ticks, immortal)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		ended_at = COALESCE(runs.ended_at, EXCLUDED.ended_at),
		score = GREATEST(runs.score, EXCLUDED.score),
		ticks = GREATEST(runs.ticks, EXCLUDED.ticks),
		immortal = runs.immortal OR EXCLUDED.immortal;
	`
	_, err := r.conn.Exec(ctx, q, run.ID.String(), run.StartedAt, run.EndedAt, run.Score, run.Ticks, run.Immortal)
	if err != nil {
		return fmt.Errorf("failed to save run: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetRun(ctx context.Context, runID uuid.UUID) (*models.Run, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT id::text, started_at, ended_at, score, ticks, immortal FROM runs WHERE id = $1;
	`
	run, err := scanPostgresRun(r.conn.QueryRow(ctx, q, runID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan run: %v", err)
	}

	return run, nil
}

func (r *PostgresRepository) ListTopRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT id::text, started_at, ended_at, score, ticks, immortal FROM runs
	ORDER BY score DESC, ticks ASC, started_at ASC
	LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	runs := make([]*models.Run, 0)
	for rows.Next() {
		run, err := scanPostgresRun(rows)
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

func scanPostgresRun(row pgx.Row) (*models.Run, error) {
	var id string
	run := &models.Run{}
	if err := row.Scan(&id, &run.StartedAt, &run.EndedAt, &run.Score, &run.Ticks, &run.Immortal); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %v", id, err)
	}
	run.ID = parsed
	return run, nil
}
