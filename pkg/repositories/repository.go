package repositories

import (
	"context"

	"github.com/cbodonnell/asteroids/pkg/repositories/models"
	"github.com/google/uuid"
)

const (
	// MaxListLimit bounds the number of runs returned by ListTopRuns
	MaxListLimit = 100
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveRun inserts a run or updates it. The end time of a finished run is
	// never cleared and its score and ticks never decrease.
	SaveRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, runID uuid.UUID) (*models.Run, error)
	// ListTopRuns returns the highest scoring runs, fewest ticks first on ties.
	ListTopRuns(ctx context.Context, limit int) ([]*models.Run, error)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
