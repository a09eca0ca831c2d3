package workers

import (
	"context"
	"errors"
	"time"

	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/repositories"
	"github.com/cbodonnell/asteroids/pkg/repositories/models"
	"github.com/cbodonnell/asteroids/pkg/state"
)

const (
	// drainTimeout bounds the time spent saving queued runs on shutdown
	drainTimeout = 5 * time.Second
)

type SaveRunWorker struct {
	repository  repositories.Repository
	saveRunChan <-chan SaveRunRequest
	// stateManager is optional; without it running runs are not checkpointed
	stateManager state.StateManager
	interval     time.Duration
}

type NewSaveRunWorkerOptions struct {
	Repository   repositories.Repository
	SaveRunChan  <-chan SaveRunRequest
	StateManager state.StateManager
	Interval     time.Duration
}

type SaveRunRequest struct {
	Run *models.Run
}

// NewSaveRunWorker creates a new SaveRunWorker.
// The worker persists finished runs sent by the game loop and
// periodically checkpoints the run in progress.
func NewSaveRunWorker(opts NewSaveRunWorkerOptions) *SaveRunWorker {
	return &SaveRunWorker{
		repository:   opts.Repository,
		saveRunChan:  opts.SaveRunChan,
		stateManager: opts.StateManager,
		interval:     opts.Interval,
	}
}

func (w *SaveRunWorker) Start(ctx context.Context) {
	var checkpoint <-chan time.Time
	if w.stateManager != nil && w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		checkpoint = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case saveRequest := <-w.saveRunChan:
			w.saveRun(ctx, saveRequest.Run)
		case <-checkpoint:
			w.checkpoint(ctx)
		}
	}
}

// drain saves the runs still queued when the worker is stopped.
func (w *SaveRunWorker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case saveRequest := <-w.saveRunChan:
			w.saveRun(ctx, saveRequest.Run)
		default:
			return
		}
	}
}

func (w *SaveRunWorker) checkpoint(ctx context.Context) {
	snapshot, err := w.stateManager.Get(ctx)
	if err != nil {
		if !errors.Is(err, state.ErrNoSnapshot) {
			log.Error("Failed to get current snapshot: %v", err)
		}
		return
	}
	if snapshot.Modifiers.PlayerIsDead {
		// finished runs are saved by the game loop
		return
	}
	w.saveRun(ctx, RunFromSnapshot(snapshot, nil))
}

func (w *SaveRunWorker) saveRun(ctx context.Context, run *models.Run) {
	if run == nil {
		return
	}
	if err := w.repository.SaveRun(ctx, run); err != nil {
		log.Error("Failed to save run %s: %v", run.ID, err)
		return
	}
	log.Debug("Saved run %s with score %d", run.ID, run.Score)
}

// RunFromSnapshot returns the run described by a snapshot.
// A nil endedAt marks the run as in progress.
func RunFromSnapshot(snapshot *types.Snapshot, endedAt *int64) *models.Run {
	return &models.Run{
		ID:        snapshot.RunID,
		StartedAt: snapshot.StartedAt,
		EndedAt:   endedAt,
		Score:     snapshot.Score,
		Ticks:     int64(snapshot.Tick),
		Immortal:  snapshot.Modifiers.PlayerIsImmortal,
	}
}
