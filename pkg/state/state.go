package state

import (
	"context"

	gametypes "github.com/cbodonnell/asteroids/pkg/game/types"
)

// StateManager provides shared access to the latest game snapshot.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest snapshot.
	Get(ctx context.Context) (*gametypes.Snapshot, error)
	// Set replaces the latest snapshot.
	Set(ctx context.Context, snapshot *gametypes.Snapshot) error
}
