package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/asteroids/pkg/game/types"
)

// ErrNoSnapshot is returned by Get before the first snapshot has been set
var ErrNoSnapshot = errors.New("no snapshot has been published")

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot *gametypes.Snapshot
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*gametypes.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return m.snapshot.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot *gametypes.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	copy := snapshot.Copy()

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = copy
	return nil
}
