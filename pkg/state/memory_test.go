package state

import (
	"context"
	"testing"

	gametypes "github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.Error(t, m.Set(ctx, nil))

	snapshot := &gametypes.Snapshot{
		RunID: uuid.New(),
		Tick:  3,
		Ship:  &gametypes.ShipState{BodyID: 1},
		Bodies: []gametypes.BodySnapshot{
			{ID: 1, Kind: gametypes.EntityKindShip, Position: kinematic.Vector{X: 1, Y: 2}},
		},
	}
	require.NoError(t, m.Set(ctx, snapshot))

	// later writes to the published snapshot are not visible to readers
	snapshot.Bodies[0].Position.X = 100
	snapshot.Ship.BodyID = 9

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Bodies[0].Position.X)
	assert.Equal(t, uint32(1), uint32(got.Ship.BodyID))

	got.Bodies[0].Position.Y = 100
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, again.Bodies[0].Position.Y)
}
