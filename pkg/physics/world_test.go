package physics

import (
	"testing"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyIDs(world *World) []BodyID {
	ids := make([]BodyID, 0, world.Len())
	for _, b := range world.Bodies() {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestWorld_Spawn(t *testing.T) {
	world := NewWorld()

	first, err := world.Spawn(BodyDef{Mass: 1, Radius: 1})
	require.NoError(t, err)
	second, err := world.Spawn(BodyDef{Mass: 1, Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, BodyID(1), first)
	assert.Equal(t, BodyID(2), second)

	_, err = world.Spawn(BodyDef{Mass: 0, Radius: 1})
	assert.ErrorIs(t, err, ErrInvalidMass)
	assert.Equal(t, 2, world.Len())
}

func TestWorld_InsertKeepsIDOrder(t *testing.T) {
	world := NewWorld()
	for _, id := range []BodyID{7, 2, 5} {
		require.NoError(t, world.Insert(Body{ID: id, Mass: 1, Radius: 1}))
	}
	assert.Equal(t, []BodyID{2, 5, 7}, bodyIDs(world))

	err := world.Insert(Body{ID: 5, Mass: 1, Radius: 1})
	assert.ErrorIs(t, err, ErrDuplicateBody)

	id, err := world.Spawn(BodyDef{Mass: 1, Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, BodyID(8), id)
}

func TestWorld_Remove(t *testing.T) {
	world := NewWorld()
	for i := 0; i < 4; i++ {
		_, err := world.Spawn(BodyDef{Position: kinematic.Vector{X: float64(i)}, Mass: 1, Radius: 1})
		require.NoError(t, err)
	}

	assert.True(t, world.Remove(2))
	assert.False(t, world.Remove(2))
	assert.Equal(t, []BodyID{1, 3, 4}, bodyIDs(world))

	b, ok := world.Body(4)
	require.True(t, ok)
	assert.Equal(t, 3.0, b.Position.X)
	_, ok = world.Body(2)
	assert.False(t, ok)
}

func TestWorld_Clone(t *testing.T) {
	world := NewWorld()
	id, err := world.Spawn(BodyDef{Mass: 1, Radius: 1})
	require.NoError(t, err)

	clone := world.Clone()
	b, _ := world.Body(id)
	b.Velocity = kinematic.Vector{X: 10}

	cb, ok := clone.Body(id)
	require.True(t, ok)
	assert.Equal(t, kinematic.Vector{}, cb.Velocity)
}
