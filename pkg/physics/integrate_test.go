package physics

import (
	"testing"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	world := NewWorld()
	id, err := world.Spawn(BodyDef{
		Position:        kinematic.Vector{X: 1, Y: 1},
		Velocity:        kinematic.Vector{X: 2, Y: 0},
		Acceleration:    kinematic.Vector{X: 0, Y: 4},
		AngularVelocity: 0.5,
		Mass:            1,
		Radius:          1,
	})
	require.NoError(t, err)

	Integrate(world, 0.5)

	b, _ := world.Body(id)
	assert.InDelta(t, 2, b.Position.X, 1e-12)
	assert.InDelta(t, 1.5, b.Position.Y, 1e-12)
	assert.InDelta(t, 2, b.Velocity.X, 1e-12)
	assert.InDelta(t, 2, b.Velocity.Y, 1e-12)
	assert.InDelta(t, 0.25, b.Orientation, 1e-12)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		position kinematic.Vector
		want     kinematic.Vector
	}{
		{name: "inside", position: kinematic.Vector{X: 10, Y: 20}, want: kinematic.Vector{X: 10, Y: 20}},
		{name: "left", position: kinematic.Vector{X: -5, Y: 20}, want: kinematic.Vector{X: 295, Y: 20}},
		{name: "right", position: kinematic.Vector{X: 305, Y: 20}, want: kinematic.Vector{X: 5, Y: 20}},
		{name: "below", position: kinematic.Vector{X: 10, Y: -1}, want: kinematic.Vector{X: 10, Y: 299}},
		{name: "above corner", position: kinematic.Vector{X: 301, Y: 302}, want: kinematic.Vector{X: 1, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld()
			id, err := world.Spawn(BodyDef{Position: tt.position, Mass: 1, Radius: 1})
			require.NoError(t, err)

			Wrap(world, Bounds{Width: 300, Height: 300})

			b, _ := world.Body(id)
			assert.InDelta(t, tt.want.X, b.Position.X, 1e-12)
			assert.InDelta(t, tt.want.Y, b.Position.Y, 1e-12)
		})
	}
}
