package messages

import (
	"testing"

	snapshotfb "github.com/cbodonnell/asteroids/flatbuffers/snapshot"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeGameUpdate(t *testing.T) {
	tests := []struct {
		name   string
		update *ServerGameUpdate
	}{
		{
			name: "empty arena",
			update: &ServerGameUpdate{
				Timestamp:    1,
				RunID:        "3f0c2b5e-8d4a-4c6b-9e1f-2a7d5c9b0e13",
				PlayerIsDead: true,
				Bodies:       []BodyUpdate{},
			},
		},
		{
			name: "ship and asteroids",
			update: &ServerGameUpdate{
				Timestamp:        1718000000000,
				Tick:             42,
				RunID:            "3f0c2b5e-8d4a-4c6b-9e1f-2a7d5c9b0e13",
				Score:            7,
				Paused:           true,
				PlayerIsImmortal: true,
				ShipBodyID:       1,
				Bodies: []BodyUpdate{
					{
						ID:          1,
						Kind:        1,
						Position:    kinematic.Vector{X: 150, Y: 150},
						Velocity:    kinematic.Vector{X: -3.5, Y: 12.25},
						Orientation: 1.5,
						Mass:        113.09733552923255,
						Radius:      6,
					},
					{
						ID:              2,
						Kind:            2,
						Deferred:        true,
						Position:        kinematic.Vector{X: 10.125, Y: 299.5},
						Velocity:        kinematic.Vector{X: 99, Y: -0.001},
						AngularVelocity: 14.2,
						Mass:            201.06192982974676,
						Radius:          8,
					},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeGameUpdate(tt.update)
			require.NoError(t, err)

			got, err := DeserializeGameUpdate(b)
			require.NoError(t, err)
			assert.Equal(t, tt.update, got)
		})
	}
}

func TestDeserializeGameUpdate_invalid(t *testing.T) {
	_, err := DeserializeGameUpdate([]byte("not zstd"))
	assert.Error(t, err)

	_, err = DeserializeGameUpdateFlatbuffer([]byte{1})
	assert.Error(t, err)

	_, err = SerializeGameUpdate(nil)
	assert.Error(t, err)
}

func TestDeserializeGameUpdateFlatbuffer_corruptBodiesLength(t *testing.T) {
	b, err := SerializeGameUpdateFlatbuffer(&ServerGameUpdate{
		Timestamp: 1,
		RunID:     "3f0c2b5e-8d4a-4c6b-9e1f-2a7d5c9b0e13",
		Bodies: []BodyUpdate{
			{ID: 1, Kind: 1, Mass: 1, Radius: 6},
			{ID: 2, Kind: 2, Mass: 2, Radius: 8},
			{ID: 3, Kind: 2, Mass: 3, Radius: 8},
		},
	})
	require.NoError(t, err)

	fb := snapshotfb.GetRootAsGameUpdate(b, 0)
	require.Equal(t, 3, fb.BodiesLength())
	tab := fb.Table()
	vector := tab.Vector(flatbuffers.UOffsetT(tab.Offset(20)))
	flatbuffers.WriteUint32(b[vector-flatbuffers.SizeUOffsetT:], 0x7ffffff0)

	got, err := DeserializeGameUpdateFlatbuffer(b)
	assert.Error(t, err)
	assert.Nil(t, got)
}
