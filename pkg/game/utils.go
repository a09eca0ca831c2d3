package game

import (
	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/messages"
)

func ServerGameUpdateFromSnapshot(snapshot *types.Snapshot) *messages.ServerGameUpdate {
	bodies := make([]messages.BodyUpdate, 0, len(snapshot.Bodies))
	for _, body := range snapshot.Bodies {
		bodies = append(bodies, BodyUpdateFromSnapshot(body))
	}

	update := &messages.ServerGameUpdate{
		Timestamp:        snapshot.Timestamp,
		Tick:             snapshot.Tick,
		RunID:            snapshot.RunID.String(),
		Score:            snapshot.Score,
		Paused:           snapshot.Paused,
		PlayerIsImmortal: snapshot.Modifiers.PlayerIsImmortal,
		PlayerIsDead:     snapshot.Modifiers.PlayerIsDead,
		Bodies:           bodies,
	}
	if snapshot.Ship != nil {
		update.ShipBodyID = uint32(snapshot.Ship.BodyID)
	}
	return update
}

func BodyUpdateFromSnapshot(body types.BodySnapshot) messages.BodyUpdate {
	return messages.BodyUpdate{
		ID:              uint32(body.ID),
		Kind:            uint8(body.Kind),
		Deferred:        body.Deferred,
		Position:        body.Position,
		Velocity:        body.Velocity,
		Orientation:     body.Orientation,
		AngularVelocity: body.AngularVelocity,
		Mass:            body.Mass,
		Radius:          body.Radius,
	}
}
