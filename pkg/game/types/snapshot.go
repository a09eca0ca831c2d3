package types

import (
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the game state published once per tick.
type Snapshot struct {
	RunID     uuid.UUID      `json:"runID"`
	StartedAt int64          `json:"startedAt"`
	Timestamp int64          `json:"timestamp"`
	Tick      uint64         `json:"tick"`
	Score     int64          `json:"score"`
	Modifiers Modifiers      `json:"modifiers"`
	Paused    bool           `json:"paused"`
	Ship      *ShipState     `json:"ship,omitempty"`
	Bodies    []BodySnapshot `json:"bodies"`
}

type BodySnapshot struct {
	ID              physics.BodyID   `json:"id"`
	Kind            EntityKind       `json:"kind"`
	Deferred        bool             `json:"deferred"`
	Position        kinematic.Vector `json:"position"`
	Velocity        kinematic.Vector `json:"velocity"`
	Orientation     float64          `json:"orientation"`
	AngularVelocity float64          `json:"angularVelocity"`
	Mass            float64          `json:"mass"`
	Radius          float64          `json:"radius"`
}

func BodySnapshotFromBody(entity *Entity, body physics.Body) BodySnapshot {
	return BodySnapshot{
		ID:              body.ID,
		Kind:            entity.Kind,
		Deferred:        entity.Deferred,
		Position:        body.Position,
		Velocity:        body.Velocity,
		Orientation:     body.Orientation,
		AngularVelocity: body.AngularVelocity,
		Mass:            body.Mass,
		Radius:          body.Radius,
	}
}

// Copy returns a deep copy of the snapshot.
func (s *Snapshot) Copy() *Snapshot {
	copy := *s
	if s.Ship != nil {
		copy.Ship = s.Ship.Copy()
	}
	copy.Bodies = append([]BodySnapshot(nil), s.Bodies...)
	return &copy
}

// Momentum returns the total linear momentum of the bodies in the snapshot.
func (s *Snapshot) Momentum() kinematic.Vector {
	total := kinematic.Vector{}
	for _, b := range s.Bodies {
		total = total.Add(b.Velocity.Scale(b.Mass))
	}
	return total
}
