package types

import (
	"github.com/cbodonnell/asteroids/pkg/game/constants"
	"github.com/cbodonnell/asteroids/pkg/physics"
)

// ShipInput is the latest control input of the pilot.
type ShipInput struct {
	// Rotate is the turn direction in [-1, 1]; positive turns counter-clockwise
	Rotate     float64 `json:"rotate"`
	Accelerate bool    `json:"accelerate"`
	Shoot      bool    `json:"shoot"`
}

// ShipState is the pilot-controlled part of the ship.
// The ship's motion lives on its physics body.
type ShipState struct {
	BodyID                 physics.BodyID `json:"bodyID"`
	LastProcessedTimestamp int64          `json:"lastProcessedTimestamp"`
	Input                  ShipInput      `json:"input"`

	Acceleration   float64 `json:"acceleration"`
	RotationRate   float64 `json:"rotationRate"`
	MaxVelocity    float64 `json:"maxVelocity"`
	ReloadTime     float64 `json:"reloadTime"`
	ReloadTimer    float64 `json:"reloadTimer"`
	BulletVelocity float64 `json:"bulletVelocity"`
	BulletJitter   float64 `json:"bulletJitter"`
}

func NewShipState(bodyID physics.BodyID) *ShipState {
	return &ShipState{
		BodyID:         bodyID,
		Acceleration:   constants.ShipAcceleration,
		RotationRate:   constants.ShipRotationRate,
		MaxVelocity:    constants.ShipMaxVelocity,
		ReloadTime:     constants.ShipReloadTime,
		BulletVelocity: constants.ShipBulletVelocity,
		BulletJitter:   constants.ShipBulletJitter,
	}
}

// ApplyInput stores the input to be flown on the following ticks.
func (s *ShipState) ApplyInput(timestamp int64, input ShipInput) {
	if input.Rotate > 1 {
		input.Rotate = 1
	} else if input.Rotate < -1 {
		input.Rotate = -1
	}
	s.Input = input
	s.LastProcessedTimestamp = timestamp
}

// Reload counts the reload timer down and reports whether the ship can fire.
func (s *ShipState) Reload(deltaTime float64) bool {
	if s.ReloadTimer <= 0 {
		return true
	}
	s.ReloadTimer -= deltaTime
	if s.ReloadTimer < 0 {
		s.ReloadTimer = 0
	}
	return false
}

func (s *ShipState) Copy() *ShipState {
	copy := *s
	return &copy
}
