package types

import "github.com/cbodonnell/asteroids/pkg/physics"

type EntityKind uint8

const (
	EntityKindShip EntityKind = iota + 1
	EntityKindAsteroid
	EntityKindBullet
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindShip:
		return "ship"
	case EntityKindAsteroid:
		return "asteroid"
	case EntityKindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Entity tags a physics body with its role in the game.
type Entity struct {
	ID   physics.BodyID
	Kind EntityKind
	// Deferred entities register no collisions until a tick passes
	// in which they overlap nothing.
	Deferred bool
	// TTL is the remaining lifetime of a bullet in seconds
	TTL float64
}
