package constants

import "math"

const (
	// ArenaWidth is the width of the arena
	ArenaWidth float64 = 300.0
	// ArenaHeight is the height of the arena
	ArenaHeight float64 = 300.0
	// CollisionCellSize is the size of a broad phase grid cell
	CollisionCellSize int = 16

	// Density converts a body's area into its mass
	Density float64 = 1.0
	// Restitution is the default restitution between asteroids
	Restitution float64 = 0.9
	// PositionCorrection is the share of an overlap pushed apart on a bounce
	PositionCorrection float64 = 0.4

	// ShipRadius is the radius of the ship
	ShipRadius float64 = 6.0
	// ShipAcceleration is the thrust of the ship
	ShipAcceleration float64 = 80.0
	// ShipRotationRate is how fast the ship turns in radians per second
	ShipRotationRate float64 = math.Pi
	// ShipMaxVelocity is the top speed of the ship
	ShipMaxVelocity float64 = 100.0
	// ShipReloadTime is the time between shots
	ShipReloadTime float64 = 0.1 // seconds
	// ShipBulletVelocity is the speed of a fired bullet
	ShipBulletVelocity float64 = 150.0
	// ShipBulletJitter is the maximum sideways offset of a fired bullet
	ShipBulletJitter float64 = 2.0

	// BulletRadius is the radius of a bullet
	BulletRadius float64 = 2.0
	// BulletTimeToLive is how long a bullet exists
	BulletTimeToLive float64 = 2.0 // seconds

	// AsteroidMinRadius is the radius of the smallest asteroid
	AsteroidMinRadius float64 = 4.0
	// AsteroidMaxScale is the largest scale of a spawned asteroid
	AsteroidMaxScale float64 = 2.0
	// AsteroidMaxVelocity bounds each velocity component of a spawned asteroid
	AsteroidMaxVelocity float64 = 100.0
	// AsteroidMaxRotation bounds the angular velocity of a spawned asteroid
	AsteroidMaxRotation float64 = 15.0
	// AsteroidFirstSpawnTime is the delay before the first asteroid appears
	AsteroidFirstSpawnTime float64 = 2.0 // seconds
	// AsteroidAverageSpawnTime scales the random delay between spawns
	AsteroidAverageSpawnTime float64 = 0.5 // seconds

	// FragmentMaxSpeed is the top speed of an asteroid fragment
	FragmentMaxSpeed float64 = 100.0
	// FragmentMaxRotation bounds the angular velocity of an asteroid fragment
	FragmentMaxRotation float64 = 0.10
)
