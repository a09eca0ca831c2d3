package game

import (
	"math"

	"github.com/cbodonnell/asteroids/pkg/game/constants"
	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/cbodonnell/asteroids/pkg/physics"
)

// spawnAsteroids drops a random asteroid in from the top edge whenever the
// spawn timer runs out.
func (gm *GameManager) spawnAsteroids(deltaTime float64) error {
	gm.gameState.SpawnTimer -= deltaTime
	if gm.gameState.SpawnTimer > 0 {
		return nil
	}

	position := kinematic.Vector{
		X: gm.rng.Float64() * constants.ArenaWidth,
		Y: constants.ArenaHeight,
	}
	scale := 1 + gm.rng.Float64()*(constants.AsteroidMaxScale-1)
	velocity := kinematic.Vector{
		X: (gm.rng.Float64() - 0.5) * 2 * constants.AsteroidMaxVelocity,
		Y: (gm.rng.Float64() - 0.5) * 2 * constants.AsteroidMaxVelocity,
	}
	rotation := constants.AsteroidMaxRotation * gm.rng.Float64()

	if _, err := gm.spawnAsteroid(position, constants.AsteroidMinRadius*scale, velocity, rotation, false); err != nil {
		return err
	}

	gm.gameState.SpawnTimer = gm.rng.Float64() * constants.AsteroidAverageSpawnTime
	return nil
}

func (gm *GameManager) spawnAsteroid(position kinematic.Vector, radius float64, velocity kinematic.Vector, rotation float64, deferred bool) (*types.Entity, error) {
	return gm.gameState.AddEntity(types.EntityKindAsteroid, physics.BodyDef{
		Position:        position,
		Velocity:        velocity,
		AngularVelocity: rotation,
		Mass:            physics.AreaMass(radius, constants.Density),
		Radius:          radius,
	}, deferred)
}

// FragmentCount returns how many minimum sized fragments an asteroid of the
// given area breaks into.
func FragmentCount(area float64) int {
	minArea := math.Pi * constants.AsteroidMinRadius * constants.AsteroidMinRadius
	count := 0
	for area > minArea*2 {
		area -= minArea
		count++
	}
	return count
}

// spawnAsteroidCluster breaks the area of destroyed asteroids into deferred
// fragments flying away from position in random directions.
func (gm *GameManager) spawnAsteroidCluster(position kinematic.Vector, area float64) (int, error) {
	count := FragmentCount(area)

	angle := 0.0
	for i := 0; i < count; i++ {
		angle += gm.rng.Float64() * math.Pi
		velocity := kinematic.Vector{X: 1}.Rotate(angle).Scale(constants.FragmentMaxSpeed * gm.rng.Float64())
		rotation := constants.FragmentMaxRotation * gm.rng.Float64()
		if _, err := gm.spawnAsteroid(position, constants.AsteroidMinRadius, velocity, rotation, true); err != nil {
			return i, err
		}
	}

	return count, nil
}
