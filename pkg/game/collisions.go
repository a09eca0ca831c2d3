package game

import (
	"math"

	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/cbodonnell/asteroids/pkg/workers"
)

// cluster is the debris of the asteroids destroyed by one collision.
type cluster struct {
	centroid kinematic.Vector
	area     float64
}

// collisionOutcome gathers the effects of the collisions of a tick before any
// of them is applied to the world.
type collisionOutcome struct {
	destroyed map[physics.BodyID]bool
	overlaps  map[physics.BodyID]bool
	bounces   []physics.CollisionPair
	clusters  []cluster
	score     int64
	shipDied  bool
}

// handleCollisions detects the overlaps of the tick and applies their
// consequences: bounces, destruction, scoring and the death of the ship.
func (gm *GameManager) handleCollisions() error {
	gs := gm.gameState
	pairs := gm.resolver.Detect(gs.World)

	outcome := &collisionOutcome{
		destroyed: make(map[physics.BodyID]bool),
		overlaps:  make(map[physics.BodyID]bool),
	}
	for _, pair := range pairs {
		gm.classifyPair(pair, outcome)
	}

	bounces := outcome.bounces[:0]
	for _, pair := range outcome.bounces {
		if outcome.destroyed[pair.A] || outcome.destroyed[pair.B] {
			continue
		}
		bounces = append(bounces, pair)
	}
	if len(bounces) > 0 {
		stats := gm.resolver.ResolvePairs(gs.World, bounces)
		log.Trace("Resolved %d of %d asteroid bounces", stats.Resolved, stats.Pairs)
	}

	// deferred entities become solid once they overlap nothing
	for id, entity := range gs.Entities {
		if entity.Deferred && !outcome.overlaps[id] {
			entity.Deferred = false
		}
	}

	for id := range outcome.destroyed {
		gs.RemoveEntity(id)
	}

	for _, c := range outcome.clusters {
		n, err := gm.spawnAsteroidCluster(c.centroid, c.area)
		if err != nil {
			return err
		}
		log.Trace("Spawned %d fragments at (%.1f, %.1f)", n, c.centroid.X, c.centroid.Y)
	}

	gs.Score += outcome.score

	if outcome.shipDied {
		gm.endRun()
	}
	return nil
}

// classifyPair decides what a single overlap does.
func (gm *GameManager) classifyPair(pair physics.CollisionPair, outcome *collisionOutcome) {
	gs := gm.gameState
	a, okA := gs.Entities[pair.A]
	b, okB := gs.Entities[pair.B]
	if !okA || !okB {
		return
	}

	if a.Deferred || b.Deferred {
		outcome.overlaps[pair.A] = true
		outcome.overlaps[pair.B] = true
		return
	}
	if outcome.destroyed[pair.A] || outcome.destroyed[pair.B] {
		return
	}

	if a.Kind == types.EntityKindAsteroid && b.Kind == types.EntityKindAsteroid {
		outcome.bounces = append(outcome.bounces, pair)
		return
	}

	if isPair(a, b, types.EntityKindBullet, types.EntityKindAsteroid) {
		outcome.score++
	}

	debris := cluster{}
	for _, entity := range []*types.Entity{a, b} {
		if entity.Kind == types.EntityKindShip {
			if gs.Modifiers.PlayerIsImmortal {
				continue
			}
			outcome.shipDied = true
		}
		outcome.destroyed[entity.ID] = true

		if entity.Kind != types.EntityKindAsteroid {
			continue
		}
		body, ok := gs.World.Body(entity.ID)
		if !ok {
			continue
		}
		area := math.Pi * body.Radius * body.Radius
		debris.centroid = debris.centroid.Scale(debris.area).Add(body.Position.Scale(area)).Scale(1 / (debris.area + area))
		debris.area += area
	}
	if debris.area > 0 {
		outcome.clusters = append(outcome.clusters, debris)
	}
}

func isPair(a, b *types.Entity, first, second types.EntityKind) bool {
	return (a.Kind == first && b.Kind == second) || (a.Kind == second && b.Kind == first)
}

// endRun marks the player dead and hands the finished run to the save worker.
func (gm *GameManager) endRun() {
	gs := gm.gameState
	gs.Modifiers.PlayerIsDead = true
	log.Info("Run %s ended with score %d after %d ticks", gs.RunID, gs.Score, gs.Tick)

	if gm.saveRunChan == nil {
		return
	}
	endedAt := gs.Timestamp
	select {
	case gm.saveRunChan <- workers.SaveRunRequest{Run: workers.RunFromSnapshot(gs.Snapshot(), &endedAt)}:
	default:
		log.Warn("Save queue full, dropped run %s", gs.RunID)
	}
}
