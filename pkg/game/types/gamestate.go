package types

import (
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/google/uuid"
)

type Modifiers struct {
	PlayerIsImmortal bool `json:"playerIsImmortal"`
	PlayerIsDead     bool `json:"playerIsDead"`
}

// GameState is the authoritative state of a run.
// It is owned by the game loop and must not be shared.
type GameState struct {
	// RunID identifies the current run
	RunID uuid.UUID
	// StartedAt is the time in milliseconds at which the run started
	StartedAt int64
	// Timestamp is the time in milliseconds at which the game state was generated
	Timestamp int64
	// Tick counts the simulated ticks of the run
	Tick uint64
	// World holds the rigid bodies of every entity
	World *physics.World
	// Entities maps body ids to entities
	Entities map[physics.BodyID]*Entity
	// Ship is nil once the ship has been destroyed
	Ship      *ShipState
	Score     int64
	Modifiers Modifiers
	Paused    bool
	// SpawnTimer is the time until the next asteroid spawns
	SpawnTimer float64
}

func NewGameState(runID uuid.UUID, startedAt int64) *GameState {
	return &GameState{
		RunID:     runID,
		StartedAt: startedAt,
		Timestamp: startedAt,
		World:     physics.NewWorld(),
		Entities:  make(map[physics.BodyID]*Entity),
	}
}

// AddEntity spawns a body and registers the entity that owns it.
func (g *GameState) AddEntity(kind EntityKind, def physics.BodyDef, deferred bool) (*Entity, error) {
	id, err := g.World.Spawn(def)
	if err != nil {
		return nil, err
	}
	entity := &Entity{
		ID:       id,
		Kind:     kind,
		Deferred: deferred,
	}
	g.Entities[id] = entity
	return entity, nil
}

// RemoveEntity removes an entity and its body.
func (g *GameState) RemoveEntity(id physics.BodyID) {
	g.World.Remove(id)
	delete(g.Entities, id)
	if g.Ship != nil && g.Ship.BodyID == id {
		g.Ship = nil
	}
}

// CountKind returns the number of entities of a kind.
func (g *GameState) CountKind(kind EntityKind) int {
	count := 0
	for _, e := range g.Entities {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the game state safe to hand to other goroutines.
func (g *GameState) Snapshot() *Snapshot {
	bodies := g.World.Bodies()
	snapshot := &Snapshot{
		RunID:     g.RunID,
		StartedAt: g.StartedAt,
		Timestamp: g.Timestamp,
		Tick:      g.Tick,
		Score:     g.Score,
		Modifiers: g.Modifiers,
		Paused:    g.Paused,
		Bodies:    make([]BodySnapshot, 0, len(bodies)),
	}
	if g.Ship != nil {
		snapshot.Ship = g.Ship.Copy()
	}
	for _, b := range bodies {
		entity, ok := g.Entities[b.ID]
		if !ok {
			continue
		}
		snapshot.Bodies = append(snapshot.Bodies, BodySnapshotFromBody(entity, b))
	}
	return snapshot
}
