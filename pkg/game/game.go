package game

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cbodonnell/asteroids/pkg/game/constants"
	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/messages"
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/cbodonnell/asteroids/pkg/queue"
	"github.com/cbodonnell/asteroids/pkg/state"
	"github.com/cbodonnell/asteroids/pkg/workers"
	"github.com/google/uuid"
)

type GameManager struct {
	clientMessageQueue queue.Queue
	stateManager       state.StateManager
	saveRunChan        chan<- workers.SaveRunRequest
	gameUpdateChan     chan<- *messages.ServerGameUpdate
	resolver           *physics.Resolver
	bounds             physics.Bounds
	rng                *rand.Rand
	gameState          *types.GameState
	gameLoopInterval   time.Duration

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	ClientMessageQueue queue.Queue
	StateManager       state.StateManager
	// SaveRunChan receives finished runs. Optional.
	SaveRunChan chan<- workers.SaveRunRequest
	// GameUpdateChan receives a game update per tick. Optional.
	GameUpdateChan chan<- *messages.ServerGameUpdate
	// Resolver defaults to one using a grid broad phase over the arena
	Resolver *physics.Resolver
	// Seed seeds the random source of the simulation; zero picks a time based seed
	Seed int64
	// Immortal starts the first run with the ship immortal
	Immortal         bool
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	resolver := opts.Resolver
	if resolver == nil {
		var err error
		resolver, err = physics.NewResolver(physics.ResolverOptions{
			Restitution:        constants.Restitution,
			PositionCorrection: constants.PositionCorrection,
			BroadPhase:         physics.NewGridBroadPhase(constants.ArenaWidth, constants.ArenaHeight, constants.CollisionCellSize),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create resolver: %w", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gm := &GameManager{
		clientMessageQueue: opts.ClientMessageQueue,
		stateManager:       opts.StateManager,
		saveRunChan:        opts.SaveRunChan,
		gameUpdateChan:     opts.GameUpdateChan,
		resolver:           resolver,
		bounds:             physics.Bounds{Width: constants.ArenaWidth, Height: constants.ArenaHeight},
		rng:                rand.New(rand.NewSource(seed)),
		gameLoopInterval:   opts.GameLoopInterval,
		stopChan:           make(chan struct{}),
	}

	gameState, err := gm.newGameState(time.Now().UnixMilli(), opts.Immortal)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game state: %w", err)
	}
	gm.gameState = gameState

	return gm, nil
}

// Start runs the game loop until ctx is done or Stop is called.
func (gm *GameManager) Start(ctx context.Context) error {
	log.Info("Starting run %s", gm.gameState.RunID)

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-gm.stopChan:
			return nil
		case t := <-ticker.C:
			err := gm.gameTick(ctx, t)
			if err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// Stop ends the game loop. It is safe to call more than once.
func (gm *GameManager) Stop() {
	gm.stopOnce.Do(func() {
		close(gm.stopChan)
	})
}

// newGameState creates a fresh run with the ship in the middle of the arena.
func (gm *GameManager) newGameState(timestamp int64, immortal bool) (*types.GameState, error) {
	gameState := types.NewGameState(uuid.New(), timestamp)
	gameState.SpawnTimer = constants.AsteroidFirstSpawnTime
	gameState.Modifiers.PlayerIsImmortal = immortal

	ship, err := gameState.AddEntity(types.EntityKindShip, physics.BodyDef{
		Position: kinematic.Vector{X: constants.ArenaWidth / 2, Y: constants.ArenaHeight / 2},
		Mass:     physics.AreaMass(constants.ShipRadius, constants.Density),
		Radius:   constants.ShipRadius,
	}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn ship: %w", err)
	}
	gameState.Ship = types.NewShipState(ship.ID)

	return gameState, nil
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time) error {
	gm.gameState.Timestamp = t.UnixMilli()
	gm.processClientMessages()

	if gm.running() {
		if err := gm.simulate(gm.gameLoopInterval.Seconds()); err != nil {
			return err
		}
	}

	gm.publishState(ctx)
	return nil
}

// running reports whether the simulation advances this tick.
func (gm *GameManager) running() bool {
	return !gm.gameState.Paused && !gm.gameState.Modifiers.PlayerIsDead
}

// simulate advances the arena by deltaTime seconds.
func (gm *GameManager) simulate(deltaTime float64) error {
	gm.gameState.Tick++

	if err := gm.updateShip(deltaTime); err != nil {
		return fmt.Errorf("failed to update ship: %w", err)
	}
	if err := gm.spawnAsteroids(deltaTime); err != nil {
		return fmt.Errorf("failed to spawn asteroids: %w", err)
	}

	physics.Integrate(gm.gameState.World, deltaTime)
	gm.clampShipVelocity()
	physics.Wrap(gm.gameState.World, gm.bounds)

	gm.expireBullets(deltaTime)

	if err := gm.handleCollisions(); err != nil {
		return fmt.Errorf("failed to handle collisions: %w", err)
	}
	return nil
}

// processClientMessages processes all pending client messages in the queue
// and updates the game state accordingly.
func (gm *GameManager) processClientMessages() {
	pendingMessages, err := gm.clientMessageQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read client messages: %v", err)
		return
	}
	for _, item := range pendingMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		switch message.Type {
		case messages.MessageTypeClientShipInput:
			clientShipInput := &messages.ClientShipInput{}
			if err := json.Unmarshal(message.Payload, clientShipInput); err != nil {
				log.Error("Failed to unmarshal ship input: %v", err)
				continue
			}
			ship := gm.gameState.Ship
			if ship == nil {
				log.Trace("Client %d sent input for a destroyed ship", message.ClientID)
				continue
			}
			if ship.LastProcessedTimestamp > clientShipInput.Timestamp {
				log.Warn("Client %d sent an outdated ship input", message.ClientID)
				continue
			}
			ship.ApplyInput(clientShipInput.Timestamp, types.ShipInput{
				Rotate:     clientShipInput.Rotate,
				Accelerate: clientShipInput.Accelerate,
				Shoot:      clientShipInput.Shoot,
			})
		case messages.MessageTypeClientRestart:
			if !gm.gameState.Modifiers.PlayerIsDead {
				log.Debug("Client %d requested a restart of a live run", message.ClientID)
				continue
			}
			if err := gm.restart(); err != nil {
				log.Error("Failed to restart: %v", err)
			}
		case messages.MessageTypeClientPause:
			clientPause := &messages.ClientPause{}
			if err := json.Unmarshal(message.Payload, clientPause); err != nil {
				log.Error("Failed to unmarshal pause: %v", err)
				continue
			}
			gm.gameState.Paused = clientPause.Paused
		case messages.MessageTypeClientToggleImmortal:
			gm.gameState.Modifiers.PlayerIsImmortal = !gm.gameState.Modifiers.PlayerIsImmortal
			log.Info("Immortality set to %t by client %d", gm.gameState.Modifiers.PlayerIsImmortal, message.ClientID)
		default:
			log.Error("Unhandled message type: %s", message.Type)
		}
	}
}

// restart replaces the finished run with a new one.
func (gm *GameManager) restart() error {
	gameState, err := gm.newGameState(gm.gameState.Timestamp, gm.gameState.Modifiers.PlayerIsImmortal)
	if err != nil {
		return err
	}
	gm.gameState = gameState
	log.Info("Starting run %s", gameState.RunID)
	return nil
}

// updateShip flies the ship according to the latest input.
func (gm *GameManager) updateShip(deltaTime float64) error {
	ship := gm.gameState.Ship
	if ship == nil {
		return nil
	}
	body, ok := gm.gameState.World.Body(ship.BodyID)
	if !ok {
		return fmt.Errorf("ship body %d not found", ship.BodyID)
	}

	body.Orientation += ship.Input.Rotate * ship.RotationRate * deltaTime
	if ship.Input.Accelerate {
		body.Acceleration = kinematic.FromAngle(body.Orientation).Scale(ship.Acceleration)
	} else {
		body.Acceleration = kinematic.Vector{}
	}

	if !ship.Reload(deltaTime) || !ship.Input.Shoot {
		return nil
	}
	ship.ReloadTimer = ship.ReloadTime

	// body is invalidated by spawning the bullet
	return gm.fireBullet(ship, body.Position, body.Orientation)
}

// fireBullet spawns a deferred bullet at the ship with a little sideways jitter.
func (gm *GameManager) fireBullet(ship *types.ShipState, position kinematic.Vector, orientation float64) error {
	heading := kinematic.FromAngle(orientation)
	jitter := heading.Perp().Scale((gm.rng.Float64() - 0.5) * ship.BulletJitter)

	bullet, err := gm.gameState.AddEntity(types.EntityKindBullet, physics.BodyDef{
		Position:    position.Add(jitter),
		Velocity:    heading.Scale(ship.BulletVelocity),
		Orientation: orientation,
		Mass:        physics.AreaMass(constants.BulletRadius, constants.Density),
		Radius:      constants.BulletRadius,
	}, true)
	if err != nil {
		return err
	}
	bullet.TTL = constants.BulletTimeToLive
	log.Trace("Bullet %d fired", bullet.ID)
	return nil
}

// clampShipVelocity limits the ship to its top speed.
func (gm *GameManager) clampShipVelocity() {
	ship := gm.gameState.Ship
	if ship == nil {
		return
	}
	body, ok := gm.gameState.World.Body(ship.BodyID)
	if !ok {
		return
	}
	if speed := body.Velocity.Length(); speed > ship.MaxVelocity {
		body.Velocity = body.Velocity.Scale(ship.MaxVelocity / speed)
	}
}

// expireBullets removes bullets that have outlived their time to live.
func (gm *GameManager) expireBullets(deltaTime float64) {
	expired := make([]physics.BodyID, 0)
	for id, entity := range gm.gameState.Entities {
		if entity.Kind != types.EntityKindBullet {
			continue
		}
		entity.TTL -= deltaTime
		if entity.TTL <= 0 {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		gm.gameState.RemoveEntity(id)
	}
}

// publishState shares a snapshot of the tick with the state manager and clients.
func (gm *GameManager) publishState(ctx context.Context) {
	snapshot := gm.gameState.Snapshot()
	if err := gm.stateManager.Set(ctx, snapshot); err != nil {
		log.Error("Failed to set snapshot: %v", err)
	}

	if gm.gameUpdateChan == nil {
		return
	}
	select {
	case gm.gameUpdateChan <- ServerGameUpdateFromSnapshot(snapshot):
	default:
		log.Trace("Dropped game update for tick %d", snapshot.Tick)
	}
}
