package game

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	mocks "github.com/cbodonnell/asteroids/mocks/github.com/cbodonnell/asteroids/pkg/queue"
	"github.com/cbodonnell/asteroids/pkg/game/constants"
	"github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"github.com/cbodonnell/asteroids/pkg/messages"
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/cbodonnell/asteroids/pkg/state"
	"github.com/cbodonnell/asteroids/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameManager(t *testing.T, clientMessageQueue *mocks.MockQueue) *GameManager {
	t.Helper()
	gm, err := NewGameManager(NewGameManagerOptions{
		ClientMessageQueue: clientMessageQueue,
		StateManager:       state.NewInMemoryStateManager(),
		Seed:               1,
		GameLoopInterval:   time.Second / 60,
	})
	require.NoError(t, err)
	return gm
}

func newTestMessage(t *testing.T, messageType messages.MessageType, payload interface{}) *messages.Message {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return &messages.Message{
		ClientID: 1,
		Type:     messageType,
		Payload:  b,
	}
}

func addTestEntity(t *testing.T, gs *types.GameState, kind types.EntityKind, position, velocity kinematic.Vector, radius float64, deferred bool) *types.Entity {
	t.Helper()
	entity, err := gs.AddEntity(kind, physics.BodyDef{
		Position: position,
		Velocity: velocity,
		Mass:     physics.AreaMass(radius, constants.Density),
		Radius:   radius,
	}, deferred)
	require.NoError(t, err)
	return entity
}

func TestNewGameManager(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))

	gs := gm.gameState
	require.NotNil(t, gs.Ship)
	assert.Equal(t, 1, gs.World.Len())
	assert.Equal(t, types.EntityKindShip, gs.Entities[gs.Ship.BodyID].Kind)
	body, ok := gs.World.Body(gs.Ship.BodyID)
	require.True(t, ok)
	assert.Equal(t, kinematic.Vector{X: constants.ArenaWidth / 2, Y: constants.ArenaHeight / 2}, body.Position)
	assert.Equal(t, constants.AsteroidFirstSpawnTime, gs.SpawnTimer)
	assert.False(t, gs.Modifiers.PlayerIsImmortal)
}

func TestGameManager_processClientMessages(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(gs *types.GameState)
		messages func(t *testing.T) []interface{}
		check    func(t *testing.T, before, after *types.GameState)
	}{
		{
			name: "ship input",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientShipInput, messages.ClientShipInput{Timestamp: 1, Rotate: 2, Accelerate: true}),
					newTestMessage(t, messages.MessageTypeClientShipInput, messages.ClientShipInput{Timestamp: 2, Rotate: -0.5, Shoot: true}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.Equal(t, int64(2), after.Ship.LastProcessedTimestamp)
				assert.Equal(t, types.ShipInput{Rotate: -0.5, Shoot: true}, after.Ship.Input)
			},
		},
		{
			name: "outdated ship input is dropped",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientShipInput, messages.ClientShipInput{Timestamp: 5, Rotate: 1}),
					newTestMessage(t, messages.MessageTypeClientShipInput, messages.ClientShipInput{Timestamp: 3, Accelerate: true}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.Equal(t, int64(5), after.Ship.LastProcessedTimestamp)
				assert.Equal(t, types.ShipInput{Rotate: 1}, after.Ship.Input)
			},
		},
		{
			name: "pause",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientPause, messages.ClientPause{Paused: true}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.True(t, after.Paused)
			},
		},
		{
			name: "toggle immortal twice",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientToggleImmortal, messages.ClientToggleImmortal{}),
					newTestMessage(t, messages.MessageTypeClientToggleImmortal, messages.ClientToggleImmortal{}),
					newTestMessage(t, messages.MessageTypeClientToggleImmortal, messages.ClientToggleImmortal{}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.True(t, after.Modifiers.PlayerIsImmortal)
			},
		},
		{
			name: "restart of a live run is ignored",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientRestart, messages.ClientRestart{}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.Same(t, before, after)
			},
		},
		{
			name: "restart after death starts a new run",
			setup: func(gs *types.GameState) {
				gs.RemoveEntity(gs.Ship.BodyID)
				gs.Modifiers.PlayerIsDead = true
				gs.Modifiers.PlayerIsImmortal = true
				gs.Score = 12
			},
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					newTestMessage(t, messages.MessageTypeClientRestart, messages.ClientRestart{}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.NotEqual(t, before.RunID, after.RunID)
				assert.False(t, after.Modifiers.PlayerIsDead)
				assert.True(t, after.Modifiers.PlayerIsImmortal)
				assert.Zero(t, after.Score)
				assert.NotNil(t, after.Ship)
			},
		},
		{
			name: "unknown messages are skipped",
			messages: func(t *testing.T) []interface{} {
				return []interface{}{
					"not a message",
					&messages.Message{ClientID: 1, Type: "xyz"},
					&messages.Message{ClientID: 1, Type: messages.MessageTypeClientPause, Payload: []byte("{")},
					newTestMessage(t, messages.MessageTypeClientPause, messages.ClientPause{Paused: true}),
				}
			},
			check: func(t *testing.T, before, after *types.GameState) {
				assert.True(t, after.Paused)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueue := mocks.NewMockQueue(t)
			gm := newTestGameManager(t, mockQueue)
			if tt.setup != nil {
				tt.setup(gm.gameState)
			}
			before := gm.gameState

			mockQueue.EXPECT().ReadAllMessages().Return(tt.messages(t), nil).Once()
			gm.processClientMessages()

			tt.check(t, before, gm.gameState)
		})
	}
}

func TestGameManager_processClientMessages_queueError(t *testing.T) {
	mockQueue := mocks.NewMockQueue(t)
	gm := newTestGameManager(t, mockQueue)

	mockQueue.EXPECT().ReadAllMessages().Return(nil, errors.New("boom")).Once()
	gm.processClientMessages()

	assert.Equal(t, types.ShipInput{}, gm.gameState.Ship.Input)
}

func TestGameManager_updateShip(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	gs.Ship.ApplyInput(1, types.ShipInput{Rotate: 1, Accelerate: true, Shoot: true})

	require.NoError(t, gm.updateShip(0.5))

	ship, ok := gs.World.Body(gs.Ship.BodyID)
	require.True(t, ok)
	assert.InDelta(t, constants.ShipRotationRate*0.5, ship.Orientation, 1e-9)
	assert.InDelta(t, constants.ShipAcceleration, ship.Acceleration.Length(), 1e-9)
	assert.Equal(t, constants.ShipReloadTime, gs.Ship.ReloadTimer)

	require.Equal(t, 1, gs.CountKind(types.EntityKindBullet))
	for id, entity := range gs.Entities {
		if entity.Kind != types.EntityKindBullet {
			continue
		}
		assert.True(t, entity.Deferred)
		assert.Equal(t, constants.BulletTimeToLive, entity.TTL)
		bullet, ok := gs.World.Body(id)
		require.True(t, ok)
		assert.InDelta(t, constants.ShipBulletVelocity, bullet.Velocity.Length(), 1e-9)
		assert.InDelta(t, 0, bullet.Velocity.Cross(kinematic.FromAngle(ship.Orientation)), 1e-9)
		assert.LessOrEqual(t, bullet.Position.Sub(ship.Position).Length(), constants.ShipBulletJitter/2)
	}

	// still reloading
	require.NoError(t, gm.updateShip(constants.ShipReloadTime/2))
	assert.Equal(t, 1, gs.CountKind(types.EntityKindBullet))
}

func TestGameManager_clampShipVelocity(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	ship, ok := gm.gameState.World.Body(gm.gameState.Ship.BodyID)
	require.True(t, ok)
	ship.Velocity = kinematic.Vector{X: 300, Y: 400}

	gm.clampShipVelocity()

	assert.InDelta(t, constants.ShipMaxVelocity, ship.Velocity.Length(), 1e-9)
	assert.InDelta(t, 0.75, ship.Velocity.Y/ship.Velocity.X, 1e-9)
}

func TestGameManager_expireBullets(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	young := addTestEntity(t, gs, types.EntityKindBullet, kinematic.Vector{X: 10, Y: 10}, kinematic.Vector{}, constants.BulletRadius, false)
	young.TTL = 1
	old := addTestEntity(t, gs, types.EntityKindBullet, kinematic.Vector{X: 20, Y: 10}, kinematic.Vector{}, constants.BulletRadius, false)
	old.TTL = 0.1

	gm.expireBullets(0.5)

	assert.Contains(t, gs.Entities, young.ID)
	assert.NotContains(t, gs.Entities, old.ID)
	_, ok := gs.World.Body(old.ID)
	assert.False(t, ok)
}

func TestGameManager_spawnAsteroids(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState

	require.NoError(t, gm.spawnAsteroids(constants.AsteroidFirstSpawnTime/2))
	assert.Zero(t, gs.CountKind(types.EntityKindAsteroid))

	require.NoError(t, gm.spawnAsteroids(constants.AsteroidFirstSpawnTime/2))
	require.Equal(t, 1, gs.CountKind(types.EntityKindAsteroid))
	assert.LessOrEqual(t, gs.SpawnTimer, constants.AsteroidAverageSpawnTime)

	for id, entity := range gs.Entities {
		if entity.Kind != types.EntityKindAsteroid {
			continue
		}
		assert.False(t, entity.Deferred)
		body, ok := gs.World.Body(id)
		require.True(t, ok)
		assert.Equal(t, constants.ArenaHeight, body.Position.Y)
		assert.GreaterOrEqual(t, body.Radius, constants.AsteroidMinRadius)
		assert.LessOrEqual(t, body.Radius, constants.AsteroidMinRadius*constants.AsteroidMaxScale)
		assert.LessOrEqual(t, body.Velocity.Length(), constants.AsteroidMaxVelocity*2)
	}
}

func TestFragmentCount(t *testing.T) {
	minArea := math.Pi * constants.AsteroidMinRadius * constants.AsteroidMinRadius
	tests := []struct {
		name string
		area float64
		want int
	}{
		{name: "zero", area: 0, want: 0},
		{name: "single minimum asteroid", area: minArea, want: 0},
		{name: "exactly twice the minimum", area: 2 * minArea, want: 0},
		{name: "just over twice the minimum", area: 2*minArea + 1, want: 1},
		{name: "largest spawned asteroid", area: 4*minArea - 1, want: 2},
		{name: "two large asteroids", area: 8*minArea - 1, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FragmentCount(tt.area))
		})
	}
}

func TestGameManager_handleCollisions_bulletHitsAsteroid(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	bullet := addTestEntity(t, gs, types.EntityKindBullet, kinematic.Vector{X: 50, Y: 50}, kinematic.Vector{}, constants.BulletRadius, false)
	asteroid := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 58, Y: 50}, kinematic.Vector{}, 8, false)

	require.NoError(t, gm.handleCollisions())

	assert.Equal(t, int64(1), gs.Score)
	assert.NotContains(t, gs.Entities, bullet.ID)
	assert.NotContains(t, gs.Entities, asteroid.ID)
	require.Equal(t, 2, gs.CountKind(types.EntityKindAsteroid))
	for id, entity := range gs.Entities {
		if entity.Kind != types.EntityKindAsteroid {
			continue
		}
		assert.True(t, entity.Deferred)
		fragment, ok := gs.World.Body(id)
		require.True(t, ok)
		assert.InDelta(t, 58, fragment.Position.X, 1e-9)
		assert.InDelta(t, 50, fragment.Position.Y, 1e-9)
		assert.Equal(t, constants.AsteroidMinRadius, fragment.Radius)
		assert.LessOrEqual(t, fragment.Velocity.Length(), constants.FragmentMaxSpeed)
	}
	assert.False(t, gs.Modifiers.PlayerIsDead)
}

func TestGameManager_handleCollisions_asteroidsBounce(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	a := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 50, Y: 50}, kinematic.Vector{X: 10}, 4, false)
	b := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 57, Y: 50}, kinematic.Vector{X: -10}, 4, false)

	require.NoError(t, gm.handleCollisions())

	bodyA, ok := gs.World.Body(a.ID)
	require.True(t, ok)
	bodyB, ok := gs.World.Body(b.ID)
	require.True(t, ok)
	assert.InDelta(t, -10*constants.Restitution, bodyA.Velocity.X, 1e-9)
	assert.InDelta(t, 10*constants.Restitution, bodyB.Velocity.X, 1e-9)
	assert.InDelta(t, 0, bodyA.Momentum().Add(bodyB.Momentum()).X, 1e-9)
	// equal masses each take half of the corrected overlap
	assert.InDelta(t, 7+constants.PositionCorrection, bodyB.Position.X-bodyA.Position.X, 1e-9)
	assert.Zero(t, gs.Score)
	assert.Equal(t, 2, gs.CountKind(types.EntityKindAsteroid))
}

func TestGameManager_handleCollisions_ship(t *testing.T) {
	tests := []struct {
		name     string
		immortal bool
	}{
		{name: "mortal ship dies", immortal: false},
		{name: "immortal ship survives", immortal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveRunChan := make(chan workers.SaveRunRequest, 1)
			gm := newTestGameManager(t, mocks.NewMockQueue(t))
			gm.saveRunChan = saveRunChan
			gs := gm.gameState
			gs.Modifiers.PlayerIsImmortal = tt.immortal
			gs.Timestamp = 1234
			shipID := gs.Ship.BodyID
			asteroid := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 158, Y: 150}, kinematic.Vector{}, 4, false)

			require.NoError(t, gm.handleCollisions())

			assert.NotContains(t, gs.Entities, asteroid.ID)
			assert.Equal(t, !tt.immortal, gs.Modifiers.PlayerIsDead)
			if tt.immortal {
				assert.Contains(t, gs.Entities, shipID)
				assert.NotNil(t, gs.Ship)
				assert.Empty(t, saveRunChan)
				return
			}

			assert.NotContains(t, gs.Entities, shipID)
			assert.Nil(t, gs.Ship)
			require.Len(t, saveRunChan, 1)
			request := <-saveRunChan
			assert.Equal(t, gs.RunID, request.Run.ID)
			require.NotNil(t, request.Run.EndedAt)
			assert.Equal(t, int64(1234), *request.Run.EndedAt)
		})
	}
}

func TestGameManager_handleCollisions_deferred(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	overlapping := addTestEntity(t, gs, types.EntityKindBullet, kinematic.Vector{X: 50, Y: 50}, kinematic.Vector{}, constants.BulletRadius, true)
	asteroid := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 53, Y: 50}, kinematic.Vector{}, 4, false)
	free := addTestEntity(t, gs, types.EntityKindBullet, kinematic.Vector{X: 100, Y: 50}, kinematic.Vector{}, constants.BulletRadius, true)

	require.NoError(t, gm.handleCollisions())

	assert.Zero(t, gs.Score)
	require.Contains(t, gs.Entities, overlapping.ID)
	require.Contains(t, gs.Entities, asteroid.ID)
	require.Contains(t, gs.Entities, free.ID)
	assert.True(t, gs.Entities[overlapping.ID].Deferred)
	assert.False(t, gs.Entities[free.ID].Deferred)

	// once apart the bullet becomes solid
	body, ok := gs.World.Body(overlapping.ID)
	require.True(t, ok)
	body.Position = kinematic.Vector{X: 20, Y: 20}
	require.NoError(t, gm.handleCollisions())
	assert.False(t, gs.Entities[overlapping.ID].Deferred)
}

func TestGameManager_gameTick(t *testing.T) {
	mockQueue := mocks.NewMockQueue(t)
	gameUpdateChan := make(chan *messages.ServerGameUpdate, 1)
	stateManager := state.NewInMemoryStateManager()
	gm, err := NewGameManager(NewGameManagerOptions{
		ClientMessageQueue: mockQueue,
		StateManager:       stateManager,
		GameUpdateChan:     gameUpdateChan,
		Seed:               1,
		GameLoopInterval:   time.Second / 60,
	})
	require.NoError(t, err)

	mockQueue.EXPECT().ReadAllMessages().Return(nil, nil).Once()
	now := time.UnixMilli(5000)
	require.NoError(t, gm.gameTick(context.Background(), now))

	snapshot, err := stateManager.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snapshot.Tick)
	assert.Equal(t, int64(5000), snapshot.Timestamp)
	assert.Equal(t, gm.gameState.RunID, snapshot.RunID)

	require.Len(t, gameUpdateChan, 1)
	update := <-gameUpdateChan
	assert.Equal(t, uint64(1), update.Tick)
	assert.Equal(t, gm.gameState.RunID.String(), update.RunID)
	assert.Equal(t, uint32(gm.gameState.Ship.BodyID), update.ShipBodyID)
	assert.Len(t, update.Bodies, 1)

	// a paused arena still publishes but does not advance
	gm.gameState.Paused = true
	mockQueue.EXPECT().ReadAllMessages().Return(nil, nil).Once()
	require.NoError(t, gm.gameTick(context.Background(), now.Add(time.Second)))
	update = <-gameUpdateChan
	assert.Equal(t, uint64(1), update.Tick)
	assert.True(t, update.Paused)
}

func TestGameManager_Start(t *testing.T) {
	mockQueue := mocks.NewMockQueue(t)
	mockQueue.EXPECT().ReadAllMessages().Return(nil, nil).Maybe()
	gm := newTestGameManager(t, mockQueue)
	gm.gameLoopInterval = time.Millisecond

	done := make(chan error, 1)
	go func() {
		done <- gm.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		snapshot, err := gm.stateManager.Get(context.Background())
		return err == nil && snapshot.Tick > 0
	}, time.Second, time.Millisecond)

	gm.Stop()
	gm.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("game loop did not stop")
	}
}

func TestServerGameUpdateFromSnapshot(t *testing.T) {
	gm := newTestGameManager(t, mocks.NewMockQueue(t))
	gs := gm.gameState
	gs.Score = 3
	gs.Modifiers.PlayerIsImmortal = true
	asteroid := addTestEntity(t, gs, types.EntityKindAsteroid, kinematic.Vector{X: 10, Y: 20}, kinematic.Vector{X: 1, Y: 2}, 5, true)

	update := ServerGameUpdateFromSnapshot(gs.Snapshot())

	assert.Equal(t, int64(3), update.Score)
	assert.True(t, update.PlayerIsImmortal)
	require.Len(t, update.Bodies, 2)
	assert.Equal(t, messages.BodyUpdate{
		ID:       uint32(asteroid.ID),
		Kind:     uint8(types.EntityKindAsteroid),
		Deferred: true,
		Position: kinematic.Vector{X: 10, Y: 20},
		Velocity: kinematic.Vector{X: 1, Y: 2},
		Mass:     physics.AreaMass(5, constants.Density),
		Radius:   5,
	}, update.Bodies[1])
}

func TestGameManager_deterministic(t *testing.T) {
	run := func(t *testing.T) *types.GameState {
		gm, err := NewGameManager(NewGameManagerOptions{
			ClientMessageQueue: mocks.NewMockQueue(t),
			StateManager:       state.NewInMemoryStateManager(),
			Seed:               7,
			GameLoopInterval:   time.Second / 60,
		})
		require.NoError(t, err)

		for i := 0; i < 600; i++ {
			gs := gm.gameState
			if gs.Ship != nil && !gs.Modifiers.PlayerIsDead {
				gs.Ship.ApplyInput(int64(i), types.ShipInput{
					Rotate:     float64(i/40%3 - 1),
					Accelerate: i%50 < 10,
					Shoot:      true,
				})
			}
			require.NoError(t, gm.simulate(1.0/60))
		}
		return gm.gameState
	}

	a := run(t)
	b := run(t)

	asteroids := 0
	for _, entity := range a.Entities {
		if entity.Kind == types.EntityKindAsteroid {
			asteroids++
		}
	}
	assert.Positive(t, int64(asteroids)+a.Score)

	assert.Equal(t, a.Tick, b.Tick)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Modifiers, b.Modifiers)
	assert.Equal(t, a.Snapshot().Bodies, b.Snapshot().Bodies)
}
