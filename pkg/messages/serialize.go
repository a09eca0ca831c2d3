package messages

import (
	"fmt"

	snapshotfb "github.com/cbodonnell/asteroids/flatbuffers/snapshot"
	"github.com/cbodonnell/asteroids/pkg/kinematic"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

var (
	// encoder and decoder are safe for concurrent use through EncodeAll and DecodeAll
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
)

// SerializeGameUpdate encodes a game update as a zstd compressed flatbuffer.
func SerializeGameUpdate(update *ServerGameUpdate) ([]byte, error) {
	b, err := SerializeGameUpdateFlatbuffer(update)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game update: %v", err)
	}
	return encoder.EncodeAll(b, make([]byte, 0, len(b))), nil
}

// DeserializeGameUpdate decodes a game update produced by SerializeGameUpdate.
func DeserializeGameUpdate(data []byte) (*ServerGameUpdate, error) {
	b, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress game update: %v", err)
	}

	update, err := DeserializeGameUpdateFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game update: %v", err)
	}

	return update, nil
}

func SerializeGameUpdateFlatbuffer(update *ServerGameUpdate) ([]byte, error) {
	if update == nil {
		return nil, fmt.Errorf("game update is nil")
	}

	builder := flatbuffers.NewBuilder(64 + 96*len(update.Bodies))

	runID := builder.CreateString(update.RunID)

	bodies := make([]flatbuffers.UOffsetT, len(update.Bodies))
	for i := range update.Bodies {
		bodies[i] = serializeBodyFlatbuffer(builder, &update.Bodies[i])
	}
	snapshotfb.GameUpdateStartBodiesVector(builder, len(bodies))
	for i := len(bodies) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(bodies[i])
	}
	bodyVector := builder.EndVector(len(bodies))

	snapshotfb.GameUpdateStart(builder)
	snapshotfb.GameUpdateAddTimestamp(builder, update.Timestamp)
	snapshotfb.GameUpdateAddTick(builder, update.Tick)
	snapshotfb.GameUpdateAddRunId(builder, runID)
	snapshotfb.GameUpdateAddScore(builder, update.Score)
	snapshotfb.GameUpdateAddPaused(builder, update.Paused)
	snapshotfb.GameUpdateAddPlayerIsImmortal(builder, update.PlayerIsImmortal)
	snapshotfb.GameUpdateAddPlayerIsDead(builder, update.PlayerIsDead)
	snapshotfb.GameUpdateAddShipBodyId(builder, update.ShipBodyID)
	snapshotfb.GameUpdateAddBodies(builder, bodyVector)
	gameUpdate := snapshotfb.GameUpdateEnd(builder)
	snapshotfb.FinishGameUpdateBuffer(builder, gameUpdate)

	return builder.FinishedBytes(), nil
}

func serializeBodyFlatbuffer(builder *flatbuffers.Builder, body *BodyUpdate) flatbuffers.UOffsetT {
	snapshotfb.BodyStart(builder)
	snapshotfb.BodyAddId(builder, body.ID)
	snapshotfb.BodyAddKind(builder, snapshotfb.Kind(body.Kind))
	snapshotfb.BodyAddDeferred(builder, body.Deferred)
	snapshotfb.BodyAddX(builder, body.Position.X)
	snapshotfb.BodyAddY(builder, body.Position.Y)
	snapshotfb.BodyAddVx(builder, body.Velocity.X)
	snapshotfb.BodyAddVy(builder, body.Velocity.Y)
	snapshotfb.BodyAddOrientation(builder, body.Orientation)
	snapshotfb.BodyAddAngularVelocity(builder, body.AngularVelocity)
	snapshotfb.BodyAddMass(builder, body.Mass)
	snapshotfb.BodyAddRadius(builder, body.Radius)
	return snapshotfb.BodyEnd(builder)
}

// DeserializeGameUpdateFlatbuffer reads a game update flatbuffer.
// Truncated or corrupt buffers are reported as errors.
func DeserializeGameUpdateFlatbuffer(b []byte) (update *ServerGameUpdate, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("buffer too short: %d bytes", len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			update = nil
			err = fmt.Errorf("malformed game update: %v", r)
		}
	}()

	fb := snapshotfb.GetRootAsGameUpdate(b, 0)
	// every body takes at least its offset in the vector
	bodiesLength := fb.BodiesLength()
	if bodiesLength < 0 || bodiesLength > len(b)/flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("malformed game update: %d bodies in %d bytes", bodiesLength, len(b))
	}
	update = &ServerGameUpdate{
		Timestamp:        fb.Timestamp(),
		Tick:             fb.Tick(),
		RunID:            string(fb.RunId()),
		Score:            fb.Score(),
		Paused:           fb.Paused(),
		PlayerIsImmortal: fb.PlayerIsImmortal(),
		PlayerIsDead:     fb.PlayerIsDead(),
		ShipBodyID:       fb.ShipBodyId(),
		Bodies:           make([]BodyUpdate, bodiesLength),
	}

	body := &snapshotfb.Body{}
	for i := range update.Bodies {
		if !fb.Bodies(body, i) {
			continue
		}
		update.Bodies[i] = BodyUpdate{
			ID:              body.Id(),
			Kind:            uint8(body.Kind()),
			Deferred:        body.Deferred(),
			Position:        kinematic.Vector{X: body.X(), Y: body.Y()},
			Velocity:        kinematic.Vector{X: body.Vx(), Y: body.Vy()},
			Orientation:     body.Orientation(),
			AngularVelocity: body.AngularVelocity(),
			Mass:            body.Mass(),
			Radius:          body.Radius(),
		}
	}

	return update, nil
}
