package messages

import (
	"encoding/json"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
)

const (
	// MessageBufferSize represents the maximum size of a client message
	MessageBufferSize = 1024
)

// MessageType identifies the payload of a Message
type MessageType string

const (
	MessageTypeClientShipInput      MessageType = "csi"
	MessageTypeClientRestart        MessageType = "crs"
	MessageTypeClientPause          MessageType = "cps"
	MessageTypeClientToggleImmortal MessageType = "cim"
	MessageTypeServerGameUpdate     MessageType = "sgu"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	ClientID uint32          `json:"clientID"`
	Type     MessageType     `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

// ClientShipInput is the pilot's control input at Timestamp
type ClientShipInput struct {
	Timestamp  int64   `json:"timestamp"`
	Rotate     float64 `json:"rotate"`
	Accelerate bool    `json:"accelerate"`
	Shoot      bool    `json:"shoot"`
}

// ClientRestart requests a new run once the ship has been destroyed
type ClientRestart struct{}

type ClientPause struct {
	Paused bool `json:"paused"`
}

type ClientToggleImmortal struct{}

// ServerGameUpdate is the per-tick snapshot sent to clients
type ServerGameUpdate struct {
	Timestamp        int64
	Tick             uint64
	RunID            string
	Score            int64
	Paused           bool
	PlayerIsImmortal bool
	PlayerIsDead     bool
	// ShipBodyID is zero when there is no ship
	ShipBodyID uint32
	Bodies     []BodyUpdate
}

type BodyUpdate struct {
	ID              uint32
	Kind            uint8
	Deferred        bool
	Position        kinematic.Vector
	Velocity        kinematic.Vector
	Orientation     float64
	AngularVelocity float64
	Mass            float64
	Radius          float64
}
