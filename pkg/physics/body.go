package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
)

var (
	// ErrInvalidMass is returned when a body is created with a non-positive or non-finite mass
	ErrInvalidMass = errors.New("mass must be finite and greater than zero")
	// ErrInvalidRadius is returned when a body is created with a non-positive or non-finite radius
	ErrInvalidRadius = errors.New("radius must be finite and greater than zero")
	// ErrNonFinite is returned when a body is created with a NaN or infinite kinematic value
	ErrNonFinite = errors.New("kinematic state must be finite")
	// ErrDuplicateBody is returned when a body id is already present in a world
	ErrDuplicateBody = errors.New("body already exists")
)

// BodyID identifies a body within a World.
// Ids define the order in which simultaneous collisions are resolved.
type BodyID uint32

// Body is a circular rigid body.
type Body struct {
	ID       BodyID
	Position kinematic.Vector
	Velocity kinematic.Vector
	// Acceleration is held constant while the body is integrated
	Acceleration    kinematic.Vector
	Orientation     float64
	AngularVelocity float64
	Mass            float64
	Radius          float64
	// Inertia is the moment of inertia about the center of mass
	Inertia float64
}

// BodyDef describes a body to be created.
// A zero Inertia is replaced by the inertia of a solid disc.
type BodyDef struct {
	Position        kinematic.Vector
	Velocity        kinematic.Vector
	Acceleration    kinematic.Vector
	Orientation     float64
	AngularVelocity float64
	Mass            float64
	Radius          float64
	Inertia         float64
}

// NewBody validates def and returns the body it describes with a zero id.
func NewBody(def BodyDef) (Body, error) {
	if !kinematic.IsFinite(def.Mass) || def.Mass <= 0 {
		return Body{}, fmt.Errorf("mass %v: %w", def.Mass, ErrInvalidMass)
	}
	if !kinematic.IsFinite(def.Radius) || def.Radius <= 0 {
		return Body{}, fmt.Errorf("radius %v: %w", def.Radius, ErrInvalidRadius)
	}
	if !def.Position.IsFinite() {
		return Body{}, fmt.Errorf("position %v: %w", def.Position, ErrNonFinite)
	}
	if !def.Velocity.IsFinite() {
		return Body{}, fmt.Errorf("velocity %v: %w", def.Velocity, ErrNonFinite)
	}
	if !def.Acceleration.IsFinite() {
		return Body{}, fmt.Errorf("acceleration %v: %w", def.Acceleration, ErrNonFinite)
	}
	if !kinematic.IsFinite(def.Orientation) || !kinematic.IsFinite(def.AngularVelocity) {
		return Body{}, fmt.Errorf("orientation %v, angular velocity %v: %w", def.Orientation, def.AngularVelocity, ErrNonFinite)
	}
	if !kinematic.IsFinite(def.Inertia) || def.Inertia < 0 {
		return Body{}, fmt.Errorf("inertia %v: %w", def.Inertia, ErrNonFinite)
	}

	inertia := def.Inertia
	if inertia == 0 {
		inertia = DiscInertia(def.Mass, def.Radius)
	}

	return Body{
		Position:        def.Position,
		Velocity:        def.Velocity,
		Acceleration:    def.Acceleration,
		Orientation:     def.Orientation,
		AngularVelocity: def.AngularVelocity,
		Mass:            def.Mass,
		Radius:          def.Radius,
		Inertia:         inertia,
	}, nil
}

// DiscInertia returns the moment of inertia of a solid disc.
func DiscInertia(mass, radius float64) float64 {
	return 0.5 * mass * radius * radius
}

// AreaMass returns the mass of a disc of the given radius and density.
func AreaMass(radius, density float64) float64 {
	return math.Pi * radius * radius * density
}

// InverseMass returns 1/Mass.
func (b *Body) InverseMass() float64 {
	return 1 / b.Mass
}

// InverseInertia returns 1/Inertia, or 0 when the body has no rotational response.
func (b *Body) InverseInertia() float64 {
	if b.Inertia <= 0 {
		return 0
	}
	return 1 / b.Inertia
}

// Momentum returns the linear momentum of the body.
func (b *Body) Momentum() kinematic.Vector {
	return b.Velocity.Scale(b.Mass)
}

// PointVelocity returns the velocity of a point at offset r from the center of mass.
func (b *Body) PointVelocity(r kinematic.Vector) kinematic.Vector {
	return b.Velocity.Add(r.Perp().Scale(b.AngularVelocity))
}
