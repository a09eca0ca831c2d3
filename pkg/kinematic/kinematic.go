package kinematic

// This package includes the 2D vector type shared by the simulation and
// vector forms of the kinematic equations.

import (
	"math"
)

// Vector is a 2D vector.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromAngle returns the unit heading for an orientation in radians.
// An orientation of 0 points along +Y.
func FromAngle(angle float64) Vector {
	return Vector{X: -math.Sin(angle), Y: math.Cos(angle)}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity Vector, time float64, acceleration Vector) Vector {
	return initialVelocity.Scale(time).Add(acceleration.Scale(0.5 * math.Pow(time, 2)))
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity Vector, time float64, acceleration Vector) Vector {
	return initialVelocity.Add(acceleration.Scale(time))
}
