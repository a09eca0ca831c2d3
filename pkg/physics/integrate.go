package physics

import "github.com/cbodonnell/asteroids/pkg/kinematic"

// Bounds is the rectangular arena [0, Width) x [0, Height).
type Bounds struct {
	Width  float64
	Height float64
}

// Integrate advances every body by dt seconds using its velocity,
// acceleration and angular velocity.
func Integrate(world *World, dt float64) {
	bodies := world.Bodies()
	for i := range bodies {
		b := &bodies[i]
		b.Position = b.Position.Add(kinematic.Displacement(b.Velocity, dt, b.Acceleration))
		b.Velocity = kinematic.FinalVelocity(b.Velocity, dt, b.Acceleration)
		b.Orientation += b.AngularVelocity * dt
	}
}

// Wrap moves bodies that left the arena to the opposite side.
func Wrap(world *World, bounds Bounds) {
	bodies := world.Bodies()
	for i := range bodies {
		p := &bodies[i].Position
		if p.X < 0 {
			p.X += bounds.Width
		} else if p.X > bounds.Width {
			p.X -= bounds.Width
		}

		if p.Y < 0 {
			p.Y += bounds.Height
		} else if p.Y > bounds.Height {
			p.Y -= bounds.Height
		}
	}
}
