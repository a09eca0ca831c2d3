package physics

import (
	"math"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
)

const (
	// degenerateDistance is the center distance below which no contact normal can be derived
	degenerateDistance = 1e-9
)

// CollisionPair is an overlap between two bodies found during a tick.
type CollisionPair struct {
	A BodyID
	B BodyID
	// Normal is the unit contact normal pointing from A to B.
	// It is zero when the centers coincide.
	Normal kinematic.Vector
	// Depth is the penetration depth along the normal
	Depth float64
	// Contact is the midpoint of the overlap on the line of centers
	Contact kinematic.Vector
}

// Degenerate reports whether the pair has no usable contact normal.
func (p CollisionPair) Degenerate() bool {
	return p.Normal == (kinematic.Vector{})
}

// Involves reports whether id is one of the bodies of the pair.
func (p CollisionPair) Involves(id BodyID) bool {
	return p.A == id || p.B == id
}

// Detect runs the broad phase over the world and returns the exact circle
// overlaps sorted by (A, B).
func Detect(world *World, broadPhase BroadPhase) []CollisionPair {
	candidates := broadPhase.Candidates(world.Bodies())
	sortCandidates(candidates)

	pairs := make([]CollisionPair, 0, len(candidates))
	for _, c := range candidates {
		a, ok := world.Body(c.A)
		if !ok {
			continue
		}
		b, ok := world.Body(c.B)
		if !ok {
			continue
		}
		pair, ok := intersectCircles(a, b)
		if !ok {
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func intersectCircles(a, b *Body) (CollisionPair, bool) {
	delta := b.Position.Sub(a.Position)
	distSquared := delta.LengthSquared()
	radii := a.Radius + b.Radius
	if distSquared >= radii*radii {
		return CollisionPair{}, false
	}

	dist := math.Sqrt(distSquared)
	pair := CollisionPair{
		A:     a.ID,
		B:     b.ID,
		Depth: radii - dist,
	}
	if dist <= degenerateDistance {
		pair.Contact = a.Position
		return pair, true
	}

	pair.Normal = delta.Scale(1 / dist)
	pair.Contact = a.Position.Add(pair.Normal.Scale(a.Radius - pair.Depth/2))
	return pair, true
}
