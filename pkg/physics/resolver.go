package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/asteroids/pkg/kinematic"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidRestitution is returned when the restitution coefficient is outside [0, 1]
	ErrInvalidRestitution = errors.New("restitution must be within [0, 1]")
	// ErrInvalidCorrection is returned when the position correction factor is outside [0, 1]
	ErrInvalidCorrection = errors.New("position correction must be within [0, 1]")
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Restitution is 0 for perfectly inelastic and 1 for perfectly elastic collisions
	Restitution float64
	// BroadPhase defaults to a brute force pass
	BroadPhase BroadPhase
	// Workers bounds how many goroutines compute pair impulses
	Workers int
	// PositionCorrection is the fraction of the penetration removed per tick.
	// Zero disables positional correction.
	PositionCorrection float64
	// Slop is the penetration tolerated before positional correction applies
	Slop float64
}

// Stats counts what happened to the pairs of a resolution pass.
type Stats struct {
	Pairs      int
	Resolved   int
	Separating int
	Skipped    int
}

// Resolver detects collisions and applies restitution impulses.
type Resolver struct {
	restitution float64
	broadPhase  BroadPhase
	workers     int
	correction  float64
	slop        float64
}

func NewResolver(opts ResolverOptions) (*Resolver, error) {
	if !kinematic.IsFinite(opts.Restitution) || opts.Restitution < 0 || opts.Restitution > 1 {
		return nil, fmt.Errorf("restitution %v: %w", opts.Restitution, ErrInvalidRestitution)
	}
	if !kinematic.IsFinite(opts.PositionCorrection) || opts.PositionCorrection < 0 || opts.PositionCorrection > 1 {
		return nil, fmt.Errorf("position correction %v: %w", opts.PositionCorrection, ErrInvalidCorrection)
	}

	broadPhase := opts.BroadPhase
	if broadPhase == nil {
		broadPhase = NewBruteForceBroadPhase()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	slop := opts.Slop
	if !kinematic.IsFinite(slop) || slop < 0 {
		slop = 0
	}

	return &Resolver{
		restitution: opts.Restitution,
		broadPhase:  broadPhase,
		workers:     workers,
		correction:  opts.PositionCorrection,
		slop:        slop,
	}, nil
}

// Restitution returns the restitution coefficient of the resolver.
func (r *Resolver) Restitution() float64 {
	return r.restitution
}

// Detect returns the overlapping pairs of the world sorted by (A, B).
func (r *Resolver) Detect(world *World) []CollisionPair {
	return Detect(world, r.broadPhase)
}

// Resolve detects all collisions in the world and resolves them.
func (r *Resolver) Resolve(world *World) ([]CollisionPair, Stats) {
	pairs := r.Detect(world)
	return pairs, r.ResolvePairs(world, pairs)
}

type impulseStatus uint8

const (
	impulseApplied impulseStatus = iota
	impulseSeparating
	impulseSkipped
)

type pairImpulse struct {
	status     impulseStatus
	velocityA  kinematic.Vector
	velocityB  kinematic.Vector
	angularA   float64
	angularB   float64
	correction kinematic.Vector
}

type bodyDelta struct {
	velocity kinematic.Vector
	angular  float64
	position kinematic.Vector
}

// ResolvePairs applies collision impulses for the given pairs.
// Every impulse is computed from the velocities at the start of the call and
// accumulated per body before being applied, so the outcome depends only on
// the pair order and not on the number of workers.
func (r *Resolver) ResolvePairs(world *World, pairs []CollisionPair) Stats {
	stats := Stats{Pairs: len(pairs)}
	if len(pairs) == 0 {
		return stats
	}

	impulses := make([]pairImpulse, len(pairs))
	r.computeImpulses(world, pairs, impulses)

	deltas := make(map[BodyID]*bodyDelta)
	accumulate := func(id BodyID) *bodyDelta {
		d, ok := deltas[id]
		if !ok {
			d = &bodyDelta{}
			deltas[id] = d
		}
		return d
	}

	for i, impulse := range impulses {
		switch impulse.status {
		case impulseSeparating:
			stats.Separating++
			continue
		case impulseSkipped:
			stats.Skipped++
			continue
		}
		stats.Resolved++

		a := accumulate(pairs[i].A)
		a.velocity = a.velocity.Add(impulse.velocityA)
		a.angular += impulse.angularA
		b := accumulate(pairs[i].B)
		b.velocity = b.velocity.Add(impulse.velocityB)
		b.angular += impulse.angularB

		if r.correction > 0 {
			bodyA, _ := world.Body(pairs[i].A)
			bodyB, _ := world.Body(pairs[i].B)
			a.position = a.position.Sub(impulse.correction.Scale(bodyA.InverseMass()))
			b.position = b.position.Add(impulse.correction.Scale(bodyB.InverseMass()))
		}
	}

	for id, d := range deltas {
		body, ok := world.Body(id)
		if !ok {
			continue
		}
		velocity := body.Velocity.Add(d.velocity)
		angular := body.AngularVelocity + d.angular
		position := body.Position.Add(d.position)
		if !velocity.IsFinite() || !kinematic.IsFinite(angular) || !position.IsFinite() {
			continue
		}
		body.Velocity = velocity
		body.AngularVelocity = angular
		body.Position = position
	}

	return stats
}

func (r *Resolver) computeImpulses(world *World, pairs []CollisionPair, impulses []pairImpulse) {
	if r.workers == 1 || len(pairs) < 2 {
		for i := range pairs {
			impulses[i] = r.computeImpulse(world, pairs[i])
		}
		return
	}

	chunk := (len(pairs) + r.workers - 1) / r.workers
	g := new(errgroup.Group)
	g.SetLimit(r.workers)
	for start := 0; start < len(pairs); start += chunk {
		start := start
		end := min(start+chunk, len(pairs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				impulses[i] = r.computeImpulse(world, pairs[i])
			}
			return nil
		})
	}
	// computeImpulse never fails
	_ = g.Wait()
}

// computeImpulse only reads from the world.
func (r *Resolver) computeImpulse(world *World, pair CollisionPair) pairImpulse {
	if pair.Degenerate() {
		return pairImpulse{status: impulseSkipped}
	}
	a, ok := world.Body(pair.A)
	if !ok {
		return pairImpulse{status: impulseSkipped}
	}
	b, ok := world.Body(pair.B)
	if !ok {
		return pairImpulse{status: impulseSkipped}
	}

	n := pair.Normal
	rA := pair.Contact.Sub(a.Position)
	rB := pair.Contact.Sub(b.Position)

	relative := b.PointVelocity(rB).Sub(a.PointVelocity(rA))
	vn := relative.Dot(n)
	if vn >= 0 {
		return pairImpulse{status: impulseSeparating}
	}

	rAxN := rA.Cross(n)
	rBxN := rB.Cross(n)
	invMassSum := a.InverseMass() + b.InverseMass() +
		rAxN*rAxN*a.InverseInertia() +
		rBxN*rBxN*b.InverseInertia()
	if invMassSum <= 0 || !kinematic.IsFinite(invMassSum) {
		return pairImpulse{status: impulseSkipped}
	}

	j := -(1 + r.restitution) * vn / invMassSum
	if !kinematic.IsFinite(j) {
		return pairImpulse{status: impulseSkipped}
	}

	impulse := pairImpulse{
		status:    impulseApplied,
		velocityA: n.Scale(-j * a.InverseMass()),
		velocityB: n.Scale(j * b.InverseMass()),
		angularA:  -rAxN * j * a.InverseInertia(),
		angularB:  rBxN * j * b.InverseInertia(),
	}

	if r.correction > 0 {
		penetration := math.Max(pair.Depth-r.slop, 0)
		magnitude := penetration / (a.InverseMass() + b.InverseMass()) * r.correction
		impulse.correction = n.Scale(magnitude)
	}

	return impulse
}
