package physics

import "sort"

// Candidate is a pair of bodies whose bounds may overlap. A < B.
type Candidate struct {
	A BodyID
	B BodyID
}

func newCandidate(a, b BodyID) Candidate {
	if a > b {
		a, b = b, a
	}
	return Candidate{A: a, B: b}
}

// BroadPhase culls body pairs that cannot be touching.
// Candidates may be returned in any order but must not repeat.
type BroadPhase interface {
	Candidates(bodies []Body) []Candidate
}

// BruteForceBroadPhase tests every pair of bounding circles.
type BruteForceBroadPhase struct{}

func NewBruteForceBroadPhase() *BruteForceBroadPhase {
	return &BruteForceBroadPhase{}
}

func (bp *BruteForceBroadPhase) Candidates(bodies []Body) []Candidate {
	candidates := make([]Candidate, 0)
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !circlesOverlap(&bodies[i], &bodies[j]) {
				continue
			}
			candidates = append(candidates, newCandidate(bodies[i].ID, bodies[j].ID))
		}
	}
	return candidates
}

func circlesOverlap(a, b *Body) bool {
	minDist := a.Radius + b.Radius
	return b.Position.Sub(a.Position).LengthSquared() < minDist*minDist
}

func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].A != candidates[j].A {
			return candidates[i].A < candidates[j].A
		}
		return candidates[i].B < candidates[j].B
	})
}
