package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	// CollisionSpaceTagBody tags the collision objects that mirror rigid bodies
	CollisionSpaceTagBody string = "body"
)

// GridBroadPhase partitions the arena into cells using a resolv.Space.
// Bodies only become candidates when their bounding boxes share a cell.
type GridBroadPhase struct {
	space   *resolv.Space
	objects map[BodyID]*resolv.Object
}

// NewGridBroadPhase creates a grid covering width x height with square cells.
func NewGridBroadPhase(width, height float64, cellSize int) *GridBroadPhase {
	if cellSize < 1 {
		cellSize = 1
	}
	// one spare cell per axis so bodies sitting exactly on the far edge are covered
	columns := int(math.Ceil(width/float64(cellSize))) + 1
	rows := int(math.Ceil(height/float64(cellSize))) + 1
	return &GridBroadPhase{
		space:   resolv.NewSpace(columns*cellSize, rows*cellSize, cellSize, cellSize),
		objects: make(map[BodyID]*resolv.Object),
	}
}

func (g *GridBroadPhase) Candidates(bodies []Body) []Candidate {
	g.sync(bodies)

	seen := make(map[Candidate]struct{})
	candidates := make([]Candidate, 0)
	for i := range bodies {
		obj := g.objects[bodies[i].ID]
		collision := obj.Check(0, 0, CollisionSpaceTagBody)
		if collision == nil {
			continue
		}
		for _, other := range collision.Objects {
			otherID, ok := other.Data.(BodyID)
			if !ok || otherID == bodies[i].ID {
				continue
			}
			c := newCandidate(bodies[i].ID, otherID)
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// sync mirrors the bodies into the collision space.
func (g *GridBroadPhase) sync(bodies []Body) {
	alive := make(map[BodyID]struct{}, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		alive[b.ID] = struct{}{}

		obj, ok := g.objects[b.ID]
		if !ok {
			x, y, size := cellBounds(b)
			obj = resolv.NewObject(x, y, size, size, CollisionSpaceTagBody)
			obj.Data = b.ID
			g.space.Add(obj)
			g.objects[b.ID] = obj
		}
		x, y, size := cellBounds(b)
		obj.Position.X = x
		obj.Position.Y = y
		obj.Size.X = size
		obj.Size.Y = size
		obj.Update()
	}

	for id, obj := range g.objects {
		if _, ok := alive[id]; ok {
			continue
		}
		g.space.Remove(obj)
		delete(g.objects, id)
	}
}

// cellBounds returns the square mirrored into the space for a body.
// resolv registers an object up to Position+Size-1, so the box is padded by
// one unit on each side to keep every cell the circle touches.
func cellBounds(b *Body) (x, y, size float64) {
	return b.Position.X - b.Radius - 1, b.Position.Y - b.Radius - 1, 2*b.Radius + 2
}
