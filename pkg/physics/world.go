package physics

import (
	"fmt"
	"sort"
)

// World holds the rigid-body components of a simulation.
// Bodies are stored densely and sorted by id.
// A World is not safe for concurrent use; the tick loop that owns it has
// exclusive access for the duration of a tick.
type World struct {
	bodies []Body
	index  map[BodyID]int
	nextID BodyID
}

func NewWorld() *World {
	return &World{
		bodies: make([]Body, 0),
		index:  make(map[BodyID]int),
		nextID: 1,
	}
}

// Spawn validates def, assigns it the next free id and adds it to the world.
func (w *World) Spawn(def BodyDef) (BodyID, error) {
	body, err := NewBody(def)
	if err != nil {
		return 0, fmt.Errorf("failed to create body: %w", err)
	}
	for {
		if _, ok := w.index[w.nextID]; !ok && w.nextID != 0 {
			break
		}
		w.nextID++
	}
	body.ID = w.nextID
	w.nextID++
	w.insert(body)
	return body.ID, nil
}

// Insert adds a body with an explicit id.
func (w *World) Insert(body Body) error {
	if _, ok := w.index[body.ID]; ok {
		return fmt.Errorf("body %d: %w", body.ID, ErrDuplicateBody)
	}
	validated, err := NewBody(BodyDef{
		Position:        body.Position,
		Velocity:        body.Velocity,
		Acceleration:    body.Acceleration,
		Orientation:     body.Orientation,
		AngularVelocity: body.AngularVelocity,
		Mass:            body.Mass,
		Radius:          body.Radius,
		Inertia:         body.Inertia,
	})
	if err != nil {
		return fmt.Errorf("body %d: %w", body.ID, err)
	}
	validated.ID = body.ID
	w.insert(validated)
	if body.ID >= w.nextID {
		w.nextID = body.ID + 1
	}
	return nil
}

func (w *World) insert(body Body) {
	i := sort.Search(len(w.bodies), func(i int) bool {
		return w.bodies[i].ID >= body.ID
	})
	w.bodies = append(w.bodies, Body{})
	copy(w.bodies[i+1:], w.bodies[i:])
	w.bodies[i] = body
	w.reindex(i)
}

// Remove deletes a body and reports whether it existed.
func (w *World) Remove(id BodyID) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	delete(w.index, id)
	w.reindex(i)
	return true
}

func (w *World) reindex(from int) {
	for i := from; i < len(w.bodies); i++ {
		w.index[w.bodies[i].ID] = i
	}
}

// Body returns a pointer to the body with the given id.
// The pointer is invalidated by the next Spawn, Insert or Remove.
func (w *World) Body(id BodyID) (*Body, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return &w.bodies[i], true
}

// Bodies returns the body component array sorted by id.
// Elements may be modified in place; the slice must not be resized.
func (w *World) Bodies() []Body {
	return w.bodies
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := &World{
		bodies: make([]Body, len(w.bodies)),
		index:  make(map[BodyID]int, len(w.index)),
		nextID: w.nextID,
	}
	copy(c.bodies, w.bodies)
	for id, i := range w.index {
		c.index[id] = i
	}
	return c
}
