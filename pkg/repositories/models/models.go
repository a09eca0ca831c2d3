package models

import "github.com/google/uuid"

// Run is a single life of the ship, from spawn to destruction.
// Times are unix milliseconds.
type Run struct {
	ID        uuid.UUID `json:"id"`
	StartedAt int64     `json:"started_at"`
	// EndedAt is nil while the run is in progress
	EndedAt  *int64 `json:"ended_at,omitempty"`
	Score    int64  `json:"score"`
	Ticks    int64  `json:"ticks"`
	Immortal bool   `json:"immortal"`
}

func (r *Run) Finished() bool {
	return r.EndedAt != nil
}
