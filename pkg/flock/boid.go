package flock

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Boid is a single flocking entity: position, velocity and a body radius.
// Fields are exported so the renderer can read them and the flock update
// can write them in place; boids are owned by a Flock and identified by
// their slice index, there is no id field.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D

	// Radius is the body radius, fixed at creation, always > 0.
	// Neighborhood tests use surface-to-surface distance, not center
	// distance, so two fat boids "see" each other sooner than two thin ones.
	Radius float64

	// Color is carried for the renderer only, it has no effect on the
	// simulation.
	Color color.RGBA
}

// Move advances the position by the current velocity (unit timestep).
func (b *Boid) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}
