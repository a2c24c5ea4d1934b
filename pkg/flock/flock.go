package flock

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

const (
	// lenFloor substitutes for the center distance when two boids are
	// coincident, so the separation divisor never reaches zero.
	lenFloor = geometry.Epsilon

	// speedEps pads the clamp divisor; it prevents a divide by zero for a
	// stationary boid and damps oscillation right at the speed boundary.
	speedEps = 0.01
)

// Flock owns a set of boids and the shared destination they are biased
// toward. It is a plain data holder plus a stepping function: no internal
// modes, no goroutines. The caller drives it one Update per frame and must
// not add or clear boids while Update runs.
type Flock struct {
	boids []Boid
	dest  geometry.Vector2D
	cfg   *Config
	rng   *rand.Rand

	// scratch holds the start-of-step copy of the boids so the neighbor
	// scan never observes a velocity written earlier in the same pass.
	// Reused across updates to keep the steady state allocation-free.
	scratch []Boid
}

// New creates an empty flock. A nil cfg falls back to DefaultConfig, a nil
// rng falls back to an OS-seeded source; tests pass a fixed-seed rng to get
// reproducible jitter.
func New(cfg *Config, rng *rand.Rand) *Flock {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Flock{cfg: cfg, rng: rng}
}

// AddBoid appends a boid with zero initial velocity. The radius must be
// positive and the coordinates finite; violating that is a caller bug, not
// a runtime condition the flock recovers from.
func (f *Flock) AddBoid(x, y, radius float64, clr color.RGBA) {
	f.boids = append(f.boids, Boid{
		Pos:    geometry.Vector2D{X: x, Y: y},
		Radius: radius,
		Color:  clr,
	})
}

// SetDestination replaces the shared destination point. Takes effect on
// the next Update.
func (f *Flock) SetDestination(dest geometry.Vector2D) {
	f.dest = dest
}

// Destination returns the current shared destination.
func (f *Flock) Destination() geometry.Vector2D {
	return f.dest
}

// Clear removes all boids. Updating an empty flock is a no-op.
func (f *Flock) Clear() {
	f.boids = f.boids[:0]
}

// Boids exposes the boid storage for the renderer. Callers must not grow
// or shrink it; mutating velocities through it is how the tests seed
// specific states.
func (f *Flock) Boids() []Boid {
	return f.boids
}

// Len returns the number of boids.
func (f *Flock) Len() int {
	return len(f.boids)
}

// Populate seeds n boids at uniform random positions inside a width x
// height world, with a radius in [2, 8) and a random opaque color.
func (f *Flock) Populate(n int, width, height float64) {
	for i := 0; i < n; i++ {
		f.AddBoid(
			f.rng.Float64()*width,
			f.rng.Float64()*height,
			2+f.rng.Float64()*6,
			color.RGBA{
				R: uint8(f.rng.IntN(256)),
				G: uint8(f.rng.IntN(256)),
				B: uint8(f.rng.IntN(256)),
				A: 255,
			},
		)
	}
}

// Update advances the simulation by one step: every velocity is recomputed
// from the start-of-step snapshot of all boids, then every position
// integrates its new velocity. Two passes keep the result independent of
// boid ordering; the O(n²) neighbor scan is deliberate for the intended
// flock sizes.
func (f *Flock) Update() {
	if len(f.boids) == 0 {
		return
	}

	f.scratch = append(f.scratch[:0], f.boids...)
	cfg := f.cfg

	for i := range f.boids {
		me := &f.scratch[i]

		var separation, avgVel, avgPos geometry.Vector2D
		neighbors := 0

		for j := range f.scratch {
			if j == i {
				continue
			}
			other := &f.scratch[j]

			toOther := other.Pos.Sub(me.Pos)
			dist := toOther.Len()
			surface := dist - (me.Radius + other.Radius)
			if surface >= cfg.VisualRange {
				continue
			}

			// Inverse-exponential repulsion: explodes as the surfaces
			// approach or overlap, decays for neighbors near the edge of
			// the visual range. The floored divisor keeps coincident
			// boids finite (toOther is zero there anyway).
			div := dist
			if div < lenFloor {
				div = lenFloor
			}
			separation = separation.Sub(toOther.Mul(1 / (div * math.Pow(2, surface))))

			avgVel = avgVel.Add(other.Vel)
			avgPos = avgPos.Add(other.Pos)
			neighbors++
		}

		toDest := f.dest.Sub(me.Pos).Normalize().Mul(cfg.MaxSpeed)

		vel := me.Vel
		vel = vel.Add(separation.Mul(cfg.AvoidFactor))
		if neighbors > 0 {
			inv := 1 / float64(neighbors)
			avgVel = avgVel.Mul(inv)
			avgPos = avgPos.Mul(inv)
			vel = vel.Add(avgVel.Sub(vel).Mul(cfg.MatchingFactor))
			vel = vel.Add(avgPos.Sub(me.Pos).Mul(cfg.CenteringFactor))
		}
		// Destination is a blend, not an added force: the pull stays
		// gentle and continuous no matter how far the destination is.
		vel = vel.Lerp(toDest, cfg.DestinationBias)

		vel = vel.Add(geometry.Vector2D{
			X: (f.rng.Float64()*2 - 1) * cfg.NoiseStrength,
			Y: (f.rng.Float64()*2 - 1) * cfg.NoiseStrength,
		})

		speed := vel.Len()
		if speed > cfg.MaxSpeed {
			vel = vel.Mul(cfg.MaxSpeed / (speed + speedEps))
		} else if speed < cfg.MinSpeed {
			vel = vel.Mul(cfg.MinSpeed / (speed + speedEps))
		}

		f.boids[i].Vel = vel
	}

	for i := range f.boids {
		f.boids[i].Move()
	}
}
