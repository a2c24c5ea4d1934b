package sim

import (
	"image/color"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// FlockActor owns the authoritative flock state. Every mutation — ticking,
// destination changes, resets — arrives through its mailbox, so an update
// step can never interleave with an add or a clear.
type FlockActor struct {
	flock      *flock.Flock
	cfg        *flock.Config
	snapshotCh chan<- *pb.FlockSnapshot
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the simulation logic unit. The snapshot channel
// carries the render-facing state to the UI; rng may be nil for an
// OS-seeded source.
func NewFlockActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *flock.Config, rng *rand.Rand) *FlockActor {
	return &FlockActor{
		flock:      flock.New(cfg, rng),
		cfg:        cfg,
		snapshotCh: snapshotCh,
	}
}

func (a *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Flock is gathering...")
	return nil
}

func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		a.flock.Populate(a.cfg.NumBoids, a.cfg.WorldWidth, a.cfg.WorldHeight)
		ctx.Logger().Infof("Flock started with %d boids", a.flock.Len())

	// The main simulation step, driven by the game loop.
	case *pb.Tick:
		a.flock.Update()
		a.pushSnapshot()

	case *pb.SetDestination:
		a.flock.SetDestination(geometry.Vector2D{X: msg.GetX(), Y: msg.GetY()})

	case *pb.ResetFlock:
		a.flock.Clear()
		a.flock.Populate(a.cfg.NumBoids, a.cfg.WorldWidth, a.cfg.WorldHeight)
		ctx.Logger().Infof("Flock reset: %d boids reseeded", a.flock.Len())

	default:
		ctx.Unhandled()
	}
}

func (a *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Flock is dispersing...")
	return nil
}

func (a *FlockActor) pushSnapshot() {
	select {
	case a.snapshotCh <- a.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (a *FlockActor) buildSnapshot() *pb.FlockSnapshot {
	dest := a.flock.Destination()
	snap := &pb.FlockSnapshot{
		Boids: make([]*pb.BoidState, 0, a.flock.Len()),
		DestX: dest.X,
		DestY: dest.Y,
	}
	for _, b := range a.flock.Boids() {
		snap.Boids = append(snap.Boids, &pb.BoidState{
			PositionX: b.Pos.X,
			PositionY: b.Pos.Y,
			VelocityX: b.Vel.X,
			VelocityY: b.Vel.Y,
			Radius:    b.Radius,
			Color:     packColor(b.Color),
		})
	}
	return snap
}

// packColor packs an RGBA color into the 0xRRGGBBAA wire representation.
func packColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// unpackColor is the inverse of packColor.
func unpackColor(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
