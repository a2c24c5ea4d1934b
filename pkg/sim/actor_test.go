package sim

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

func TestPackColor_RoundTrip(t *testing.T) {
	colors := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 0},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 12, G: 34, B: 56, A: 78},
	}
	for _, c := range colors {
		if got := unpackColor(packColor(c)); got != c {
			t.Errorf("unpack(pack(%v)) = %v", c, got)
		}
	}
}

func TestFlockActor_buildSnapshot(t *testing.T) {
	cfg := flock.DefaultConfig()
	a := NewFlockActor(nil, cfg, rand.New(rand.NewPCG(1, 2)))

	a.flock.AddBoid(1, 2, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	a.flock.AddBoid(4, 5, 6, color.RGBA{R: 40, G: 50, B: 60, A: 255})
	a.flock.SetDestination(geometry.Vector2D{X: 7, Y: 8})

	snap := a.buildSnapshot()

	if len(snap.Boids) != 2 {
		t.Fatalf("snapshot has %d boids; want 2", len(snap.Boids))
	}
	if snap.DestX != 7 || snap.DestY != 8 {
		t.Errorf("snapshot destination = (%v, %v); want (7, 8)", snap.DestX, snap.DestY)
	}

	b0 := snap.Boids[0]
	if b0.PositionX != 1 || b0.PositionY != 2 || b0.Radius != 3 {
		t.Errorf("boid 0 snapshot = %v; want pos (1,2) radius 3", b0)
	}
	if b0.VelocityX != 0 || b0.VelocityY != 0 {
		t.Errorf("boid 0 velocity = (%v, %v); want zero", b0.VelocityX, b0.VelocityY)
	}
	if got := unpackColor(b0.Color); (got != color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("boid 0 color = %v", got)
	}
}

func TestFlockActor_pushSnapshot(t *testing.T) {
	cfg := flock.DefaultConfig()

	t.Run("Delivered", func(t *testing.T) {
		ch := make(chan *pb.FlockSnapshot, 1)
		a := NewFlockActor(ch, cfg, rand.New(rand.NewPCG(1, 2)))
		a.flock.AddBoid(0, 0, 2, color.RGBA{A: 255})

		a.pushSnapshot()

		select {
		case snap := <-ch:
			if len(snap.Boids) != 1 {
				t.Errorf("snapshot has %d boids; want 1", len(snap.Boids))
			}
		default:
			t.Error("expected a snapshot on the channel")
		}
	})

	t.Run("SkipsWhenBusy", func(t *testing.T) {
		ch := make(chan *pb.FlockSnapshot) // unbuffered, no reader
		a := NewFlockActor(ch, cfg, rand.New(rand.NewPCG(1, 2)))

		a.pushSnapshot() // must not block
	})
}
