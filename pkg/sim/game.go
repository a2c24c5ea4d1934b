package sim

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
)

// Game is the ebiten driver. It owns no simulation state: it forwards
// input to the FlockActor as messages and renders the latest snapshot it
// received back. The destination follows the pointer; R reseeds the flock.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	cfg        *flock.Config

	// Last cursor position seen, so SetDestination is only sent on actual
	// pointer movement.
	lastCursorX int
	lastCursorY int

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the flock actor on the given system and wires the
// snapshot channel between it and the returned Game.
func GetNewGame(ctx context.Context, cfg *flock.Config, system actor.ActorSystem, rng *rand.Rand) *Game {
	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking

	flockActor := NewFlockActor(snapshotCh, cfg, rng)
	flockPID, err := system.Spawn(ctx, "flock", flockActor)
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn flock: %v", err))
	}

	return &Game{
		ctx:         ctx,
		System:      system,
		flockPID:    flockPID,
		snapshotCh:  snapshotCh,
		lastState:   &pb.FlockSnapshot{}, // Avoid nil pointer
		cfg:         cfg,
		lastCursorX: -1,
		lastCursorY: -1,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Forward input events to the actor
	mx, my := ebiten.CursorPosition()
	if mx != g.lastCursorX || my != g.lastCursorY {
		g.lastCursorX, g.lastCursorY = mx, my
		g.System.NoSender().Tell(g.ctx, g.flockPID, &pb.SetDestination{X: float64(mx), Y: float64(my)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.System.NoSender().Tell(g.ctx, g.flockPID, &pb.ResetFlock{})
	}

	// 2. Retrieve latest state (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Trigger the simulation step
	g.System.NoSender().Tell(g.ctx, g.flockPID, &pb.Tick{})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Draw all boids from the last known snapshot
	for _, b := range g.lastState.GetBoids() {
		vector.FillCircle(
			screen,
			float32(b.PositionX),
			float32(b.PositionY),
			float32(b.Radius),
			unpackColor(b.Color),
			true,
		)
	}

	// 2. Destination marker
	vector.StrokeCircle(
		screen,
		float32(g.lastState.GetDestX()),
		float32(g.lastState.GetDestY()),
		6,
		1,
		color.RGBA{R: 255, G: 255, B: 255, A: 180},
		true,
	)

	// 3. Performance stats on the right side
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(g.lastState.GetBoids()),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
