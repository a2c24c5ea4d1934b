package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/sim"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	var (
		configFile = flag.String("config", "", "path to a JSON config file (built-in defaults when empty)")
		schemaFile = flag.String("schema", "config.schema.json", "path to the config JSON schema")
		numBoids   = flag.Int("boids", 0, "override the number of boids (0 keeps the config value)")
		seed       = flag.Uint64("seed", 0, "random seed (0 seeds from the OS)")
	)
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *numBoids > 0 {
		cfg.NumBoids = *numBoids
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockingWorld",
		actor.WithLogger(golog.DefaultLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("creating actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("starting actor system: %v", err)
	}
	defer system.Stop(ctx)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flocking Demo")

	game := sim.GetNewGame(ctx, cfg, system, rng)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
