// Command hexlife-run advances a world without a window and logs a census
// every few generations.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hexlife/internal/config"
	"hexlife/pkg/core"
	"hexlife/pkg/sims/hexlife"
)

func main() {
	cfg, err := config.Parse("hexlife-run", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	wc, err := cfg.WorldConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if cfg.Run.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)

	rng := core.Seeded(cfg.World.Seed)
	world, err := hexlife.New(wc, rng.Source())
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	logger.Info("world ready",
		"radius", world.Radius(),
		"cells", world.Len(),
		"rule", world.Rule().String(),
		"workers", wc.Workers,
		"seed", rng.Seed(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	for world.Generation() < uint64(max(cfg.Run.Steps, 0)) {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "generation", world.Generation())
			break
		}
		world.Step()
		if cfg.Run.LogEvery > 0 && world.Generation()%uint64(cfg.Run.LogEvery) == 0 {
			logCensus(logger, world.Census())
		}
	}

	c := world.Census()
	logCensus(logger, c)
	logger.Info("done",
		"generations", c.Generation,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}

func logCensus(logger *slog.Logger, c hexlife.Census) {
	logger.Info("census",
		"generation", c.Generation,
		"alive", c.Alive(),
		"off", c.Off(),
		"by_state", c.Counts,
	)
}
