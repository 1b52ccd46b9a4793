//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"hexlife/internal/app"
	"hexlife/internal/config"
	"hexlife/pkg/core"
	"hexlife/pkg/sims/hexlife"
)

func main() {
	cfg, err := config.Parse("hexlife", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	wc, err := cfg.WorldConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	world, err := hexlife.New(wc, core.Seeded(cfg.World.Seed).Source())
	if err != nil {
		log.Fatalf("world: %v", err)
	}

	game := app.New(world, cfg.View, cfg.World.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Hexagons are the bestagons — " + wc.Rule.String())
	ebiten.SetTPS(cfg.View.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
