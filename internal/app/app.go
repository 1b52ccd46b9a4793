//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hexlife/internal/config"
	"hexlife/internal/render"
	"hexlife/pkg/core"
	"hexlife/pkg/sims/hexlife"
)

// Game adapts a hexlife world to the ebiten.Game interface.
type Game struct {
	world   *hexlife.World
	painter *render.HexPainter

	paused   bool
	tickOnce bool
	hud      bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *hexlife.World, view config.ViewConfig, seed int64) *Game {
	layout := render.NewLayout(world.Coords(), view.HexSize, view.Margin)
	return &Game{
		world:   world,
		painter: render.NewHexPainter(layout, world.Rule().States),
		hud:     true,
		seed:    seed,
	}
}

// Reset reseeds the world. A zero seed draws from system entropy.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(core.Seeded(seed).Source())
	g.tickOnce = false
}

// Update handles per-frame logic and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(0)
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the latest generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.world.States())
	if g.hud {
		c := g.world.Census()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  alive %d/%d  rule %s", c.Generation, c.Alive(), g.world.Len(), g.world.Rule()))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
