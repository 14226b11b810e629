package coolmode

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the viewport follows.
	Resizable bool
	// OnUpdate, if set, runs every tick before the stage updates. Returning
	// an error stops the game; return ebiten.Termination for a clean exit.
	OnUpdate func() error
	// OnDraw, if set, draws the host UI below the particle overlay.
	OnDraw func(screen *ebiten.Image)
}

// Run opens a window and drives stage until the window closes or OnUpdate
// returns an error. It blocks.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	stage.SetViewport(float64(cfg.Width), float64(cfg.Height))

	if err := ebiten.RunGame(&game{stage: stage, cfg: cfg}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.stage.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.stage.ClearColor.A > 0 {
		screen.Fill(g.stage.ClearColor.toRGBA())
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	g.stage.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stage.Layout(outsideWidth, outsideHeight)
}
