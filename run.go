package landing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; every resize reseeds the
	// backdrop.
	Resizable bool
	ShowFPS   bool
	// Background fills the window before the backdrop is drawn.
	Background Color
}

// Run opens a window and runs the backdrop until the window closes. The
// backdrop is closed on return.
func Run(b *Backdrop, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	font, err := LoadGlyphFont()
	if err != nil {
		return err
	}
	canvas := NewImageCanvas(nil, font)
	canvas.Background = cfg.Background
	b.SetCanvas(canvas)
	defer b.Close()

	var game ebiten.Game = b
	if cfg.ShowFPS {
		game = &fpsGame{Backdrop: b}
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("landing: run: %w", err)
	}
	return nil
}

// fpsGame wraps a Backdrop with the FPS overlay.
type fpsGame struct {
	*Backdrop
	fps fpsOverlay
}

func (g *fpsGame) Update() error {
	g.fps.update(1 / float64(ebiten.TPS()))
	return g.Backdrop.Update()
}

func (g *fpsGame) Draw(screen *ebiten.Image) {
	g.Backdrop.Draw(screen)
	g.fps.draw(screen)
}
