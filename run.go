package dragview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner, refreshed
	// about twice a second.
	ShowFPS bool
	// Update, if set, runs after the scene has processed input each tick.
	// Returning an error stops the game.
	Update func() error
}

// Run opens a window and drives scene with Ebitengine until the window is
// closed or cfg.Update returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

type game struct {
	scene *Scene
	cfg   RunConfig

	fps      *ebiten.Image
	fpsTimer float32
}

func (g *game) Update() error {
	dt := float32(1 / float64(ebiten.TPS()))
	g.scene.Update(dt)
	if g.cfg.ShowFPS {
		g.updateFPS(dt)
	}
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

// updateFPS redraws the readout image every half second.
func (g *game) updateFPS(dt float32) {
	if g.fps == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0"
		g.fps = ebiten.NewImage(100, 32)
		g.fpsTimer = 0.5
	}
	g.fpsTimer += dt
	if g.fpsTimer < 0.5 {
		return
	}
	g.fpsTimer = 0

	g.fps.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		screen.DrawImage(g.fps, nil)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
