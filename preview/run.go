package preview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window; the layout follows.
	Resizable bool
	// Screenshots queues a screenshot whenever F12 is pressed.
	Screenshots bool
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
	fps   *fpsWidget
}

func (g *gameShell) Update() error {
	if g.cfg.Screenshots && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.scene.Screenshot("preview")
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return g.scene.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Resizable {
		w, h = outsideWidth, outsideHeight
	}
	g.scene.SetSize(w, h)
	return w, h
}

// Run opens a window and runs the scene until it is closed. It blocks.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "framer"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetSize(cfg.Width, cfg.Height)

	g := &gameShell{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return ebiten.RunGame(g)
}
