// Package preview renders framer layout trees in an [Ebitengine] window and
// drives their animations from the game loop.
//
// The simplest way to use it is [Run]:
//
//	scene := preview.NewScene(root)
//	preview.Run(scene, preview.RunConfig{Title: "Layout", Width: 640, Height: 480})
//
// [Ebitengine]: https://ebitengine.org
package preview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/framer"
)

// Scene owns a layout tree and the animation loop that runs alongside it.
// Each Update ticks the loop by one frame and re-lays the tree out when it
// changed or the window was resized.
type Scene struct {
	// ClearColor fills the screen before drawing. The zero value leaves the
	// screen as Ebitengine cleared it.
	ClearColor framer.Color
	// ScreenshotDir is where Screenshot writes PNGs, default "screenshots".
	ScreenshotDir string
	// ShowLabels prints each node's name at its top-left corner.
	ShowLabels bool

	root       *framer.Node
	loop       *framer.Loop
	updateFunc func() error

	width, height int
	rects         []drawRect

	screenshotQueue []string
}

// NewScene creates a scene for root.
func NewScene(root *framer.Node) *Scene {
	return &Scene{
		ScreenshotDir: "screenshots",
		root:          root,
		loop:          framer.NewLoop(),
	}
}

// Root returns the layout tree.
func (s *Scene) Root() *framer.Node { return s.root }

// Loop returns the scheduler ticked once per Update. Pass it to the
// framer.Animate helpers.
func (s *Scene) Loop() *framer.Loop { return s.loop }

// SetUpdateFunc sets a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetSize sets the size the root is laid out against.
func (s *Scene) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.root.MarkLayoutDirty()
}

// Update runs the update callback, ticks the animation loop with a fixed
// dt of 1/TPS and lays the tree out if needed.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.loop.Tick(1.0 / float64(ebiten.TPS()))
	s.layout()
	return nil
}

func (s *Scene) layout() {
	var parent *framer.Size
	if s.width > 0 && s.height > 0 {
		parent = &framer.Size{Width: float64(s.width), Height: float64(s.height)}
	}
	if s.root.LayoutIfDirty(parent) && framer.DebugMode() {
		framer.Logger().Debug("preview relayout", "width", s.width, "height", s.height, "frame", s.loop.Frame())
	}
}

// Draw renders the tree to screen and flushes queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	var start time.Time
	if framer.DebugMode() {
		start = time.Now()
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor)
	}
	s.rects = collectRects(s.root, s.rects[:0])
	submitRects(screen, s.rects, s.ShowLabels)
	if framer.DebugMode() {
		framer.Logger().Debug("preview draw", "rects", len(s.rects), "elapsed", time.Since(start))
	}
	s.flushScreenshots(screen)
}
