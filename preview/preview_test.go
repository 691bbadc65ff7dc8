package preview

import (
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/framer"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-layout", "after-layout"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	src := []byte{64, 32, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	dst := make([]byte, len(src))
	unpremultiply(src, dst)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(framer.NewFrame("root", framer.DefaultConstraints()))
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func newTestTree() *framer.Node {
	root := framer.NewStack("root", framer.Stack{
		Direction:    framer.DirectionHorizontal,
		Distribution: framer.DistributeStart,
	}, framer.DefaultConstraints().WithSize(framer.Percent(100), framer.Percent(100)))
	for _, name := range []string{"a", "b"} {
		root.AddChild(framer.NewFrame(name, framer.DefaultConstraints().WithWidth(framer.Fraction(1))))
	}
	return root
}

func TestSceneUpdateLaysOutAgainstWindow(t *testing.T) {
	s := NewScene(newTestTree())
	s.SetSize(400, 300)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	r := s.Root().Rect()
	if r.Width != 400 || r.Height != 300 {
		t.Fatalf("root = %+v, want 400x300", r)
	}
	b := s.Root().ChildAt(1).Rect()
	if b.X != 200 || b.Width != 200 {
		t.Errorf("b = %+v, want x=200 w=200", b)
	}
	if s.Loop().Frame() != 1 {
		t.Errorf("Frame = %d, want 1", s.Loop().Frame())
	}

	s.SetSize(200, 100)
	if !s.Root().LayoutDirty() {
		t.Error("resize should mark layout dirty")
	}
	_ = s.Update()
	if b := s.Root().ChildAt(1).Rect(); b.X != 100 {
		t.Errorf("after resize b.X = %v, want 100", b.X)
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene(newTestTree())
	want := errStop{}
	s.SetUpdateFunc(func() error { return want })
	if err := s.Update(); err != want {
		t.Errorf("Update = %v, want %v", err, want)
	}
	if s.Loop().Frame() != 0 {
		t.Error("loop should not tick when the update func fails")
	}
}

type errStop struct{}

func (errStop) Error() string { return "stop" }

func TestSceneTicksAnimations(t *testing.T) {
	s := NewScene(newTestTree())
	s.SetSize(400, 300)
	node := s.Root().ChildAt(0)
	framer.TweenAlpha(node, 0, 0.05, ease.Linear).Run(s.Loop())
	for i := 0; i < 10; i++ {
		_ = s.Update()
	}
	if node.Alpha != 0 {
		t.Errorf("Alpha = %v, want 0", node.Alpha)
	}
}

func TestCollectRects(t *testing.T) {
	root := newTestTree()
	root.Layout(&framer.Size{Width: 400, Height: 300})
	root.ChildAt(1).Alpha = 0.5

	rects := collectRects(root, nil)
	if len(rects) != 3 {
		t.Fatalf("len = %d, want 3", len(rects))
	}
	if rects[0].name != "root" || rects[1].name != "a" || rects[2].name != "b" {
		t.Errorf("paint order = %s,%s,%s", rects[0].name, rects[1].name, rects[2].name)
	}
	if rects[2].rect.X != 200 || rects[2].alpha != 0.5 {
		t.Errorf("b = %+v", rects[2])
	}
}

func TestCollectRectsSkipsHidden(t *testing.T) {
	root := newTestTree()
	root.ChildAt(0).SetVisible(false)
	root.Layout(&framer.Size{Width: 400, Height: 300})

	rects := collectRects(root, nil)
	if len(rects) != 2 {
		t.Fatalf("len = %d, want 2", len(rects))
	}
	if rects[1].rect.Width != 400 {
		t.Errorf("visible child width = %v, want 400", rects[1].rect.Width)
	}
}

func TestCollectRectsOffsetsNested(t *testing.T) {
	root := framer.NewFrame("root", framer.DefaultConstraints().PinLeft(10).PinTop(20))
	child := framer.NewFrame("child", framer.DefaultConstraints().WithSize(framer.Fixed(10), framer.Fixed(10)).PinLeft(5).PinTop(5))
	root.AddChild(child)
	root.Layout(&framer.Size{Width: 400, Height: 300})

	rects := collectRects(root, nil)
	if len(rects) != 2 {
		t.Fatalf("len = %d, want 2", len(rects))
	}
	if got := rects[1].rect; got.X != 15 || got.Y != 25 {
		t.Errorf("child world rect = %+v, want origin (15,25)", got)
	}
}
