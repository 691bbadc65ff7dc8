package framer

import (
	"math"
	"slices"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPinsReachesTarget(t *testing.T) {
	node := NewFrame("pos", DefaultConstraints().PinLeft(10).PinTop(20))

	g := TweenPins(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Constraints.Left.Value-100) > 0.5 {
		t.Errorf("Left = %f, want ~100", node.Constraints.Left.Value)
	}
	if math.Abs(node.Constraints.Top.Value-200) > 0.5 {
		t.Errorf("Top = %f, want ~200", node.Constraints.Top.Value)
	}
}

func TestTweenPinsStartsUnsetPinsAtZero(t *testing.T) {
	node := NewFrame("unpinned", DefaultConstraints())

	g := TweenPins(node, 50, 50, 1.0, ease.Linear)
	if !node.Constraints.Left.Valid || !node.Constraints.Top.Valid {
		t.Fatal("pins should be set once tweened")
	}
	g.Update(0.5)
	if math.Abs(node.Constraints.Left.Value-25) > 0.5 {
		t.Errorf("Left = %f, want ~25", node.Constraints.Left.Value)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewFrame("color", DefaultConstraints())
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(node, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Color.R-target.R) > 0.01 {
		t.Errorf("R = %f, want %f", node.Color.R, target.R)
	}
	if math.Abs(node.Color.G-target.G) > 0.01 {
		t.Errorf("G = %f, want %f", node.Color.G, target.G)
	}
	if math.Abs(node.Color.B-target.B) > 0.01 {
		t.Errorf("B = %f, want %f", node.Color.B, target.B)
	}
	if math.Abs(node.Color.A-target.A) > 0.01 {
		t.Errorf("A = %f, want %f", node.Color.A, target.A)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewFrame("alpha", DefaultConstraints())

	g := TweenAlpha(node, 0, 1.0, ease.Linear)
	g.Update(0.5)

	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha at midpoint = %f, want ~0.5", node.Alpha)
	}
	g.Update(0.5)
	if !g.Done || node.Alpha != 0 {
		t.Errorf("Alpha = %f Done = %v, want 0 and done", node.Alpha, g.Done)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewFrame("done", DefaultConstraints())
	g := TweenPins(node, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	// Complete.
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done should be a no-op, not panic.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksLayoutDirty(t *testing.T) {
	node := NewFrame("dirty", DefaultConstraints())
	node.Layout(nil)
	if node.LayoutDirty() {
		t.Fatal("layout should be clean after Layout")
	}

	g := TweenPins(node, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.LayoutDirty() {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewFrame("disposed", DefaultConstraints().PinLeft(10).PinTop(20))

	g := TweenPins(node, 100, 200, 1.0, ease.Linear)

	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Constraints.Left.Value != 10 || node.Constraints.Top.Value != 20 {
		t.Errorf("pins changed on disposed node: %+v", node.Constraints)
	}
}

func TestTweenGroupRunOnLoop(t *testing.T) {
	loop := NewLoop()
	node := NewFrame("run", DefaultConstraints())

	TweenAlpha(node, 0, 0.1, ease.Linear).Run(loop)
	if loop.Active() != 1 {
		t.Fatalf("Active = %d, want 1", loop.Active())
	}
	loop.RunFor(1)
	if loop.Active() != 0 {
		t.Errorf("group should unsubscribe when done, Active = %d", loop.Active())
	}
	if node.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", node.Alpha)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	nodeL := NewFrame("linear", DefaultConstraints())
	nodeC := NewFrame("cubic", DefaultConstraints())

	gL := TweenPins(nodeL, 100, 0, 1.0, ease.Linear)
	gC := TweenPins(nodeC, 100, 0, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	l, c := nodeL.Constraints.Left.Value, nodeC.Constraints.Left.Value
	if math.Abs(l-c) < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", l, c)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewFrame("alloc", DefaultConstraints())
	g := TweenPins(node, 100, 100, 1.0, ease.Linear)

	// Warm up; the first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestTweenAnimator(t *testing.T) {
	a := NewTweenAnimator(TweenOptions{Ease: ease.InOutQuad, Duration: 1}, nil)
	a.SetFrom(0.0)
	a.SetTo(10.0)
	if !a.IsReady() {
		t.Fatal("animator should be ready")
	}

	v := a.Next(0.5).(float64)
	if math.Abs(v-5) > 0.01 {
		t.Errorf("midpoint = %f, want ~5", v)
	}
	if a.IsFinished() {
		t.Fatal("should not be finished at the midpoint")
	}
	v = a.Next(0.5).(float64)
	if !a.IsFinished() || v != 10 {
		t.Errorf("end = %f finished = %v, want 10 and finished", v, a.IsFinished())
	}
}

func TestTweenAnimatorDefaults(t *testing.T) {
	a := NewTweenAnimator(TweenOptions{}, nil)
	a.SetFrom(0.0)
	a.SetTo(1.0)
	if v := a.Next(0.25).(float64); math.Abs(v-0.25) > 1e-6 {
		t.Errorf("linear default: Next(0.25) = %f, want 0.25", v)
	}
}

func TestParseEase(t *testing.T) {
	if _, err := ParseEase("Out-Bounce"); err != nil {
		t.Errorf("ParseEase(Out-Bounce): %v", err)
	}
	if _, err := ParseEase("wobble"); err == nil {
		t.Error("expected error for unknown ease")
	}
	names := EaseNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "in-out-elastic") {
		t.Errorf("EaseNames = %v", names)
	}
}

func TestEaseCurveClampsAndMatchesEnds(t *testing.T) {
	fn := EaseCurve(ease.OutQuad)
	if fn(-1) != 0 || fn(0) != 0 || fn(1) != 1 || fn(2) != 1 {
		t.Error("EaseCurve should clamp to [0,1]")
	}
	if math.Abs(fn(0.5)-0.75) > 1e-6 {
		t.Errorf("OutQuad(0.5) = %f, want 0.75", fn(0.5))
	}
}
