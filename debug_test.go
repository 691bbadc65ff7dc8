package framer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func withDebugMode(t *testing.T) {
	t.Helper()
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	withDebugMode(t)

	parent := newTestFrame("parent")
	child := newTestFrame("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	withDebugMode(t)

	parent := newTestFrame("parent")
	parent.Dispose()
	child := newTestFrame("child")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	SetDebugMode(false)

	parent := newTestFrame("parent")
	child := newTestFrame("child")
	child.Dispose()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on disposed node, got: %v", r)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	withDebugMode(t)
	buf := captureLog(t, log.WarnLevel)

	current := newTestFrame("root")
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := newTestFrame(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	withDebugMode(t)
	buf := captureLog(t, log.WarnLevel)

	parent := newTestFrame("many_children")
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(newTestFrame(fmt.Sprintf("c_%d", i)))
	}

	output := buf.String()
	if !strings.Contains(output, "too many children") || !strings.Contains(output, "many_children") {
		t.Errorf("expected child count warning, got: %q", output)
	}
}

func TestReleaseMode_NoTreeWarnings(t *testing.T) {
	SetDebugMode(false)
	buf := captureLog(t, log.DebugLevel)

	current := newTestFrame("root")
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := newTestFrame(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if buf.Len() != 0 {
		t.Errorf("release mode should not log, got: %q", buf.String())
	}
}

func TestDebugMode_LayoutStats(t *testing.T) {
	withDebugMode(t)
	buf := captureLog(t, log.DebugLevel)

	row := NewStack("row", Stack{Direction: DirectionHorizontal},
		DefaultConstraints().WithSize(Fixed(300), Fixed(100)))
	for i := 0; i < 3; i++ {
		row.AddChild(NewFrame(fmt.Sprintf("cell_%d", i), DefaultConstraints().WithWidth(Fraction(1))))
	}
	row.Layout(nil)

	output := buf.String()
	for _, want := range []string{"layout", "root=row", "nodes=4", "stacks=1", "elapsed"} {
		if !strings.Contains(output, want) {
			t.Errorf("layout stats missing %q: %q", want, output)
		}
	}
}

func TestLayoutStatsNilSafe(t *testing.T) {
	var s *layoutStats
	s.count(newTestFrame("x")) // must not panic
}
