package framer

import (
	"math"
	"testing"
)

func TestLoopTickDeliversDelta(t *testing.T) {
	l := NewLoop()
	var got []float64
	l.OnTick(func(dt float64) { got = append(got, dt) })

	l.Tick(0.5)
	l.Step()

	if len(got) != 2 || got[0] != 0.5 || got[1] != DefaultTimeStep {
		t.Errorf("dts = %v, want [0.5 %v]", got, DefaultTimeStep)
	}
	if l.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", l.Frame())
	}
	if math.Abs(l.Time()-(0.5+DefaultTimeStep)) > 1e-12 {
		t.Errorf("Time = %v", l.Time())
	}
}

func TestLoopUnsubscribe(t *testing.T) {
	l := NewLoop()
	calls := 0
	unsubscribe := l.OnTick(func(float64) { calls++ })
	l.Step()
	unsubscribe()
	unsubscribe() // harmless
	l.Step()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if l.Active() != 0 {
		t.Errorf("Active = %d, want 0", l.Active())
	}
}

func TestLoopUnsubscribeDuringTick(t *testing.T) {
	l := NewLoop()
	var order []string
	var unsubB func()
	l.OnTick(func(float64) {
		order = append(order, "a")
		unsubB()
	})
	unsubB = l.OnTick(func(float64) { order = append(order, "b") })

	l.Step()
	l.Step()

	if len(order) != 2 || order[0] != "a" || order[1] != "a" {
		t.Errorf("order = %v, want [a a]", order)
	}
	if l.Active() != 1 {
		t.Errorf("Active = %d, want 1", l.Active())
	}
}

func TestLoopSubscribeDuringTickRunsNextTick(t *testing.T) {
	l := NewLoop()
	added := 0
	l.OnTick(func(float64) {
		if l.Frame() == 0 {
			l.OnTick(func(float64) { added++ })
		}
	})

	l.Step()
	if added != 0 {
		t.Fatalf("callback added during a tick ran in the same tick")
	}
	l.Step()
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}

func TestLoopFrameTasks(t *testing.T) {
	l := NewLoop()
	var order []string
	l.OnTick(func(float64) {
		order = append(order, "tick")
		if l.Frame() == 0 {
			l.AddFrameTask(func() {
				order = append(order, "task")
				l.AddFrameTask(func() { order = append(order, "nested") })
			})
		}
	})

	l.Step()
	l.Step()

	want := []string{"tick", "task", "tick", "nested"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestLoopRunFor(t *testing.T) {
	l := NewLoop()
	l.TimeStep = 0.1
	ticks := 0
	var unsubscribe func()
	unsubscribe = l.OnTick(func(float64) {
		ticks++
		if ticks == 3 {
			unsubscribe()
		}
	})

	if frames := l.RunFor(10); frames != 3 {
		t.Errorf("RunFor = %d frames, want 3 (stops when idle)", frames)
	}
	if frames := l.RunFor(10); frames != 0 {
		t.Errorf("idle RunFor = %d frames, want 0", frames)
	}
}

func TestLoopStepDefaultsTimeStep(t *testing.T) {
	l := &Loop{}
	var got float64
	l.OnTick(func(dt float64) { got = dt })
	l.Step()
	if got != DefaultTimeStep {
		t.Errorf("dt = %v, want %v", got, DefaultTimeStep)
	}
}

func TestAfterTickWithoutFrameTasks(t *testing.T) {
	ran := false
	afterTick(nil, func() { ran = true })
	if !ran {
		t.Error("task should run immediately without a frame tasker")
	}
}
