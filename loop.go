package framer

// Scheduler delivers per-frame ticks. Each registered callback receives the
// elapsed time in seconds once per frame until unsubscribed. Calling the
// returned unsubscribe function more than once is harmless.
type Scheduler interface {
	OnTick(fn func(dt float64)) (unsubscribe func())
}

// frameTasker is implemented by schedulers that can run work after the
// current frame's tick callbacks.
type frameTasker interface {
	AddFrameTask(task func())
}

// afterTick runs task once the current tick has finished when s supports
// frame tasks, and immediately otherwise.
func afterTick(s Scheduler, task func()) {
	if ft, ok := s.(frameTasker); ok {
		ft.AddFrameTask(task)
		return
	}
	task()
}

// DefaultTimeStep is the frame duration Loop.Step uses unless TimeStep is
// changed.
const DefaultTimeStep = 1.0 / 60

type tickHandler struct {
	fn      func(dt float64)
	removed bool
}

// Loop is a manually stepped Scheduler. Something outside the loop (a game
// engine's update, a test, a CLI simulation) calls Tick or Step once per
// frame. A Loop is not safe for concurrent use.
type Loop struct {
	// TimeStep is the dt used by Step.
	TimeStep float64

	handlers []*tickHandler
	tasks    []func()
	frame    int
	time     float64
	ticking  bool
}

// NewLoop creates a loop stepping at DefaultTimeStep.
func NewLoop() *Loop {
	return &Loop{TimeStep: DefaultTimeStep}
}

// OnTick implements Scheduler. Callbacks registered during a tick first run
// on the next tick.
func (l *Loop) OnTick(fn func(dt float64)) func() {
	h := &tickHandler{fn: fn}
	l.handlers = append(l.handlers, h)
	return func() {
		if h.removed {
			return
		}
		h.removed = true
		if !l.ticking {
			l.compact()
		}
	}
}

// AddFrameTask queues task to run after the current (or next) tick's
// callbacks. Tasks queued by a task run on the following tick.
func (l *Loop) AddFrameTask(task func()) {
	l.tasks = append(l.tasks, task)
}

// Tick runs every callback with dt, then the queued frame tasks, and
// advances the frame counter.
func (l *Loop) Tick(dt float64) {
	l.ticking = true
	n := len(l.handlers)
	for i := 0; i < n; i++ {
		if h := l.handlers[i]; !h.removed {
			h.fn(dt)
		}
	}
	l.ticking = false
	l.compact()

	if len(l.tasks) > 0 {
		tasks := l.tasks
		l.tasks = nil
		for _, task := range tasks {
			task()
		}
	}

	l.frame++
	l.time += dt
}

// Step ticks once with TimeStep.
func (l *Loop) Step() {
	step := l.TimeStep
	if step <= 0 {
		step = DefaultTimeStep
	}
	l.Tick(step)
}

// RunFor steps the loop until at least seconds of loop time have passed or
// nothing is subscribed any more. It returns the number of frames run.
func (l *Loop) RunFor(seconds float64) int {
	frames := 0
	start := l.time
	for l.time-start < seconds && l.Active() > 0 {
		l.Step()
		frames++
	}
	return frames
}

// Frame returns the number of completed ticks.
func (l *Loop) Frame() int { return l.frame }

// Time returns the sum of all dt values ticked so far.
func (l *Loop) Time() float64 { return l.time }

// Active returns the number of subscribed callbacks.
func (l *Loop) Active() int { return len(l.handlers) }

func (l *Loop) compact() {
	kept := l.handlers[:0]
	for _, h := range l.handlers {
		if !h.removed {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(l.handlers); i++ {
		l.handlers[i] = nil
	}
	l.handlers = kept
}
