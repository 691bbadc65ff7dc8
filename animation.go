package framer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrAnimationCancelled is returned by Animation.Wait when the animation was
// cancelled before it finished.
var ErrAnimationCancelled = errors.New("framer: animation cancelled")

// PlayState is the lifecycle state of an Animation.
type PlayState uint8

const (
	PlayStateIdle PlayState = iota
	PlayStateRunning
	PlayStateFinished
)

func (s PlayState) String() string {
	switch s {
	case PlayStateIdle:
		return "idle"
	case PlayStateRunning:
		return "running"
	case PlayStateFinished:
		return "finished"
	}
	return fmt.Sprintf("PlayState(%d)", uint8(s))
}

// Target receives animated values.
type Target interface {
	Set(v any)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(v any)

// Set calls f(v).
func (f TargetFunc) Set(v any) { f(v) }

// valueGetter is implemented by targets that know their current value.
type valueGetter interface {
	Get() any
}

// AnimationEventType identifies an animation lifecycle event.
type AnimationEventType uint8

const (
	AnimationStarted AnimationEventType = iota
	AnimationFinished
	AnimationCancelled
)

func (t AnimationEventType) String() string {
	switch t {
	case AnimationStarted:
		return "started"
	case AnimationFinished:
		return "finished"
	case AnimationCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("AnimationEventType(%d)", uint8(t))
}

// AnimationEvent is emitted to an EventStore on lifecycle changes.
type AnimationEvent struct {
	Type        AnimationEventType
	AnimationID uint32
	Name        string
	// Value is the target value for AnimationFinished, nil otherwise.
	Value any
}

// EventStore is the interface for optional ECS integration. When set on an
// animation, lifecycle events are forwarded to it.
type EventStore interface {
	EmitEvent(event AnimationEvent)
}

// AnimationOptions configures an Animation.
type AnimationOptions struct {
	// Name labels the animation in events and diagnostics.
	Name string
	// Interpolation overrides the default ValueInterpolation.
	Interpolation Interpolation
	// ColorModel is used by the default interpolation.
	ColorModel ColorModel
	// Precalculate samples the animator up front (see PrecalculatedAnimator).
	Precalculate bool
	// Store receives lifecycle events.
	Store EventStore
	// OnFinish and OnCancel run after the tick that ended the animation.
	OnFinish func()
	OnCancel func()
}

func (o AnimationOptions) interpolation() Interpolation {
	if o.Interpolation != nil {
		return o.Interpolation
	}
	return ValueInterpolation{ColorModel: o.ColorModel}
}

// animationIDCounter is shared by animations on every scheduler.
var animationIDCounter atomic.Uint32

func nextAnimationID() uint32 {
	return animationIDCounter.Add(1)
}

// animationRun is the outcome of one Play. done is closed once err is final
// and every state change of the run has been made.
type animationRun struct {
	done    chan struct{}
	err     error
	settled bool
}

func newAnimationRun() *animationRun {
	return &animationRun{done: make(chan struct{})}
}

// Animation animates a target from one value to another. Its lifecycle is
// idle → running → finished → idle; Cancel returns a running animation to
// idle and fails any pending Wait with ErrAnimationCancelled.
type Animation struct {
	ID   uint32
	Name string

	target    Target
	to        any
	scheduler Scheduler
	driver    *Driver
	opts      AnimationOptions

	state     PlayState
	completed bool
	run       *animationRun
}

// NewAnimation creates an idle animation. A nil animator selects a one
// second ease bezier.
func NewAnimation(s Scheduler, target Target, from, to any, animator Animator, opts AnimationOptions) *Animation {
	if animator == nil {
		animator = NewBezierAnimator(BezierOptions{}, opts.interpolation())
	}
	if opts.Precalculate {
		animator = NewPrecalculatedAnimator(animator, PrecalculatedOptions{})
	}
	animator.SetFrom(from)
	animator.SetTo(to)

	a := &Animation{
		ID:        nextAnimationID(),
		Name:      opts.Name,
		target:    target,
		to:        to,
		scheduler: s,
		opts:      opts,
		run:       newAnimationRun(),
	}
	a.driver = NewDriver(animator, s, target.Set, a.driverFinished)
	return a
}

// driverFinished publishes the target value whether or not the animator got
// there on its own, so Finish lands on the end value too.
func (a *Animation) driverFinished(animatorFinished bool) {
	if !animatorFinished {
		logger.Debug("animation finished early", "id", a.ID, "name", a.Name)
	}
	a.target.Set(a.to)
	if a.state == PlayStateRunning {
		a.setState(PlayStateFinished)
	}
}

// Play starts the animation. Playing a running animation is a no-op.
func (a *Animation) Play() {
	if a.state == PlayStateRunning {
		return
	}
	a.setState(PlayStateRunning)
	a.driver.Play()
}

// Cancel stops a running animation where it is.
func (a *Animation) Cancel() {
	if a.state != PlayStateRunning {
		return
	}
	a.driver.Cancel()
	a.setState(PlayStateIdle)
	a.emit(AnimationCancelled, nil)
	run := a.settle(ErrAnimationCancelled)
	close(run.done)
	if a.opts.OnCancel != nil {
		afterTick(a.scheduler, a.opts.OnCancel)
	}
}

// Finish jumps a running animation to its end value. The run counts as
// completed: IsFinished reports true and Wait returns nil, even though the
// animator was stopped early.
func (a *Animation) Finish() {
	if a.state == PlayStateRunning {
		a.driver.Finish()
	}
}

// IsFinished reports whether the last run completed.
func (a *Animation) IsFinished() bool { return a.completed }

// PlayState returns the current lifecycle state. A finished animation
// reports idle: finished is only passed through.
func (a *Animation) PlayState() PlayState { return a.state }

// Done returns a channel closed when the current run ends. A finished run
// closes it after the tick that detected the end; a cancelled run closes it
// in Cancel.
func (a *Animation) Done() <-chan struct{} { return a.run.done }

// Wait blocks until the current run finishes, is cancelled, or ctx is done.
// The animation's state is final by the time Wait returns.
func (a *Animation) Wait(ctx context.Context) error {
	run := a.run
	select {
	case <-run.done:
		return run.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Animation) setState(next PlayState) {
	prev := a.state
	if next == prev {
		return
	}
	if next == PlayStateFinished && prev == PlayStateIdle {
		logger.Warn("bad animation state transition", "id", a.ID, "from", prev, "to", next)
		return
	}
	a.state = next

	switch next {
	case PlayStateRunning:
		if a.run.settled {
			a.run = newAnimationRun()
		}
		a.completed = false
		a.emit(AnimationStarted, nil)
	case PlayStateFinished:
		a.completed = true
		a.state = PlayStateIdle
		a.emit(AnimationFinished, a.to)
		run := a.settle(nil)
		afterTick(a.scheduler, func() { close(run.done) })
		if a.opts.OnFinish != nil {
			afterTick(a.scheduler, a.opts.OnFinish)
		}
	}
}

// settle records the outcome of the current run. The caller closes done.
func (a *Animation) settle(err error) *animationRun {
	run := a.run
	run.err = err
	run.settled = true
	return run
}

func (a *Animation) emit(typ AnimationEventType, value any) {
	if a.opts.Store == nil {
		return
	}
	a.opts.Store.EmitEvent(AnimationEvent{Type: typ, AnimationID: a.ID, Name: a.Name, Value: value})
}
