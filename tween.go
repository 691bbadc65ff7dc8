package framer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenOptions configures a TweenAnimator. A nil Ease is ease.Linear and a
// zero Duration one second.
type TweenOptions struct {
	Ease     ease.TweenFunc
	Duration float64
}

// TweenAnimator drives progress with a gween tween, giving access to the
// Penner easing family (bounce, elastic, back, ...).
type TweenAnimator struct {
	valueRange
	tween    *gween.Tween
	progress float64
	done     bool
}

// NewTweenAnimator creates a tween animator. interp may be nil for
// AnyInterpolation.
func NewTweenAnimator(opts TweenOptions, interp Interpolation) *TweenAnimator {
	if opts.Ease == nil {
		opts.Ease = ease.Linear
	}
	if opts.Duration <= 0 {
		opts.Duration = 1
	}
	return &TweenAnimator{
		valueRange: newValueRange(interp),
		tween:      gween.New(0, 1, float32(opts.Duration), opts.Ease),
	}
}

// Next advances the tween by delta seconds.
func (a *TweenAnimator) Next(delta float64) any {
	p, done := a.tween.Update(float32(delta))
	a.progress, a.done = float64(p), done
	return a.at(a.progress)
}

// IsFinished reports whether the tween has run its full duration.
func (a *TweenAnimator) IsFinished() bool { return a.done }

var easeFuncs = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
}

// ParseEase looks up a gween easing function by name, e.g. "out-bounce".
func ParseEase(name string) (ease.TweenFunc, error) {
	fn, ok := easeFuncs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("framer: unknown ease %q", name)
	}
	return fn, nil
}

// EaseCurve adapts a gween easing function to a unit progress function,
// for sampling or comparing it with a bezier Curve.
func EaseCurve(fn ease.TweenFunc) func(x float64) float64 {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return float64(fn(float32(x), 0, 1, 1))
	}
}

// EaseNames lists the names ParseEase accepts, sorted.
func EaseNames() []string {
	return slices.Sorted(maps.Keys(easeFuncs))
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPins, TweenAlpha,
// TweenColor) and call Update(dt) each frame, or hand it to a Scheduler
// with Run. The group writes values straight into the node and marks its
// layout dirty. If the node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the node.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkLayoutDirty()
	}
}

// Run advances the group on every tick of s until it is done.
func (g *TweenGroup) Run(s Scheduler) {
	var unsubscribe func()
	unsubscribe = s.OnTick(func(dt float64) {
		g.Update(float32(dt))
		if g.Done && unsubscribe != nil {
			unsubscribe()
		}
	})
}

// TweenPins animates the node's left and top pins. Pins that were unset
// start from 0.
func TweenPins(node *Node, toLeft, toTop float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := &node.Constraints
	c.Left = Some(c.Left.Or(0))
	c.Top = Some(c.Top.Or(0))
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(c.Left.Value), float32(toLeft), duration, fn)
	g.tweens[1] = gween.New(float32(c.Top.Value), float32(toTop), duration, fn)
	g.fields[0] = &c.Left.Value
	g.fields[1] = &c.Top.Value
	return g
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}
