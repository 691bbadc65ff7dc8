package framer

import "math"

// PrecalculatedOptions configures a PrecalculatedAnimator.
type PrecalculatedOptions struct {
	// Delta is the sampling step in seconds, default 1/60.
	Delta float64
	// MaxValues caps the number of samples, default 10000.
	MaxValues int
}

// PrecalculatedAnimator samples another animator at a fixed step as soon as
// both end points are known, then replays the samples by elapsed time.
// Physics animators become deterministic per frame regardless of the
// caller's frame rate.
type PrecalculatedAnimator struct {
	animator    Animator
	delta       float64
	maxValues   int
	values      []any
	totalTime   float64
	currentTime float64
}

// NewPrecalculatedAnimator wraps animator.
func NewPrecalculatedAnimator(animator Animator, opts PrecalculatedOptions) *PrecalculatedAnimator {
	if opts.Delta <= 0 {
		opts.Delta = 1.0 / 60
	}
	if opts.MaxValues <= 0 {
		opts.MaxValues = 10000
	}
	return &PrecalculatedAnimator{animator: animator, delta: opts.Delta, maxValues: opts.MaxValues}
}

func (p *PrecalculatedAnimator) precalculate() {
	if !p.animator.IsReady() {
		return
	}
	p.values = p.values[:0]
	for !p.animator.IsFinished() && len(p.values) < p.maxValues {
		v := p.animator.Next(p.delta)
		// Structural values are reused by their interpolator; keep a copy.
		if m, ok := v.(map[string]any); ok {
			v = copyStructure(m)
		}
		p.values = append(p.values, v)
	}
	p.totalTime = float64(len(p.values)) * p.delta
}

func copyStructure(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if inner, ok := v.(map[string]any); ok {
			v = copyStructure(inner)
		}
		out[k] = v
	}
	return out
}

func (p *PrecalculatedAnimator) indexForTime(t float64) int {
	n := len(p.values)
	i := int(roundHalfUp(float64(n)*(t/p.totalTime))) - 1
	return int(math.Max(0, math.Min(float64(n-1), float64(i))))
}

func (p *PrecalculatedAnimator) SetFrom(v any) {
	p.animator.SetFrom(v)
	p.precalculate()
}

func (p *PrecalculatedAnimator) SetTo(v any) {
	p.animator.SetTo(v)
	p.precalculate()
}

func (p *PrecalculatedAnimator) IsReady() bool {
	return len(p.values) > 0 && p.totalTime > 0
}

func (p *PrecalculatedAnimator) Next(delta float64) any {
	p.currentTime += delta
	if len(p.values) == 0 {
		return nil
	}
	return p.values[p.indexForTime(p.currentTime)]
}

func (p *PrecalculatedAnimator) IsFinished() bool {
	return p.totalTime == 0 || p.currentTime >= p.totalTime
}

// Samples returns the number of precalculated values.
func (p *PrecalculatedAnimator) Samples() int { return len(p.values) }

// TotalTime returns the sampled duration in seconds.
func (p *PrecalculatedAnimator) TotalTime() float64 { return p.totalTime }
