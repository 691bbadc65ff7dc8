package framer

// Animatable is an observable value. It implements Target, so animations
// can write into it directly, and listeners registered with OnUpdate see
// every change.
type Animatable struct {
	value     any
	observers []*animatableObserver
}

type animatableObserver struct {
	fn func(value, previous any)
}

// NewAnimatable creates an Animatable holding v.
func NewAnimatable(v any) *Animatable {
	return &Animatable{value: v}
}

// Get returns the current value.
func (a *Animatable) Get() any { return a.value }

// Set stores v and notifies observers.
func (a *Animatable) Set(v any) {
	prev := a.value
	a.value = v
	for _, o := range a.observers {
		if o.fn != nil {
			o.fn(v, prev)
		}
	}
}

// OnUpdate registers fn to be called after every Set. The returned function
// removes the registration.
func (a *Animatable) OnUpdate(fn func(value, previous any)) (cancel func()) {
	o := &animatableObserver{fn: fn}
	a.observers = append(a.observers, o)
	return func() {
		for i, other := range a.observers {
			if other == o {
				a.observers = append(a.observers[:i], a.observers[i+1:]...)
				o.fn = nil
				return
			}
		}
	}
}

// MapTarget animates the keys of a map. Set copies each key of a
// structural value into the map; keys holding an *Animatable are set
// through it instead of being replaced.
type MapTarget map[string]any

// Set implements Target. Non-map values are ignored.
func (m MapTarget) Set(v any) {
	values, ok := v.(map[string]any)
	if !ok {
		return
	}
	for k, val := range values {
		if a, ok := m[k].(*Animatable); ok {
			a.Set(val)
			continue
		}
		m[k] = val
	}
}

// Get returns a snapshot of the map with every *Animatable replaced by its
// current value.
func (m MapTarget) Get() any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if a, ok := v.(*Animatable); ok {
			v = a.Get()
		}
		out[k] = v
	}
	return out
}

// Animate creates and plays an animation from the target's current value
// to to. Targets without a Get method start from nil, which interpolation
// treats as the neutral value of to's kind.
func Animate(s Scheduler, target Target, to any, animator Animator, opts AnimationOptions) *Animation {
	var from any
	if g, ok := target.(valueGetter); ok {
		from = g.Get()
	}
	a := NewAnimation(s, target, from, to, animator, opts)
	a.Play()
	return a
}

// AnimateBezier animates with a cubic bezier timing curve.
func AnimateBezier(s Scheduler, target Target, to any, bezier BezierOptions, opts AnimationOptions) *Animation {
	return Animate(s, target, to, NewBezierAnimator(bezier, opts.interpolation()), opts)
}

// AnimateSpring animates with a spring.
func AnimateSpring(s Scheduler, target Target, to any, spring SpringOptions, opts AnimationOptions) *Animation {
	return Animate(s, target, to, NewSpringAnimator(spring, opts.interpolation()), opts)
}

// AnimateTween animates with a gween easing function.
func AnimateTween(s Scheduler, target Target, to any, tween TweenOptions, opts AnimationOptions) *Animation {
	return Animate(s, target, to, NewTweenAnimator(tween, opts.interpolation()), opts)
}

// AnimateLinear animates over duration seconds at a constant rate (CurveLinear).
func AnimateLinear(s Scheduler, target Target, to any, duration float64, opts AnimationOptions) *Animation {
	return AnimateBezier(s, target, to, BezierOptions{Curve: CurveLinear, Duration: duration}, opts)
}

// AnimateEase animates over duration seconds with the CSS "ease" curve.
func AnimateEase(s Scheduler, target Target, to any, duration float64, opts AnimationOptions) *Animation {
	return AnimateBezier(s, target, to, BezierOptions{Curve: CurveEase, Duration: duration}, opts)
}

// AnimateEaseIn animates over duration seconds with the CSS "ease-in" curve.
func AnimateEaseIn(s Scheduler, target Target, to any, duration float64, opts AnimationOptions) *Animation {
	return AnimateBezier(s, target, to, BezierOptions{Curve: CurveEaseIn, Duration: duration}, opts)
}

// AnimateEaseOut animates over duration seconds with the CSS "ease-out" curve.
func AnimateEaseOut(s Scheduler, target Target, to any, duration float64, opts AnimationOptions) *Animation {
	return AnimateBezier(s, target, to, BezierOptions{Curve: CurveEaseOut, Duration: duration}, opts)
}

// AnimateEaseInOut animates over duration seconds with the CSS "ease-in-out" curve.
func AnimateEaseInOut(s Scheduler, target Target, to any, duration float64, opts AnimationOptions) *Animation {
	return AnimateBezier(s, target, to, BezierOptions{Curve: CurveEaseInOut, Duration: duration}, opts)
}
