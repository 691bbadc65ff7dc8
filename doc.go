// Package framer is the layout and animation core of a visual design tool:
// a constraint solver that turns pins, sizes and aspect ratios into frames,
// a stack layout for arranging children along an axis, and a frame-driven
// animation engine with bezier, spring and tween timing.
//
// # Quick start
//
// Build a tree of frames and stacks, then lay it out against a parent size:
//
//	row := framer.NewStack("row", framer.Stack{
//		Direction:    framer.DirectionHorizontal,
//		Distribution: framer.DistributeStart,
//	}, framer.DefaultConstraints().WithSize(framer.Fixed(400), framer.Fixed(100)))
//
//	for _, fr := range []float64{1, 2, 1} {
//		c := framer.DefaultConstraints().WithWidth(framer.Fraction(fr))
//		row.AddChild(framer.NewFrame("cell", c))
//	}
//	row.Layout(nil)
//	// cells are 100, 200 and 100 points wide
//
// Layout trees can also be loaded from TOML with [LoadDocument].
//
// # Constraints
//
// [Constraints] are the authored input: optional pins to each parent edge,
// a width and height [Dimension] (fixed points, percentage of the parent,
// auto or fr units), center anchors and an aspect ratio. [FromConstraints]
// normalises them into [ConstraintValues], whose MinSize, Size and Rect
// methods resolve a layer inside a parent. Opposing pins win over the
// declared size whenever the parent size is known. Nothing in the solver
// fails: anything it cannot resolve falls back to a 200×200 default.
//
// # Stacks
//
// [LayoutStack] measures children, derives the stack's auto size, hands the
// remaining space to fr children and distributes them along the main axis
// with [Distribution] and across it with [Alignment]. Anything that
// implements [StackChild] can be stacked; [Node] does.
//
// # Animation
//
// Animations are driven by a [Scheduler]. [Loop] is a manual one, stepped
// by a game loop (see the preview package) or by tests:
//
//	loop := framer.NewLoop()
//	value := framer.NewAnimatable(0.0)
//	framer.AnimateEaseOut(loop, value, 100.0, 0.5, framer.AnimationOptions{})
//	loop.RunFor(1)
//	// value.Get() == 100.0
//
// Timing comes from an [Animator]: [BezierAnimator] (CSS-style cubic
// curves), [SpringAnimator] (RK4 tension/friction, or a damping-ratio
// spring built on harmonica), [TweenAnimator] (the gween easing family) or
// [PrecalculatedAnimator]. Values are interpolated by [Kind]: numbers,
// colors (mixed in HUSL, HSL, HSV, Lab or RGB), maps of those, and
// anything else, which snaps halfway.
//
// # Diagnostics
//
// The package logs through a charmbracelet/log logger; replace it with
// [SetLogger]. [SetDebugMode] adds tree checks and per-layout timing.
package framer
