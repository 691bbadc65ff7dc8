package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/framer"
)

type animateOptions struct {
	from, to     string
	curve        string
	ease         string
	duration     float64
	fps          float64
	model        string
	spring       bool
	tension      float64
	friction     float64
	damping      float64
	mass         float64
	velocity     float64
	precalculate bool
}

func newAnimateCmd() *cobra.Command {
	var opts animateOptions

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Simulate an animation and print every frame",
		Long: `Simulate an animation on a manually stepped loop and print the value
of every frame.

Values are numbers or hex colors (#rrggbb). Timing is a bezier curve by
default, a named tween ease with --ease, or a spring with --spring.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			frames, err := simulate(opts)
			if err != nil {
				return err
			}
			logger.Debug("animation simulated", "frames", len(frames))
			writeFrames(cmd.OutOrStdout(), frames)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "0", "start value (number or #hex color)")
	f.StringVar(&opts.to, "to", "1", "end value (number or #hex color)")
	f.StringVar(&opts.curve, "curve", "ease", "bezier preset or x1,y1,x2,y2")
	f.StringVar(&opts.ease, "ease", "", "named tween ease (overrides --curve)")
	f.Float64Var(&opts.duration, "duration", 1, "duration in seconds (bezier, tween, damping spring)")
	f.Float64Var(&opts.fps, "fps", 60, "simulation frame rate")
	f.StringVar(&opts.model, "model", "husl", "color model for color values (husl, hsl, hsv, lab, rgb)")
	f.BoolVar(&opts.spring, "spring", false, "use a spring instead of a curve")
	f.Float64Var(&opts.tension, "tension", 0, "spring tension")
	f.Float64Var(&opts.friction, "friction", 0, "spring friction")
	f.Float64Var(&opts.damping, "damping", 0, "spring damping ratio (selects the duration based spring)")
	f.Float64Var(&opts.mass, "mass", 0, "spring mass")
	f.Float64Var(&opts.velocity, "velocity", 0, "spring initial velocity")
	f.BoolVar(&opts.precalculate, "precalculate", false, "sample the animation up front")

	return cmd
}

type frameValue struct {
	frame int
	time  float64
	value any
}

// simulate plays the animation on a fresh loop and records the target's
// value after every tick, ending with the finish value.
func simulate(opts animateOptions) ([]frameValue, error) {
	if opts.fps <= 0 {
		return nil, fmt.Errorf("--fps must be positive")
	}
	from, err := parseValue(opts.from)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := parseValue(opts.to)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	model, err := framer.ParseColorModel(opts.model)
	if err != nil {
		return nil, err
	}
	animOpts := framer.AnimationOptions{ColorModel: model, Precalculate: opts.precalculate}
	animator, err := buildAnimator(opts, animOpts)
	if err != nil {
		return nil, err
	}

	loop := framer.NewLoop()
	loop.TimeStep = 1 / opts.fps
	value := framer.NewAnimatable(from)

	var frames []frameValue
	value.OnUpdate(func(v, _ any) {
		frames = append(frames, frameValue{frame: loop.Frame() + 1, time: loop.Time() + loop.TimeStep, value: v})
	})
	framer.NewAnimation(loop, value, from, to, animator, animOpts).Play()

	// A spring that never settles is cut off after a minute of frames.
	for i := 0; loop.Active() > 0 && i < int(60*opts.fps); i++ {
		loop.Step()
	}
	return frames, nil
}

func buildAnimator(opts animateOptions, animOpts framer.AnimationOptions) (framer.Animator, error) {
	interp := framer.ValueInterpolation{ColorModel: animOpts.ColorModel}
	switch {
	case opts.spring:
		return framer.NewSpringAnimator(framer.SpringOptions{
			Tension:      opts.tension,
			Friction:     opts.friction,
			DampingRatio: opts.damping,
			Duration:     opts.duration,
			Mass:         opts.mass,
			Velocity:     opts.velocity,
		}, interp), nil
	case opts.ease != "":
		fn, err := framer.ParseEase(opts.ease)
		if err != nil {
			return nil, err
		}
		return framer.NewTweenAnimator(framer.TweenOptions{Ease: fn, Duration: opts.duration}, interp), nil
	default:
		curve, err := framer.ParseCurve(opts.curve)
		if err != nil {
			return nil, err
		}
		return framer.NewBezierAnimator(framer.BezierOptions{Curve: curve, Duration: opts.duration}, interp), nil
	}
}

// parseValue reads a number or a hex color.
func parseValue(s string) (any, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	c, err := framer.ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a number nor a color", s)
	}
	return c, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.4f", x)
	case framer.Color:
		return x.Hex()
	}
	return fmt.Sprint(v)
}

func writeFrames(w io.Writer, frames []frameValue) {
	widths := []int{5, 7, 10}
	printHeader(w, widths, "frame", "time", "value")
	for _, f := range frames {
		printRow(w, widths, strconv.Itoa(f.frame), fmt.Sprintf("%.3f", f.time), formatValue(f.value))
	}
}
