package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/framer"
)

func newCurveCmd() *cobra.Command {
	var (
		samples  int
		ease     string
		duration float64
	)

	cmd := &cobra.Command{
		Use:   "curve [preset|x1,y1,x2,y2]",
		Short: "Sample a timing curve",
		Long: `Sample a cubic bezier timing curve at evenly spaced x values.

The curve is a preset (linear, ease, ease-in, ease-out, ease-in-out) or
four comma separated control point coordinates. With --ease, a named
tween ease (e.g. out-bounce) is sampled instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("--samples must be at least 2")
			}
			fn, label, err := curveFunc(args, ease, duration)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("sampling curve", "curve", label, "samples", samples)
			writeCurve(cmd.OutOrStdout(), fn, samples)
			return nil
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 11, "number of samples including both ends")
	cmd.Flags().StringVar(&ease, "ease", "", "sample a named tween ease instead of a bezier")
	cmd.Flags().Float64Var(&duration, "duration", 1, "animation duration used to pick the solver precision")

	return cmd
}

func curveFunc(args []string, ease string, duration float64) (func(float64) float64, string, error) {
	if ease != "" {
		fn, err := framer.ParseEase(ease)
		if err != nil {
			return nil, "", err
		}
		return framer.EaseCurve(fn), ease, nil
	}
	name := "ease"
	if len(args) > 0 {
		name = args[0]
	}
	curve, err := framer.ParseCurve(name)
	if err != nil {
		return nil, "", err
	}
	solver := curve.Solver()
	eps := framer.SolveEpsilon(duration)
	return func(x float64) float64 { return solver.Solve(x, eps) }, name, nil
}

func writeCurve(w io.Writer, fn func(float64) float64, samples int) {
	widths := []int{6, 8}
	printHeader(w, widths, "x", "y")
	for i := 0; i < samples; i++ {
		x := float64(i) / float64(samples-1)
		printRow(w, widths, fmt.Sprintf("%.3f", x), fmt.Sprintf("%.4f", fn(x)))
	}
}
