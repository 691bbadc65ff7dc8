// Package cli implements the framer command-line interface.
//
// # Commands
//
//   - layout: resolve a TOML layout document and print the rect tree
//   - curve: sample a bezier timing curve or a named ease
//   - animate: simulate an animation frame by frame
//   - preview: open a layout document in a window
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/framer"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the framer CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "framer",
		Short:        "Framer resolves constraint layouts and simulates animations",
		Long:         `Framer is a layout and animation toolkit: it resolves pinned, sized and stacked frames from TOML documents, samples timing curves and simulates animations frame by frame.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			framer.SetLogger(logger.WithPrefix("framer"))
			framer.SetDebugMode(verbose)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("framer %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCurveCmd())
	root.AddCommand(newAnimateCmd())
	root.AddCommand(newPreviewCmd())

	return root
}
