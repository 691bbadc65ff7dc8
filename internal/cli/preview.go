package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/framer"
	"github.com/phanxgames/framer/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		width, height int
		showFPS       bool
		labels        bool
		resizable     bool
		screenshots   string
	)

	cmd := &cobra.Command{
		Use:   "preview <file.toml>",
		Short: "Open a layout document in a window",
		Long: `Open a layout document in a window. The root is laid out against the
window size, so resizing (with --resizable) re-runs the layout. Press F12
to save a screenshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := framer.LoadDocument(args[0])
			if err != nil {
				return err
			}
			if doc.Parent != nil && width == 0 && height == 0 {
				width, height = int(doc.Parent.Width), int(doc.Parent.Height)
			}

			scene := preview.NewScene(doc.Root)
			scene.ClearColor = framer.Color{R: 0.118, G: 0.118, B: 0.157, A: 1}
			scene.ShowLabels = labels
			scene.ScreenshotDir = screenshots

			logger.Info("opening preview", "file", args[0], "nodes", countNodes(doc.Root))
			return preview.Run(scene, preview.RunConfig{
				Title:       "framer: " + args[0],
				Width:       width,
				Height:      height,
				ShowFPS:     showFPS,
				Resizable:   resizable,
				Screenshots: true,
			})
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "window width (default: document parent or 640)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (default: document parent or 480)")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show an FPS counter")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw node names")
	cmd.Flags().BoolVar(&resizable, "resizable", false, "allow resizing the window")
	cmd.Flags().StringVar(&screenshots, "screenshots", "screenshots", "directory for F12 screenshots")

	return cmd
}

func countNodes(root *framer.Node) int {
	n := 0
	root.Walk(func(*framer.Node, int) bool {
		n++
		return true
	})
	return n
}
