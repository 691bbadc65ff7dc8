package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/framer"
)

func newLayoutCmd() *cobra.Command {
	var (
		asJSON bool
		world  bool
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "layout <file.toml>",
		Short: "Resolve a layout document and print the rect tree",
		Long: `Resolve a layout document and print every node's frame.

Rects are relative to the parent unless --world is given. --width and
--height override the document's [parent] size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			doc, err := framer.LoadDocument(args[0])
			if err != nil {
				return err
			}
			if width > 0 && height > 0 {
				doc.Parent = &framer.Size{Width: width, Height: height}
			}
			doc.Layout()
			prog.done("layout resolved", "file", args[0])

			if asJSON {
				return writeLayoutJSON(cmd.OutOrStdout(), doc.Root, world)
			}
			writeLayoutTree(cmd.OutOrStdout(), doc.Root, world)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a tree")
	cmd.Flags().BoolVar(&world, "world", false, "print rects relative to the root")
	cmd.Flags().Float64Var(&width, "width", 0, "parent width (overrides the document)")
	cmd.Flags().Float64Var(&height, "height", 0, "parent height (overrides the document)")

	return cmd
}

type layoutNode struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind"`
	Visible  bool          `json:"visible"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Children []*layoutNode `json:"children,omitempty"`
}

func toLayoutNode(n *framer.Node, world bool) *layoutNode {
	r := n.Rect()
	if world {
		r = n.WorldRect()
	}
	out := &layoutNode{
		Name:    n.Name,
		Kind:    n.Type.String(),
		Visible: n.Visible,
		X:       r.X,
		Y:       r.Y,
		Width:   r.Width,
		Height:  r.Height,
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, toLayoutNode(c, world))
	}
	return out
}

func writeLayoutJSON(w io.Writer, root *framer.Node, world bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toLayoutNode(root, world)); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

func writeLayoutTree(w io.Writer, root *framer.Node, world bool) {
	var visit func(n *framer.Node, prefix string, last, isRoot bool)
	visit = func(n *framer.Node, prefix string, last, isRoot bool) {
		r := n.Rect()
		if world {
			r = n.WorldRect()
		}
		branch, childPrefix := "", ""
		if !isRoot {
			branch, childPrefix = treeBranch, prefix+treePipe
			if last {
				branch, childPrefix = treeLast, prefix+treeSpace
			}
		}

		kind := styleFrame.Render(n.Type.String())
		if n.Type == framer.NodeTypeStack {
			kind = styleStack.Render(n.Type.String())
		}
		line := fmt.Sprintf("%s %s %s", styleName.Render(n.Name), kind,
			styleValue.Render(formatRect(r)))
		if !n.Visible {
			line += " " + styleDim.Render("hidden")
		}
		fmt.Fprintln(w, styleDim.Render(prefix+branch)+line)

		children := n.Children()
		for i, c := range children {
			visit(c, childPrefix, i == len(children)-1, false)
		}
	}
	visit(root, "", true, true)
}

func formatRect(r framer.Rect) string {
	return fmt.Sprintf("(%s, %s) %s×%s", trimFloat(r.X), trimFloat(r.Y), trimFloat(r.Width), trimFloat(r.Height))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
