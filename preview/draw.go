package preview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/framer"
)

// whitePixel is a 1x1 white image scaled and tinted to draw solid rects.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// drawRect is one solid rectangle in screen space.
type drawRect struct {
	name  string
	rect  framer.Rect
	color framer.Color
	alpha float64
}

// collectRects appends the world rects of every visible node in paint order
// (parents before children). Alpha multiplies down the tree.
func collectRects(root *framer.Node, buf []drawRect) []drawRect {
	var visit func(n *framer.Node, x, y, alpha float64)
	visit = func(n *framer.Node, x, y, alpha float64) {
		if !n.Visible {
			return
		}
		r := n.Rect().Offset(x, y)
		alpha *= n.Alpha
		if alpha > 0 && r.Width > 0 && r.Height > 0 {
			buf = append(buf, drawRect{name: n.Name, rect: r, color: n.Color, alpha: alpha})
		}
		for _, c := range n.Children() {
			visit(c, r.X, r.Y, alpha)
		}
	}
	visit(root, 0, 0, 1)
	return buf
}

func submitRects(screen *ebiten.Image, rects []drawRect, labels bool) {
	var op ebiten.DrawImageOptions
	for i := range rects {
		d := &rects[i]
		op.GeoM.Reset()
		op.GeoM.Scale(d.rect.Width, d.rect.Height)
		op.GeoM.Translate(d.rect.X, d.rect.Y)
		op.ColorScale.Reset()
		a := float32(d.color.A * d.alpha)
		op.ColorScale.Scale(float32(d.color.R)*a, float32(d.color.G)*a, float32(d.color.B)*a, a)
		screen.DrawImage(whitePixel, &op)
		if labels && d.name != "" {
			ebitenutil.DebugPrintAt(screen, d.name, int(d.rect.X)+2, int(d.rect.Y)+2)
		}
	}
}
