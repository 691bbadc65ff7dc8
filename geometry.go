package framer

import "math"

// Point is a 2D position or control point.
type Point struct {
	X, Y float64
}

// Size is a width/height pair. A nil *Size is used throughout the layout API
// to mean "unknown".
type Size struct {
	Width, Height float64
}

// Shrink returns s reduced by the insets on each axis.
func (s Size) Shrink(in Insets) Size {
	return Size{Width: s.Width - in.Horizontal(), Height: s.Height - in.Vertical()}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rect's width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// PixelAligned snaps the origin and the far edges to whole pixels. Width and
// height are recomputed from the snapped edges so adjacent rects never gain
// or lose a pixel between them.
func (r Rect) PixelAligned() Rect {
	x := roundHalfUp(r.X)
	y := roundHalfUp(r.Y)
	maxX := roundHalfUp(r.X + r.Width)
	maxY := roundHalfUp(r.Y + r.Height)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(maxX-x, 0),
		Height: math.Max(maxY-y, 0),
	}
}

// roundHalfUp rounds half-way values toward positive infinity, so -0.5
// becomes 0 rather than -1.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Insets holds per-side padding.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Total returns the combined padding as a size.
func (in Insets) Total() Size {
	return Size{Width: in.Horizontal(), Height: in.Vertical()}
}
