package framer

import "math"

// Optional is a float64 that may be absent. The zero value is absent.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a present value. Non-finite values (NaN, ±Inf) collapse to
// absent, which is how the solver treats them anyway.
func Some(v float64) Optional {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Optional{}
	}
	return Optional{Value: v, Valid: true}
}

// Or returns the value, or def when absent.
func (o Optional) Or(def float64) float64 {
	if o.Valid {
		return o.Value
	}
	return def
}

// Constraints describe how a layer is pinned and sized inside its parent,
// as authored. The zero value has no pins and a 0×0 fixed size; use
// DefaultConstraints for the editor defaults.
type Constraints struct {
	Left, Right, Top, Bottom Optional

	Width, Height Dimension

	// CenterX and CenterY place the layer's center when it is not pinned on
	// an axis, as a percentage (0..100) of the parent. Absent means 50.
	CenterX, CenterY Optional

	// AspectRatio is width / height. Zero or absent disables it.
	AspectRatio Optional

	// FixedSize marks content that sizes itself (e.g. text). Both axes are
	// then treated as fixed and opposing pins only position the layer.
	FixedSize bool
}

// DefaultConstraints returns an unpinned, centered 100×100 layer.
func DefaultConstraints() Constraints {
	return Constraints{
		Width:   Fixed(100),
		Height:  Fixed(100),
		CenterX: Some(50),
		CenterY: Some(50),
	}
}

// WithSize returns c with both dimensions replaced.
func (c Constraints) WithSize(width, height Dimension) Constraints {
	c.Width, c.Height = width, height
	return c
}

// WithWidth returns c with the width replaced.
func (c Constraints) WithWidth(d Dimension) Constraints {
	c.Width = d
	return c
}

// WithHeight returns c with the height replaced.
func (c Constraints) WithHeight(d Dimension) Constraints {
	c.Height = d
	return c
}

// PinLeft returns c pinned v points from the parent's left edge.
func (c Constraints) PinLeft(v float64) Constraints {
	c.Left = Some(v)
	return c
}

// PinRight returns c pinned v points from the parent's right edge.
func (c Constraints) PinRight(v float64) Constraints {
	c.Right = Some(v)
	return c
}

// PinTop returns c pinned v points from the parent's top edge.
func (c Constraints) PinTop(v float64) Constraints {
	c.Top = Some(v)
	return c
}

// PinBottom returns c pinned v points from the parent's bottom edge.
func (c Constraints) PinBottom(v float64) Constraints {
	c.Bottom = Some(v)
	return c
}

// WithCenter returns c with the center anchors set (percentages).
func (c Constraints) WithCenter(x, y float64) Constraints {
	c.CenterX, c.CenterY = Some(x), Some(y)
	return c
}

// WithAspectRatio returns c locked to the given width / height ratio.
func (c Constraints) WithAspectRatio(r float64) Constraints {
	c.AspectRatio = Some(r)
	return c
}

// WithFixedSize returns c with FixedSize set.
func (c Constraints) WithFixedSize(fixed bool) Constraints {
	c.FixedSize = fixed
	return c
}

// Values normalises c. Shorthand for FromConstraints(c).
func (c Constraints) Values() ConstraintValues {
	return FromConstraints(c)
}

// ConstraintValues is the normalised form of Constraints that the solver
// works on. Contradictory combinations have already been removed.
type ConstraintValues struct {
	Left, Right, Top, Bottom Optional

	WidthType, HeightType DimensionType
	Width, Height         Optional

	AspectRatio Optional

	// CenterAnchorX and CenterAnchorY are on the 0..1 scale.
	CenterAnchorX, CenterAnchorY float64
}

// FreeSpace is the budget a stack hands to its fractional children: the
// space to share out and the number of fr units sharing it, per axis.
type FreeSpace struct {
	InParent    Size
	UnitDivisor Size
}

// widthFor returns the width claimed by n fr units.
func (f *FreeSpace) widthFor(n float64) float64 {
	return share(f.InParent.Width, f.UnitDivisor.Width) * n
}

// heightFor returns the height claimed by n fr units.
func (f *FreeSpace) heightFor(n float64) float64 {
	return share(f.InParent.Height, f.UnitDivisor.Height) * n
}

// share divides space by units, yielding 0 when there are no units.
func share(space, units float64) float64 {
	if units == 0 {
		return 0
	}
	return space / units
}

// constraintMask is the boolean view of the pins that quickfix edits.
type constraintMask struct {
	left, right, top, bottom bool
	widthType, heightType    DimensionType
	aspectRatio              Optional
	fixedSize                bool
}

// quickfix drops mutually exclusive options from m.
func (m *constraintMask) quickfix() {
	if m.fixedSize {
		m.widthType = DimensionFixed
		m.heightType = DimensionFixed
		m.aspectRatio = Optional{}
	}
	if m.aspectRatio.Valid {
		if (m.left && m.right) || (m.top && m.bottom) {
			m.widthType = DimensionFixed
			m.heightType = DimensionFixed
		}
		if m.left && m.right && m.top && m.bottom {
			m.bottom = false
		}
		if m.widthType != DimensionFixed && m.heightType != DimensionFixed {
			m.heightType = DimensionFixed
		}
	}
	if m.left && m.right {
		m.widthType = DimensionFixed
		if m.fixedSize {
			m.right = false
		}
	}
	if m.top && m.bottom {
		m.heightType = DimensionFixed
		if m.fixedSize {
			m.bottom = false
		}
	}
}

// FromConstraints runs the quickfix normalisation over c and returns the
// values the solver resolves against.
func FromConstraints(c Constraints) ConstraintValues {
	ratio := c.AspectRatio
	if ratio.Valid && ratio.Value == 0 {
		ratio = Optional{}
	}
	m := constraintMask{
		left:        c.Left.Valid,
		right:       c.Right.Valid,
		top:         c.Top.Valid,
		bottom:      c.Bottom.Valid,
		widthType:   c.Width.Type,
		heightType:  c.Height.Type,
		aspectRatio: ratio,
		fixedSize:   c.FixedSize,
	}
	m.quickfix()

	v := ConstraintValues{
		AspectRatio:   m.aspectRatio,
		CenterAnchorX: 0.5,
		CenterAnchorY: 0.5,
	}
	v.WidthType, v.Width = maskedDimension(c.Width, m.widthType)
	v.HeightType, v.Height = maskedDimension(c.Height, m.heightType)

	if c.CenterX.Valid {
		v.CenterAnchorX = c.CenterX.Value / 100
	}
	if c.CenterY.Valid {
		v.CenterAnchorY = c.CenterY.Value / 100
	}
	if m.left {
		v.Left = c.Left
	}
	if m.right {
		v.Right = c.Right
	}
	if m.top {
		v.Top = c.Top
	}
	if m.bottom {
		v.Bottom = c.Bottom
	}
	return v
}

// maskedDimension reconciles the authored dimension with the type quickfix
// settled on. A relative dimension forced to fixed has no usable literal,
// so its value is dropped and the size falls back to pins or defaults.
func maskedDimension(d Dimension, masked DimensionType) (DimensionType, Optional) {
	if masked != DimensionFixed {
		if d.Type == DimensionAuto {
			return DimensionAuto, Optional{}
		}
		return d.Type, Some(d.Value)
	}
	if d.Type == DimensionFixed {
		return DimensionFixed, Some(d.Value)
	}
	return DimensionFixed, Optional{}
}

const (
	defaultWidth  = 200
	defaultHeight = 200
)

// fractionResolver turns a number of fr units into a length for one axis.
type fractionResolver func(units float64) Optional

// resolveLength resolves one axis. Opposing pins win when the parent length
// is known (non-zero), then a measured auto size, then the declared type.
func resolveLength(parent float64, start, end Optional, typ DimensionType, value Optional, auto Optional, fraction fractionResolver) Optional {
	if parent != 0 && start.Valid && end.Valid {
		return Some(parent - (start.Value + end.Value))
	}
	if auto.Valid && typ == DimensionAuto {
		return auto
	}
	if !value.Valid {
		return Optional{}
	}
	switch typ {
	case DimensionFixed:
		return value
	case DimensionFraction:
		return fraction(value.Value)
	case DimensionPercentage:
		if parent != 0 {
			return Some(parent * value.Value)
		}
	}
	return Optional{}
}

// sizeWithDefaults fills unresolved axes with the 200pt default and then
// applies the aspect ratio.
func (v ConstraintValues) sizeWithDefaults(width, height Optional) Size {
	w := width.Or(defaultWidth)
	h := height.Or(defaultHeight)
	if v.AspectRatio.Valid {
		r := v.AspectRatio.Value
		switch {
		case v.Left.Valid && v.Right.Valid:
			h = w / r
		case v.Top.Valid && v.Bottom.Valid:
			w = h * r
		case v.WidthType != DimensionFixed:
			h = w / r
		default:
			w = h * r
		}
	}
	return Size{Width: w, Height: h}
}

func (v ConstraintValues) resolveSize(parent, auto *Size, fw, fh fractionResolver) Size {
	var pw, ph float64
	if parent != nil {
		pw, ph = parent.Width, parent.Height
	}
	var aw, ah Optional
	if auto != nil {
		aw, ah = Some(auto.Width), Some(auto.Height)
	}
	w := resolveLength(pw, v.Left, v.Right, v.WidthType, v.Width, aw, fw)
	h := resolveLength(ph, v.Top, v.Bottom, v.HeightType, v.Height, ah, fh)
	return v.sizeWithDefaults(w, h)
}

func zeroFraction(float64) Optional { return Some(0) }

// MinSize returns the smallest size the layer can take. Fractional axes
// count as zero since they only ever grow into free space.
func (v ConstraintValues) MinSize(parent, auto *Size) Size {
	return v.resolveSize(parent, auto, zeroFraction, zeroFraction)
}

// Size resolves the layer's size. Fractional axes take their share of free;
// without a budget they resolve to zero.
func (v ConstraintValues) Size(parent, auto *Size, free *FreeSpace) Size {
	if free == nil {
		return v.resolveSize(parent, auto, zeroFraction, zeroFraction)
	}
	return v.resolveSize(parent, auto,
		func(n float64) Optional { return Some(free.widthFor(n)) },
		func(n float64) Optional { return Some(free.heightFor(n)) })
}

// Rect resolves the layer's frame relative to its parent. Unlike Size, a
// fractional axis without a budget stays unresolved and takes the default
// size. Set pixelAlign only when emitting final layout.
func (v ConstraintValues) Rect(parent, auto *Size, free *FreeSpace, pixelAlign bool) Rect {
	unresolved := func(float64) Optional { return Optional{} }
	fw, fh := fractionResolver(unresolved), fractionResolver(unresolved)
	if free != nil {
		fw = func(n float64) Optional { return Some(free.widthFor(n)) }
		fh = func(n float64) Optional { return Some(free.heightFor(n)) }
	}
	size := v.resolveSize(parent, auto, fw, fh)

	var pw, ph float64
	if parent != nil {
		pw, ph = parent.Width, parent.Height
	}
	r := Rect{Width: size.Width, Height: size.Height}
	r.X = positionOnAxis(pw, v.Left, v.Right, v.CenterAnchorX, size.Width)
	r.Y = positionOnAxis(ph, v.Top, v.Bottom, v.CenterAnchorY, size.Height)
	if pixelAlign {
		return r.PixelAligned()
	}
	return r
}

func positionOnAxis(parent float64, start, end Optional, anchor, length float64) float64 {
	switch {
	case start.Valid:
		return start.Value
	case parent != 0 && end.Valid:
		return parent - end.Value - length
	case parent != 0:
		return anchor*parent - length/2
	}
	return 0
}

// Resolve normalises c and returns its frame inside parent. parent, auto and
// free may each be nil.
func Resolve(c Constraints, parent, auto *Size, free *FreeSpace) Rect {
	return FromConstraints(c).Rect(parent, auto, free, false)
}
