package framer

import (
	"fmt"
	"math"
	"strings"
)

// Direction is a stack's main axis.
type Direction uint8

const (
	DirectionVertical   Direction = iota // children flow top to bottom
	DirectionHorizontal                  // children flow left to right
)

// Distribution spaces children along the main axis.
type Distribution uint8

const (
	DistributeStart        Distribution = iota // packed at the start, gap between
	DistributeCenter                           // packed in the middle, gap between
	DistributeEnd                              // packed at the end, gap between
	DistributeSpaceBetween                     // first and last flush to the edges
	DistributeSpaceAround                      // half spacing at the edges
	DistributeSpaceEvenly                      // equal spacing at edges and between
)

// Alignment places children on the cross axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

var (
	directionNames    = [...]string{"vertical", "horizontal"}
	distributionNames = [...]string{"start", "center", "end", "space-between", "space-around", "space-evenly"}
	alignmentNames    = [...]string{"start", "center", "end"}
)

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Distribution) String() string {
	if int(d) < len(distributionNames) {
		return distributionNames[d]
	}
	return fmt.Sprintf("Distribution(%d)", uint8(d))
}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseDirection parses "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	i, err := lookupName(directionNames[:], s, "direction")
	return Direction(i), err
}

// ParseDistribution parses a distribution name such as "space-between".
func ParseDistribution(s string) (Distribution, error) {
	i, err := lookupName(distributionNames[:], s, "distribution")
	return Distribution(i), err
}

// ParseAlignment parses "start", "center" or "end".
func ParseAlignment(s string) (Alignment, error) {
	i, err := lookupName(alignmentNames[:], s, "alignment")
	return Alignment(i), err
}

func lookupName(names []string, s, what string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("framer: unknown %s %q", what, s)
}

// gapEnabled reports whether the distribution packs children with a fixed
// gap. The space-* distributions produce their own spacing.
func (d Distribution) gapEnabled() bool {
	return d == DistributeStart || d == DistributeCenter || d == DistributeEnd
}

// Stack configures the stack layout algorithm.
type Stack struct {
	Direction    Direction
	Distribution Distribution
	Alignment    Alignment
	Gap          float64
	Padding      Insets
}

// DefaultStack returns the editor defaults: vertical, space-around,
// centered, with a 10pt gap.
func DefaultStack() Stack {
	return Stack{
		Direction:    DirectionVertical,
		Distribution: DistributeSpaceAround,
		Alignment:    AlignCenter,
		Gap:          10,
	}
}

func (s Stack) horizontal() bool { return s.Direction == DirectionHorizontal }

// StackChild is anything a stack can lay out. Frames, nested stacks and
// plain constraint leaves all implement it.
type StackChild interface {
	// IsVisible reports whether the child takes part in layout.
	IsVisible() bool
	// LayoutConstraints returns the child's authored constraints. Only the
	// width and height dimensions are consulted, to count fr units.
	LayoutConstraints() Constraints
	// MinSize measures the child against a parent of the given size.
	MinSize(parent *Size) Size
	// Size resolves the child's final size given the stack's content size
	// and free-space budget.
	Size(parent *Size, free *FreeSpace) Size
}

// leaf is a StackChild sized purely by its own constraints.
type leaf struct {
	c      Constraints
	hidden bool
}

// Leaf wraps constraints as a visible stack child with no children of its own.
func Leaf(c Constraints) StackChild { return leaf{c: c} }

// HiddenLeaf is like Leaf but the child is invisible.
func HiddenLeaf(c Constraints) StackChild { return leaf{c: c, hidden: true} }

func (l leaf) IsVisible() bool                { return !l.hidden }
func (l leaf) LayoutConstraints() Constraints { return l.c }
func (l leaf) MinSize(parent *Size) Size {
	return FromConstraints(l.c).MinSize(parent, nil)
}
func (l leaf) Size(parent *Size, free *FreeSpace) Size {
	return FromConstraints(l.c).Size(parent, nil, free)
}

// StackEntry is the resolved layout of one stack child. Invisible children
// keep their slot so Index always matches the input position.
type StackEntry struct {
	Index   int
	Visible bool
	MinSize Size
	Size    Size
	Rect    Rect
}

// StackLayout is the result of LayoutStack.
type StackLayout struct {
	// Size is the stack's own resolved size.
	Size Size
	// Rect is the stack's frame inside its parent, pixel aligned.
	Rect Rect
	// AutoSize is the content-derived size used for auto dimensions.
	AutoSize Size
	// FreeSpace is the budget handed to fractional children.
	FreeSpace FreeSpace
	Children  []StackEntry
}

// LayoutStack lays children out inside a stack with the given constraints.
// parent may be nil when the stack's container size is unknown. Child rects
// are relative to the stack's own origin.
func LayoutStack(s Stack, self Constraints, parent *Size, children []StackChild) StackLayout {
	values := FromConstraints(self)

	visible := make([]bool, len(children))
	for i, c := range children {
		visible[i] = c.IsVisible()
	}

	minSize := values.MinSize(parent, nil)
	minContent := minSize.Shrink(s.Padding)
	mins := make([]Size, len(children))
	for i, c := range children {
		mins[i] = c.MinSize(&minContent)
	}

	auto := s.AutoSize(mins, visible)
	size := values.Size(parent, &auto, nil)
	free := s.FreeSpaceFor(size, auto, ChildFractions(children))
	content := size.Shrink(s.Padding)

	sizes := make([]Size, len(children))
	for i, c := range children {
		sizes[i] = c.Size(&content, &free)
	}

	rects := s.PositionChildren(sizes, visible, content, s.autoSizedOnMainAxis(self))

	out := StackLayout{
		Size:      size,
		Rect:      values.Rect(parent, &auto, nil, true),
		AutoSize:  auto,
		FreeSpace: free,
		Children:  make([]StackEntry, len(children)),
	}
	for i := range children {
		out.Children[i] = StackEntry{
			Index:   i,
			Visible: visible[i],
			MinSize: mins[i],
			Size:    sizes[i],
			Rect:    rects[i],
		}
	}
	return out
}

// StackMinSize measures a stack used as a child of another stack. Children
// are only measured when one of the stack's own axes is auto.
func StackMinSize(s Stack, self Constraints, parent *Size, children []StackChild) Size {
	values := FromConstraints(self)
	auto := s.measureAuto(values, self, parent, children)
	return values.MinSize(parent, auto)
}

// StackSize resolves the size of a stack used as a child of another stack.
func StackSize(s Stack, self Constraints, parent *Size, free *FreeSpace, children []StackChild) Size {
	values := FromConstraints(self)
	auto := s.measureAuto(values, self, parent, children)
	return values.Size(parent, auto, free)
}

func (s Stack) measureAuto(values ConstraintValues, self Constraints, parent *Size, children []StackChild) *Size {
	if self.Width.Type != DimensionAuto && self.Height.Type != DimensionAuto {
		return nil
	}
	minSize := values.MinSize(parent, nil)
	mins := make([]Size, len(children))
	visible := make([]bool, len(children))
	for i, c := range children {
		mins[i] = c.MinSize(&minSize)
		visible[i] = c.IsVisible()
	}
	auto := s.AutoSize(mins, visible)
	return &auto
}

func (s Stack) autoSizedOnMainAxis(self Constraints) bool {
	if s.horizontal() {
		return self.Width.Type == DimensionAuto
	}
	return self.Height.Type == DimensionAuto
}

// AutoSize sums visible children on the main axis and takes their maximum
// on the cross axis. Gaps are added for gap-enabled distributions, then the
// padding.
func (s Stack) AutoSize(mins []Size, visible []bool) Size {
	var w, h float64
	invisible := 0
	for i, m := range mins {
		if !visible[i] {
			invisible++
			continue
		}
		if s.horizontal() {
			w += m.Width
			h = math.Max(h, m.Height)
		} else {
			h += m.Height
			w = math.Max(w, m.Width)
		}
	}
	if s.Distribution.gapEnabled() {
		gaps := float64(max(0, len(mins)-1-invisible)) * s.Gap
		if s.horizontal() {
			w += gaps
		} else {
			h += gaps
		}
	}
	pad := s.Padding.Total()
	return Size{Width: w + pad.Width, Height: h + pad.Height}
}

// ChildFractions sums the fr units declared by visible children per axis.
func ChildFractions(children []StackChild) Size {
	var units Size
	for _, c := range children {
		if !c.IsVisible() {
			continue
		}
		cc := c.LayoutConstraints()
		if cc.Width.IsFraction() {
			units.Width += cc.Width.Value
		}
		if cc.Height.IsFraction() {
			units.Height += cc.Height.Value
		}
	}
	return units
}

// FreeSpaceFor computes the budget for fractional children. On the main axis
// it is whatever the stack has beyond its auto size. On the cross axis every
// fr unit gets the full content extent, so 1fr stretches a child across.
func (s Stack) FreeSpaceFor(size, auto, units Size) FreeSpace {
	free := Size{
		Width:  math.Max(0, size.Width-auto.Width),
		Height: math.Max(0, size.Height-auto.Height),
	}
	pad := s.Padding.Total()
	if s.horizontal() {
		free.Height = units.Height * (size.Height - pad.Height)
	} else {
		free.Width = units.Width * (size.Width - pad.Width)
	}
	return FreeSpace{InParent: free, UnitDivisor: units}
}

// PositionChildren places children of the given sizes inside a content box.
// autoSized forces start distribution, since an auto-sized stack has no
// spare room to distribute. Visible rects are offset by the padding and
// pixel aligned; invisible ones keep only their cross-axis alignment.
func (s Stack) PositionChildren(sizes []Size, visible []bool, content Size, autoSized bool) []Rect {
	n := len(sizes)
	if n == 0 {
		return nil
	}
	column := !s.horizontal()
	distribution := s.Distribution
	if autoSized {
		distribution = DistributeStart
	}

	fitting := 0.0
	invisible := 0
	rects := make([]Rect, n)
	for i, sz := range sizes {
		if visible[i] {
			if column {
				fitting += sz.Height
			} else {
				fitting += sz.Width
			}
		} else {
			invisible++
		}
		r := Rect{Width: sz.Width, Height: sz.Height}
		switch s.Alignment {
		case AlignCenter:
			if column {
				r.X = content.Width/2 - sz.Width/2
			} else {
				r.Y = content.Height/2 - sz.Height/2
			}
		case AlignEnd:
			if column {
				r.X = content.Width - sz.Width
			} else {
				r.Y = content.Height - sz.Height
			}
		}
		rects[i] = r
	}

	axis := content.Width
	if column {
		axis = content.Height
	}
	gap := 0.0
	if s.Distribution.gapEnabled() {
		gap = s.Gap
	}
	shown := n - invisible

	offset := 0.0
	switch distribution {
	case DistributeCenter:
		fitting += float64(max(shown-1, 0)) * gap
		offset = axis/2 - fitting/2
	case DistributeEnd:
		fitting += float64(max(shown-1, 0)) * gap
		offset = axis - fitting
	}
	empty := math.Max(axis, fitting) - fitting

	iter := 0.0
	k := 0
	for i := range rects {
		if !visible[i] {
			continue
		}
		r := &rects[i]
		idx := float64(k)
		var pos float64
		switch distribution {
		case DistributeStart, DistributeCenter, DistributeEnd:
			pos = offset + iter + idx*gap
		case DistributeSpaceBetween:
			pos = iter + empty/float64(max(1, shown-1))*idx
		case DistributeSpaceAround:
			spacing := empty / float64(shown*2)
			pos = iter + spacing*idx + spacing*(idx+1)
		case DistributeSpaceEvenly:
			spacing := empty / float64(shown+1)
			pos = iter + spacing*(idx+1)
		}
		if column {
			r.Y = pos
			iter += r.Height
		} else {
			r.X = pos
			iter += r.Width
		}
		*r = r.Offset(s.Padding.Left, s.Padding.Top).PixelAligned()
		k++
	}
	return rects
}
