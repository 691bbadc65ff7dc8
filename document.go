package framer

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKind is returned when a document node has a kind other than
// "frame" or "stack".
var ErrUnknownKind = errors.New("framer: unknown node kind")

// Document is a layout tree loaded from TOML.
type Document struct {
	// Parent is the size the root is laid out in, nil when unknown.
	Parent *Size
	Root   *Node
}

// Layout lays out the whole document.
func (d *Document) Layout() {
	d.Root.Layout(d.Parent)
}

// LoadDocument reads and parses a TOML layout document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("framer: load document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

// ParseDocument parses a TOML layout document.
func ParseDocument(data []byte) (*Document, error) {
	var file documentFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("framer: parse document: %w", err)
	}
	if file.Root == nil {
		return nil, errors.New("framer: parse document: missing [root] table")
	}

	doc := &Document{}
	if file.Parent != nil {
		doc.Parent = &Size{Width: file.Parent.Width.Value, Height: file.Parent.Height.Value}
	}
	root, err := file.Root.build("root")
	if err != nil {
		return nil, fmt.Errorf("framer: parse document: %w", err)
	}
	doc.Root = root
	return doc, nil
}

type documentFile struct {
	Parent *struct {
		Width  docNumber `toml:"width"`
		Height docNumber `toml:"height"`
	} `toml:"parent"`
	Root *nodeSpec `toml:"root"`
}

type nodeSpec struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`

	Width       docDimension `toml:"width"`
	Height      docDimension `toml:"height"`
	Left        docNumber    `toml:"left"`
	Right       docNumber    `toml:"right"`
	Top         docNumber    `toml:"top"`
	Bottom      docNumber    `toml:"bottom"`
	CenterX     docPercent   `toml:"center_x"`
	CenterY     docPercent   `toml:"center_y"`
	AspectRatio docNumber    `toml:"aspect_ratio"`
	FixedSize   bool         `toml:"fixed_size"`
	Visible     *bool        `toml:"visible"`

	Direction     string    `toml:"direction"`
	Distribution  string    `toml:"distribution"`
	Alignment     string    `toml:"alignment"`
	Gap           docNumber `toml:"gap"`
	Padding       docNumber `toml:"padding"`
	PaddingTop    docNumber `toml:"padding_top"`
	PaddingRight  docNumber `toml:"padding_right"`
	PaddingBottom docNumber `toml:"padding_bottom"`
	PaddingLeft   docNumber `toml:"padding_left"`

	Color string    `toml:"color"`
	Alpha docNumber `toml:"alpha"`

	Children []nodeSpec `toml:"children"`
}

func (s *nodeSpec) build(path string) (*Node, error) {
	name := s.Name
	if name == "" {
		name = path
	}

	c := s.constraints()

	var n *Node
	switch strings.ToLower(s.Kind) {
	case "", "frame":
		n = NewFrame(name, c)
	case "stack":
		st, err := s.stack()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		n = NewStack(name, st, c)
	default:
		return nil, fmt.Errorf("node %q: %w: %q", name, ErrUnknownKind, s.Kind)
	}

	if s.Visible != nil {
		n.Visible = *s.Visible
	}
	if s.Color != "" {
		col, err := ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		n.Color = col
	}
	n.Alpha = s.Alpha.Or(1)

	for i := range s.Children {
		child, err := s.Children[i].build(fmt.Sprintf("%s.%d", name, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (s *nodeSpec) constraints() Constraints {
	c := DefaultConstraints()
	if s.Width.set {
		c.Width = s.Width.Dimension
	}
	if s.Height.set {
		c.Height = s.Height.Dimension
	}
	c.Left = s.Left.Optional
	c.Right = s.Right.Optional
	c.Top = s.Top.Optional
	c.Bottom = s.Bottom.Optional
	if s.CenterX.Valid {
		c.CenterX = s.CenterX.Optional
	}
	if s.CenterY.Valid {
		c.CenterY = s.CenterY.Optional
	}
	c.AspectRatio = s.AspectRatio.Optional
	c.FixedSize = s.FixedSize
	return c
}

func (s *nodeSpec) stack() (Stack, error) {
	st := DefaultStack()
	var err error
	if s.Direction != "" {
		if st.Direction, err = ParseDirection(s.Direction); err != nil {
			return st, err
		}
	}
	if s.Distribution != "" {
		if st.Distribution, err = ParseDistribution(s.Distribution); err != nil {
			return st, err
		}
	}
	if s.Alignment != "" {
		if st.Alignment, err = ParseAlignment(s.Alignment); err != nil {
			return st, err
		}
	}
	st.Gap = s.Gap.Or(st.Gap)

	p := UniformInsets(s.Padding.Or(0))
	p.Top = s.PaddingTop.Or(p.Top)
	p.Right = s.PaddingRight.Or(p.Right)
	p.Bottom = s.PaddingBottom.Or(p.Bottom)
	p.Left = s.PaddingLeft.Or(p.Left)
	st.Padding = p
	return st, nil
}

// docNumber accepts TOML integers and floats.
type docNumber struct {
	Optional
}

func (n *docNumber) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		n.Optional = Some(float64(x))
	case float64:
		n.Optional = Some(x)
	default:
		return fmt.Errorf("expected a number, got %T", v)
	}
	return nil
}

// docPercent accepts a number or a "50%" string, both meaning percent.
type docPercent struct {
	Optional
}

func (p *docPercent) UnmarshalTOML(v any) error {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid percentage %q", s)
		}
		p.Optional = Some(f)
		return nil
	}
	var n docNumber
	if err := n.UnmarshalTOML(v); err != nil {
		return err
	}
	p.Optional = n.Optional
	return nil
}

// docDimension accepts a number (fixed points) or a dimension string
// ("auto", "1fr", "50%", "120").
type docDimension struct {
	Dimension
	set bool
}

func (d *docDimension) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		d.Dimension = Fixed(float64(x))
	case float64:
		d.Dimension = Fixed(x)
	case string:
		dim, err := ParseDimension(x)
		if err != nil {
			return err
		}
		d.Dimension = dim
	default:
		return fmt.Errorf("%w: unsupported value %v", ErrInvalidDimension, v)
	}
	d.set = true
	return nil
}
