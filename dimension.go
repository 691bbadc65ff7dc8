package framer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDimension is returned by ParseDimension for malformed input.
var ErrInvalidDimension = errors.New("framer: invalid dimension")

// DimensionType selects how one axis of a layer is sized.
type DimensionType uint8

const (
	DimensionFixed      DimensionType = iota // literal size in points
	DimensionPercentage                      // fraction (0..1) of the parent's size
	DimensionAuto                            // measured from content or children
	DimensionFraction                        // share of the free space left by siblings ("fr")
)

func (t DimensionType) String() string {
	switch t {
	case DimensionFixed:
		return "fixed"
	case DimensionPercentage:
		return "percentage"
	case DimensionAuto:
		return "auto"
	case DimensionFraction:
		return "fraction"
	}
	return fmt.Sprintf("DimensionType(%d)", uint8(t))
}

// Dimension is the sizing intent for one axis. Value is ignored for
// DimensionAuto; percentages are stored normalised to 0..1.
type Dimension struct {
	Type  DimensionType
	Value float64
}

// Fixed returns a fixed dimension of v points.
func Fixed(v float64) Dimension { return Dimension{Type: DimensionFixed, Value: v} }

// Percent returns a percentage dimension; p is on the 0..100 scale.
func Percent(p float64) Dimension { return Dimension{Type: DimensionPercentage, Value: p / 100} }

// Fraction returns an n "fr" dimension.
func Fraction(n float64) Dimension { return Dimension{Type: DimensionFraction, Value: n} }

// Auto returns a content-sized dimension.
func Auto() Dimension { return Dimension{Type: DimensionAuto} }

// IsFraction reports whether d claims a share of free space.
func (d Dimension) IsFraction() bool { return d.Type == DimensionFraction }

// String renders d in the same notation ParseDimension accepts.
func (d Dimension) String() string {
	switch d.Type {
	case DimensionAuto:
		return "auto"
	case DimensionPercentage:
		return formatFloat(d.Value*100) + "%"
	case DimensionFraction:
		return formatFloat(d.Value) + "fr"
	}
	return formatFloat(d.Value)
}

// ParseDimension parses "auto", "<n>fr", "<n>%" or a plain number.
// Surrounding whitespace is ignored.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "fr"):
		v, err := parseLeadingFloat(strings.TrimSuffix(s, "fr"))
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
		}
		return Fraction(v), nil
	case strings.HasSuffix(s, "%"):
		v, err := parseLeadingFloat(strings.TrimSuffix(s, "%"))
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
		}
		return Percent(v), nil
	}
	v, err := parseLeadingFloat(s)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}
	return Fixed(v), nil
}

// MustParseDimension is like ParseDimension but panics on error.
func MustParseDimension(s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalText lets dimensions be decoded from TOML strings.
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func parseLeadingFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
