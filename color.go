package framer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// RGBA implements image/color.Color (alpha-premultiplied, 16 bits).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return r, g, b, a
}

// Hex formats c as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	h := c.colorful().Clamped().Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(math.Round(clamp01(c.A)*255)))
}

func (c Color) String() string { return c.Hex() }

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa hex colors.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("framer: parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("framer: parse color %q: %w", s, err)
	}
	return fromColorful(c, alpha), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorModel selects the space colors are mixed in.
type ColorModel uint8

const (
	ColorModelHUSL ColorModel = iota // perceptually uniform, hue takes the short way round
	ColorModelHSL
	ColorModelHSV
	ColorModelLab
	ColorModelRGB
)

var colorModelNames = [...]string{"husl", "hsl", "hsv", "lab", "rgb"}

func (m ColorModel) String() string {
	if int(m) < len(colorModelNames) {
		return colorModelNames[m]
	}
	return fmt.Sprintf("ColorModel(%d)", uint8(m))
}

// ParseColorModel parses a model name such as "husl" or "rgb".
func ParseColorModel(s string) (ColorModel, error) {
	i, err := lookupName(colorModelNames[:], s, "color model")
	return ColorModel(i), err
}

// MixColors blends from toward to by progress in the given model. Alpha is
// always mixed linearly.
func MixColors(from, to Color, progress float64, model ColorModel) Color {
	alpha := from.A + (to.A-from.A)*progress
	a, b := from.colorful(), to.colorful()
	switch model {
	case ColorModelHUSL:
		h1, s1, l1 := a.HSLuv()
		h2, s2, l2 := b.HSLuv()
		h := mixHue(h1, h2, progress)
		return fromColorful(colorful.HSLuv(h, lerp(s1, s2, progress), lerp(l1, l2, progress)), alpha)
	case ColorModelHSL:
		h1, s1, l1 := a.Hsl()
		h2, s2, l2 := b.Hsl()
		h := mixHue(h1, h2, progress)
		return fromColorful(colorful.Hsl(h, lerp(s1, s2, progress), lerp(l1, l2, progress)), alpha)
	case ColorModelHSV:
		return fromColorful(a.BlendHsv(b, progress), alpha)
	case ColorModelLab:
		return fromColorful(a.BlendLab(b, progress), alpha)
	}
	return fromColorful(a.BlendRgb(b, progress), alpha)
}

// mixHue interpolates hue angles in degrees along the shorter arc.
func mixHue(h1, h2, t float64) float64 {
	d := h2 - h1
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	h := math.Mod(h1+d*t, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ColorDifference returns the weighted ("redmean") RGB distance between two
// colors, computed on 0..255 channels. Alpha is ignored.
func ColorDifference(a, b Color) float64 {
	r1, g1, b1 := a.R*255, a.G*255, a.B*255
	r2, g2, b2 := b.R*255, b.G*255, b.B*255
	rm := (r1 + r2) / 2
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return math.Sqrt((2+rm/256)*dr*dr + 4*dg*dg + (2+(255-rm)/256)*db*db)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
