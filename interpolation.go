package framer

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Kind is the interpolation category of a value. The set is closed: a value
// that fits none of the interpolating kinds snaps as KindNoOp.
type Kind uint8

const (
	KindNoOp       Kind = iota // switches from one value to the other at progress 0.5
	KindNumber                 // linear interpolation
	KindColor                  // mixed in a ColorModel
	KindStructural             // map[string]any, interpolated per key
)

func (k Kind) String() string {
	switch k {
	case KindNoOp:
		return "noop"
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindStructural:
		return "structural"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Interpolation blends two values of the same shape.
type Interpolation interface {
	// Interpolate returns a function mapping progress in [0,1] to a value
	// between from and to.
	Interpolate(from, to any) func(progress float64) any
	// Difference measures how far apart two values are.
	Difference(from, to any) float64
}

// ValueInterpolation picks a strategy from the kind of the from value.
// Numbers are any Go integer or float type; Color values and hex color
// strings mix in ColorModel; map[string]any recurses per key; bools and
// funcs snap. Anything else also snaps and is reported once to the logger.
type ValueInterpolation struct {
	ColorModel ColorModel
}

// AnyInterpolation interpolates with the default HUSL color model.
var AnyInterpolation Interpolation = ValueInterpolation{}

// KindOf classifies v. It never logs.
func KindOf(v any) Kind {
	k, _ := classify(v)
	return k
}

// classify returns v's kind and whether some strategy actually supports it.
func classify(v any) (Kind, bool) {
	if _, ok := toFloat(v); ok {
		return KindNumber, true
	}
	switch v.(type) {
	case bool:
		return KindNoOp, true
	case map[string]any:
		return KindStructural, true
	}
	if _, ok := toColor(v); ok {
		return KindColor, true
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return KindNoOp, true
	}
	return KindNoOp, false
}

func (vi ValueInterpolation) kindFor(v any) Kind {
	k, ok := classify(v)
	if !ok {
		typ := fmt.Sprintf("%T", v)
		warnOnce("interpolation:"+typ, "no interpolation defined for value", "type", typ)
	}
	return k
}

// Interpolate implements Interpolation. A nil side is synthesised from the
// other: zero for numbers, the same color, an empty map for structures.
func (vi ValueInterpolation) Interpolate(from, to any) func(progress float64) any {
	from, to = handleUndefined(from, to)
	switch vi.kindFor(from) {
	case KindNumber:
		a, _ := toFloat(from)
		b, ok := toFloat(to)
		if !ok {
			return snap(from, to)
		}
		return func(p float64) any {
			if p == 1 {
				return b
			}
			return a + (b-a)*p
		}
	case KindColor:
		a, _ := toColor(from)
		b, ok := toColor(to)
		if !ok {
			return snap(from, to)
		}
		model := vi.ColorModel
		return func(p float64) any {
			switch p {
			case 0:
				return a
			case 1:
				return b
			}
			return MixColors(a, b, p, model)
		}
	case KindStructural:
		a := from.(map[string]any)
		b, ok := to.(map[string]any)
		if !ok {
			return snap(from, to)
		}
		return vi.interpolateStructure(a, b)
	}
	return snap(from, to)
}

// interpolateStructure resolves one interpolator per key up front. The
// returned function writes into a single copy of from, which is reused
// across calls; from itself is never touched.
func (vi ValueInterpolation) interpolateStructure(from, to map[string]any) func(float64) any {
	result := make(map[string]any, len(from))
	for k, v := range from {
		result[k] = v
	}
	fns := make(map[string]func(float64) any, len(from)+len(to))
	for k, v := range from {
		fns[k] = vi.Interpolate(v, to[k])
	}
	for k, v := range to {
		if _, ok := fns[k]; !ok {
			fns[k] = vi.Interpolate(from[k], v)
		}
	}
	return func(p float64) any {
		for k, fn := range fns {
			result[k] = fn(p)
		}
		return result
	}
}

func snap(from, to any) func(float64) any {
	return func(p float64) any {
		if p < 0.5 {
			return from
		}
		return to
	}
}

// Difference implements Interpolation. Numbers give the signed to-from,
// colors their weighted RGB distance, structures the Euclidean norm of the
// per-key differences over from's keys, and snapping values 0 or 1.
func (vi ValueInterpolation) Difference(from, to any) float64 {
	switch vi.kindFor(from) {
	case KindNumber:
		a, _ := toFloat(from)
		if to == nil {
			return -a
		}
		if b, ok := toFloat(to); ok {
			return b - a
		}
	case KindColor:
		a, _ := toColor(from)
		if to == nil {
			return 0
		}
		if b, ok := toColor(to); ok {
			return ColorDifference(a, b)
		}
	case KindStructural:
		a := from.(map[string]any)
		b, _ := to.(map[string]any)
		var sum float64
		for k, v := range a {
			d := vi.Difference(v, b[k])
			sum += d * d
		}
		return math.Sqrt(sum)
	}
	if reflect.DeepEqual(from, to) {
		return 0
	}
	return 1
}

// handleUndefined fills a nil side with a neutral value of the other side's
// shape.
func handleUndefined(from, to any) (any, any) {
	switch {
	case from == nil && to == nil:
		return nil, nil
	case from == nil:
		return neutralLike(to), to
	case to == nil:
		return from, neutralLike(from)
	}
	return from, to
}

func neutralLike(v any) any {
	switch KindOf(v) {
	case KindNumber:
		return 0.0
	case KindStructural:
		return map[string]any{}
	}
	// Colors and snapping values stay put.
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toColor(v any) (Color, bool) {
	switch c := v.(type) {
	case Color:
		return c, true
	case *Color:
		if c != nil {
			return *c, true
		}
	case string:
		if strings.HasPrefix(strings.TrimSpace(c), "#") {
			if parsed, err := ParseColor(c); err == nil {
				return parsed, true
			}
		}
	}
	return Color{}, false
}
