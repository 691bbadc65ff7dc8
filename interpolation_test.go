package framer

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{"float64", 1.5, KindNumber},
		{"int", 3, KindNumber},
		{"uint8", uint8(7), KindNumber},
		{"float32", float32(2), KindNumber},
		{"bool", true, KindNoOp},
		{"func", func() {}, KindNoOp},
		{"color", ColorWhite, KindColor},
		{"color pointer", &ColorBlack, KindColor},
		{"hex string", "#ff8800", KindColor},
		{"plain string", "hello", KindNoOp},
		{"map", map[string]any{"x": 1}, KindStructural},
		{"nil", nil, KindNoOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestInterpolateNumber(t *testing.T) {
	fn := AnyInterpolation.Interpolate(10, 20.0)
	tests := []struct{ p, want float64 }{
		{0, 10}, {0.25, 12.5}, {0.5, 15}, {1, 20}, {1.5, 25},
	}
	for _, tt := range tests {
		if got := fn(tt.p).(float64); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("fn(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestInterpolateNumberExactEnd(t *testing.T) {
	from, to := 0.1, 0.7
	if got := AnyInterpolation.Interpolate(from, to)(1); got != to {
		t.Errorf("fn(1) = %v, want exactly %v", got, to)
	}
}

func TestInterpolateUndefined(t *testing.T) {
	fn := AnyInterpolation.Interpolate(nil, 8.0)
	if got := fn(0.5).(float64); got != 4 {
		t.Errorf("nil -> 8 at 0.5 = %v, want 4", got)
	}
	fn = AnyInterpolation.Interpolate(8.0, nil)
	if got := fn(1).(float64); got != 0 {
		t.Errorf("8 -> nil at 1 = %v, want 0", got)
	}
	fn = AnyInterpolation.Interpolate(nil, map[string]any{"x": 10.0})
	m := fn(0.5).(map[string]any)
	if got := m["x"].(float64); got != 5 {
		t.Errorf("structural from nil: x = %v, want 5", got)
	}
}

func TestInterpolateSnap(t *testing.T) {
	fn := AnyInterpolation.Interpolate(false, true)
	if fn(0.49) != false || fn(0.5) != true {
		t.Errorf("bool should switch at 0.5: %v %v", fn(0.49), fn(0.5))
	}
	fn = AnyInterpolation.Interpolate(1.0, "not a number")
	if fn(0.2) != 1.0 || fn(0.8) != "not a number" {
		t.Error("mismatched kinds should snap")
	}
}

type unsupportedValue struct{ n int }

func TestInterpolateUnsupportedWarnsAndSnaps(t *testing.T) {
	buf := captureLog(t, log.WarnLevel)

	a, b := unsupportedValue{1}, unsupportedValue{2}
	fn := AnyInterpolation.Interpolate(a, b)
	if fn(0) != a || fn(1) != b {
		t.Error("unsupported values should snap")
	}
	AnyInterpolation.Interpolate(a, b)

	out := buf.String()
	if strings.Count(out, "no interpolation defined") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
	if !strings.Contains(out, "unsupportedValue") {
		t.Errorf("warning should name the type: %q", out)
	}
}

func TestInterpolateStructuralEndpoints(t *testing.T) {
	from := map[string]any{"x": 0.0, "y": 5.0}
	to := map[string]any{"x": 10.0, "y": -5.0}
	fn := AnyInterpolation.Interpolate(from, to)

	start := fn(0).(map[string]any)
	if start["x"] != 0.0 || start["y"] != 5.0 {
		t.Errorf("fn(0) = %v, want %v", start, from)
	}
	end := fn(1).(map[string]any)
	if end["x"] != 10.0 || end["y"] != -5.0 {
		t.Errorf("fn(1) = %v, want %v", end, to)
	}
}

func TestInterpolateStructuralDoesNotAliasFrom(t *testing.T) {
	from := map[string]any{"x": 0.0}
	to := map[string]any{"x": 10.0}
	fn := AnyInterpolation.Interpolate(from, to)
	fn(0.5)
	fn(1)
	if from["x"] != 0.0 {
		t.Errorf("from was modified: %v", from)
	}
	if len(to) != 1 || to["x"] != 10.0 {
		t.Errorf("to was modified: %v", to)
	}
}

func TestInterpolateStructuralKeyUnion(t *testing.T) {
	from := map[string]any{"x": 2.0}
	to := map[string]any{"y": 4.0}
	fn := AnyInterpolation.Interpolate(from, to)
	mid := fn(0.5).(map[string]any)
	if mid["x"] != 1.0 || mid["y"] != 2.0 {
		t.Errorf("fn(0.5) = %v, want x=1 y=2", mid)
	}
}

func TestInterpolateNestedStructure(t *testing.T) {
	from := map[string]any{"pos": map[string]any{"x": 0.0}, "color": "#000000"}
	to := map[string]any{"pos": map[string]any{"x": 100.0}, "color": "#ffffff"}
	fn := ValueInterpolation{ColorModel: ColorModelRGB}.Interpolate(from, to)
	mid := fn(0.5).(map[string]any)
	if x := mid["pos"].(map[string]any)["x"]; x != 50.0 {
		t.Errorf("pos.x = %v, want 50", x)
	}
	c := mid["color"].(Color)
	if math.Abs(c.R-0.5) > 1e-9 {
		t.Errorf("color = %v, want mid gray", c)
	}
}

func TestInterpolateColorEndpoints(t *testing.T) {
	a := MustParseColor("#ff0000")
	b := MustParseColor("#0000ff")
	fn := AnyInterpolation.Interpolate(a, b)
	if fn(0) != a || fn(1) != b {
		t.Errorf("endpoints = %v, %v", fn(0), fn(1))
	}
	if _, ok := fn(0.5).(Color); !ok {
		t.Errorf("fn(0.5) = %T, want Color", fn(0.5))
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name     string
		from, to any
		want     float64
	}{
		{"number", 3.0, 10.0, 7},
		{"negative", 10, 3, -7},
		{"number to nil", 4.0, nil, -4},
		{"same bool", true, true, 0},
		{"different bool", true, false, 1},
		{"same color", ColorWhite, ColorWhite, 0},
		{"structural", map[string]any{"x": 0.0, "y": 0.0}, map[string]any{"x": 3.0, "y": 4.0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyInterpolation.Difference(tt.from, tt.to); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Difference = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifferenceHalfway(t *testing.T) {
	from, to := 2.0, 12.0
	mid := AnyInterpolation.Interpolate(from, to)(0.5)
	half := AnyInterpolation.Difference(from, mid)
	if half != AnyInterpolation.Difference(from, to)/2 {
		t.Errorf("numeric half difference = %v", half)
	}

	sfrom := map[string]any{"x": 0.0, "y": 0.0}
	sto := map[string]any{"x": 6.0, "y": 8.0}
	smid := AnyInterpolation.Interpolate(sfrom, sto)(0.5)
	total := AnyInterpolation.Difference(sfrom, sto)
	if got := AnyInterpolation.Difference(sfrom, smid); got > total/2+1e-12 {
		t.Errorf("structural half difference %v exceeds half of %v", got, total)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindNoOp: "noop", KindNumber: "number", KindColor: "color", KindStructural: "structural", Kind(9): "Kind(9)",
	} {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
