package framer

import (
	"errors"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
	}{
		{"auto", Auto()},
		{"1fr", Fraction(1)},
		{" 2.5fr ", Fraction(2.5)},
		{"50%", Dimension{Type: DimensionPercentage, Value: 0.5}},
		{"120", Fixed(120)},
		{"-4", Fixed(-4)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDimension(tt.in)
			if err != nil {
				t.Fatalf("ParseDimension(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDimension(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDimensionInvalid(t *testing.T) {
	for _, in := range []string{"", "fr", "abc", "10px", "%"} {
		if _, err := ParseDimension(in); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("ParseDimension(%q) err = %v, want ErrInvalidDimension", in, err)
		}
	}
}

func TestDimensionStringRoundTrip(t *testing.T) {
	for _, d := range []Dimension{Auto(), Fraction(3), Percent(25), Fixed(42.5)} {
		got, err := ParseDimension(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDimension(%q) = %+v, %v; want %+v", d.String(), got, err, d)
		}
	}
}

func TestMustParseDimensionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid dimension")
		}
	}()
	MustParseDimension("nope")
}

func TestDimensionTypeString(t *testing.T) {
	tests := map[DimensionType]string{
		DimensionFixed:      "fixed",
		DimensionPercentage: "percentage",
		DimensionAuto:       "auto",
		DimensionFraction:   "fraction",
		DimensionType(99):   "DimensionType(99)",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}

func TestDimensionUnmarshalText(t *testing.T) {
	var d Dimension
	if err := d.UnmarshalText([]byte("3fr")); err != nil {
		t.Fatal(err)
	}
	if d != Fraction(3) {
		t.Errorf("d = %+v, want 3fr", d)
	}
	if err := d.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error")
	}
}
