package units

import (
	"errors"
	"math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"cm", Centimeter},
		{" CM ", Centimeter},
		{"in", Inch},
		{"inches", Inch},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if err != nil {
			t.Fatalf("ParseUnit(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseUnit("furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestCalibrationFallsBackToDefaults(t *testing.T) {
	var c Calibration
	if got := c.PixelsPerUnit(Centimeter); got != DefaultPixelsPerCentimeter {
		t.Errorf("zero calibration cm = %v", got)
	}
	if got := c.PixelsPerUnit(Inch); got != DefaultPixelsPerInch {
		t.Errorf("zero calibration in = %v", got)
	}

	c = c.With(Inch, 100)
	if got := c.PixelsPerUnit(Inch); got != 100 {
		t.Errorf("calibrated in = %v, want 100", got)
	}
}

func TestConverter(t *testing.T) {
	conv := NewConverter(Centimeter, DefaultCalibration())

	if got := conv.Length(120); math.Abs(got-2) > 1e-12 {
		t.Errorf("Length(120px) = %v, want 2", got)
	}
	if got := conv.Area(3600); math.Abs(got-1) > 1e-12 {
		t.Errorf("Area(3600px²) = %v, want 1", got)
	}
	if got := conv.LengthToPixels(conv.Length(77.7)); math.Abs(got-77.7) > 1e-12 {
		t.Errorf("length round trip drifted: %v", got)
	}
	if got := conv.AreaToPixels(conv.Area(1234.5)); math.Abs(got-1234.5) > 1e-9 {
		t.Errorf("area round trip drifted: %v", got)
	}
}

func TestConverterWithInjectedResolver(t *testing.T) {
	r := ResolverFunc(func(u Unit) float64 {
		if u == Inch {
			return 96
		}
		return 0
	})

	if got := NewConverter(Inch, r).PixelsPerUnit; got != 96 {
		t.Errorf("inch calibration = %v, want 96", got)
	}
	if got := NewConverter(Centimeter, r).PixelsPerUnit; got != DefaultPixelsPerCentimeter {
		t.Errorf("invalid resolver value should fall back, got %v", got)
	}
	if got := NewConverter(Centimeter, nil).PixelsPerUnit; got != DefaultPixelsPerCentimeter {
		t.Errorf("nil resolver should fall back, got %v", got)
	}
}

func TestFormatMeasurement(t *testing.T) {
	if got := FormatValue(3.14159); got != "3.14" {
		t.Errorf("FormatValue = %q", got)
	}
	if got := FormatMeasurement(2, "cm"); got != "2.00 cm" {
		t.Errorf("FormatMeasurement = %q", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.00" {
		t.Errorf("FormatMeasurement without unit = %q", got)
	}
}
