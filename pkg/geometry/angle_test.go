package geometry

import (
	"math"
	"testing"
)

func TestDegreesRadiansConversion(t *testing.T) {
	if got := DegreesToRadians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegreesToRadians(180) = %v", got)
	}
	if got := RadiansToDegrees(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("RadiansToDegrees(π/2) = %v", got)
	}
}

func TestNormalizeAngleDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{181, -179},
		{-180, 180},
		{-181, 179},
		{360, 0},
		{540, 180},
		{-720, 0},
		{725, 5},
		{-90, -90},
	}
	for _, tt := range tests {
		if got := NormalizeAngleDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngleDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAngleDegreesPeriodic(t *testing.T) {
	for a := -1000.0; a <= 1000.0; a += 17.25 {
		base := NormalizeAngleDegrees(a)
		for k := -3; k <= 3; k++ {
			got := NormalizeAngleDegrees(a + 360*float64(k))
			if math.Abs(got-base) > 1e-9 {
				t.Fatalf("NormalizeAngleDegrees(%v + 360*%d) = %v, want %v", a, k, got, base)
			}
		}
		if base <= -180 || base > 180 {
			t.Fatalf("NormalizeAngleDegrees(%v) = %v out of range", a, base)
		}
	}
}

func TestNormalizeAngleRadians(t *testing.T) {
	if got := NormalizeAngleRadians(math.Pi); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("NormalizeAngleRadians(π) = %v, want π", got)
	}
	if got := NormalizeAngleRadians(3 * math.Pi / 2); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("NormalizeAngleRadians(3π/2) = %v, want -π/2", got)
	}
	if got := NormalizeAngleRadians(1 + 4*math.Pi); math.Abs(got-1) > 1e-9 {
		t.Errorf("NormalizeAngleRadians(1+4π) = %v, want 1", got)
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	if got := NormalizeAngleDegrees(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NaN should pass through, got %v", got)
	}
}

func TestRotatePointRadians(t *testing.T) {
	rotated := RotatePointRadians(Pt(10, 0), Pt(0, 0), math.Pi/2)

	expected := Pt(0, 10)
	if !ApproxEqual(rotated, expected, 1e-6) {
		t.Errorf("RotatePointRadians failed: expected %v, got %v", expected, rotated)
	}
}

func TestRotatePointAroundCenter(t *testing.T) {
	rotated := RotatePointDegrees(Pt(15, 5), Pt(5, 5), 180)

	expected := Pt(-5, 5)
	if !ApproxEqual(rotated, expected, 1e-9) {
		t.Errorf("RotatePointDegrees failed: expected %v, got %v", expected, rotated)
	}
}

func TestCalculateAngle(t *testing.T) {
	tests := []struct {
		to   Point
		want float64
	}{
		{Pt(1, 0), 0},
		{Pt(0, 1), 90},
		{Pt(-1, 0), 180},
		{Pt(0, -1), -90},
		{Pt(1, 1), 45},
	}
	for _, tt := range tests {
		got := CalculateAngleDegrees(Pt(0, 0), tt.to)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CalculateAngleDegrees(origin, %v) = %v, want %v", tt.to, got, tt.want)
		}
	}

	if got := CalculateAngleRadians(Pt(0, 0), Pt(0, 2)); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("CalculateAngleRadians = %v, want π/2", got)
	}
}

func TestPointAtAngle(t *testing.T) {
	p := PointAtAngle(Pt(1, 1), 2, 90)
	if !ApproxEqual(p, Pt(1, 3), 1e-9) {
		t.Errorf("PointAtAngle failed: got %v", p)
	}
}

func TestNormalizeAngleKeepsInRangeValuesExact(t *testing.T) {
	for _, a := range []float64{0.1, -0.1, 33.3, -179.9, 180, 1e-12} {
		if got := NormalizeAngleDegrees(a); got != a {
			t.Errorf("NormalizeAngleDegrees(%v) = %v, want it unchanged", a, got)
		}
	}
	if got := NormalizeAngleRadians(0.7); got != 0.7 {
		t.Errorf("NormalizeAngleRadians(0.7) = %v, want it unchanged", got)
	}
}
