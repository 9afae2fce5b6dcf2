package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestFitCircleThroughThreePoints(t *testing.T) {
	fit, err := FitCircle([]Point{Pt(10, 0), Pt(0, 10), Pt(-10, 0)})
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}

	if math.Abs(fit.Center.X) > 1e-10 || math.Abs(fit.Center.Y) > 1e-10 {
		t.Errorf("Center = %v, want (0, 0)", fit.Center)
	}
	if math.Abs(fit.Radius-10) > 1e-10 {
		t.Errorf("Radius = %v, want 10", fit.Radius)
	}
	if fit.StdDev > 1e-10 {
		t.Errorf("StdDev = %v, want 0", fit.StdDev)
	}
}

func TestFitCircleArcSamples(t *testing.T) {
	center := Pt(50, -20)
	var points []Point
	for deg := 0.0; deg <= 90; deg += 15 {
		points = append(points, PointAtAngle(center, 25, deg))
	}

	fit, err := FitCircle(points)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	if fit.Center.Distance(center) > 1e-9 {
		t.Errorf("Center = %v, want %v", fit.Center, center)
	}
	if math.Abs(fit.Radius-25) > 1e-9 {
		t.Errorf("Radius = %v, want 25", fit.Radius)
	}
}

func TestFitCircleErrors(t *testing.T) {
	if _, err := FitCircle([]Point{Pt(0, 0), Pt(1, 1)}); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
	if _, err := FitCircle([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}); !errors.Is(err, ErrCollinear) {
		t.Errorf("expected ErrCollinear, got %v", err)
	}
}
