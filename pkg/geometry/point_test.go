package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	result := Pt(1, 2).Add(Pt(4, 5))

	expected := Pt(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	result := Pt(5, 7).Sub(Pt(1, 2))

	expected := Pt(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestDistance(t *testing.T) {
	distance := Distance(Pt(0, 0), Pt(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointNormalize(t *testing.T) {
	normalized := Pt(3, 4).Normalize()
	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Point{}).Normalize(); zero != (Point{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestPointPerpendicular(t *testing.T) {
	p := Pt(3, 1)
	perp := p.Perpendicular()

	if perp != Pt(-1, 3) {
		t.Errorf("Perpendicular failed: got %v", perp)
	}
	if p.Dot(perp) != 0 {
		t.Errorf("Perpendicular should be orthogonal, dot = %v", p.Dot(perp))
	}
}

func TestCentroid(t *testing.T) {
	center := Centroid(Pt(0, 0), Pt(3, 0), Pt(0, 3))

	expected := Pt(1, 1)
	if !ApproxEqual(center, expected, 1e-10) {
		t.Errorf("Centroid failed: expected %v, got %v", expected, center)
	}

	if empty := Centroid(); empty != (Point{}) {
		t.Errorf("Centroid of nothing should be the origin, got %v", empty)
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("expected (1, 2) to be finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("expected NaN point to be non-finite")
	}
	if Pt(0, math.Inf(1)).IsFinite() {
		t.Error("expected infinite point to be non-finite")
	}
}
