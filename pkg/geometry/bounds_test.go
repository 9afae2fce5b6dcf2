package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(Pt(1, 2))
	bbox.Extend(Pt(4, 5))
	bbox.Extend(Pt(-1, 0))

	expectedMin := Pt(-1, 0)
	expectedMax := Pt(4, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if !NewBoundingBox().IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if BoundsOf(Pt(1, 1)).IsEmpty() {
		t.Error("box with a point should not be empty")
	}
}

func TestBoundingBoxSizeAndCenter(t *testing.T) {
	bbox := BoundsOf(Pt(0, 0), Pt(10, 20))

	if size := bbox.Size(); size != Pt(10, 20) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != Pt(5, 10) {
		t.Errorf("Center failed: got %v", center)
	}
	if d := bbox.Diagonal(); math.Abs(d-math.Sqrt(500)) > 1e-10 {
		t.Errorf("Diagonal failed: got %v", d)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	bbox := BoundsOf(Pt(0, 0), Pt(10, 10))

	if !bbox.Contains(Pt(10, 10)) {
		t.Error("edge point should be contained")
	}
	if bbox.Contains(Pt(10.1, 5)) {
		t.Error("outside point should not be contained")
	}
}
