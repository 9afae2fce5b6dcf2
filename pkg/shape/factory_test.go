package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goshape/pkg/geometry"
)

func TestCreateCircle(t *testing.T) {
	s, err := Create(KindCircle, geometry.Pt(10, 10), geometry.Pt(13, 14), WithID("c1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	diff(t, Circle{Common: Common{ID: "c1", Position: geometry.Pt(10, 10)}, Radius: 5}, s, approx)
}

func TestCreateRectangleNormalizesCorners(t *testing.T) {
	s, err := Create(KindRectangle, geometry.Pt(50, 40), geometry.Pt(10, 100), WithID("r1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	diff(t, Rectangle{
		Common: Common{ID: "r1", Position: geometry.Pt(10, 40)},
		Width:  40,
		Height: 60,
	}, s)
}

func TestCreateTriangleIsRightAngled(t *testing.T) {
	s, err := Create(KindTriangle, geometry.Pt(0, 0), geometry.Pt(30, 0), WithID("t1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	tri := s.(Triangle)

	want := [3]geometry.Point{geometry.Pt(0, 0), geometry.Pt(30, 0), geometry.Pt(0, 30)}
	diff(t, want, tri.Points, approx)

	if !geometry.ApproxEqual(tri.Position, geometry.Pt(10, 10), 1e-9) {
		t.Errorf("Position should be the centroid, got %v", tri.Position)
	}
	if tri.Original == nil {
		t.Fatal("Original dimensions should be recorded")
	}
	diff(t, [3]float64{30, math.Sqrt(1800), 30}, tri.Original.Sides, approx)
}

func TestCreateLine(t *testing.T) {
	s, err := Create(KindLine, geometry.Pt(0, 0), geometry.Pt(0, 20), WithID("l1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	line := s.(Line)

	if line.Length != 20 {
		t.Errorf("Length = %v, want 20", line.Length)
	}
	if math.Abs(line.Rotation-90) > 1e-9 {
		t.Errorf("Rotation = %v, want 90", line.Rotation)
	}
	if line.Position != line.Start {
		t.Errorf("Position %v should equal Start %v", line.Position, line.Start)
	}
}

func TestCreateDegenerateDragIsFloored(t *testing.T) {
	p := geometry.Pt(5, 5)

	c, _ := Create(KindCircle, p, p)
	if r := c.(Circle).Radius; r != MinDimension {
		t.Errorf("zero drag circle radius = %v", r)
	}

	r, _ := Create(KindRectangle, p, p)
	if rect := r.(Rectangle); rect.Width != MinDimension || rect.Height != MinDimension {
		t.Errorf("zero drag rectangle = %vx%v", rect.Width, rect.Height)
	}

	l, _ := Create(KindLine, p, p)
	if line := l.(Line); line.Length != MinDimension || line.End != geometry.Pt(6, 5) {
		t.Errorf("zero drag line = %+v", line)
	}

	tr, _ := Create(KindTriangle, p, p)
	sides := tr.(Triangle).Sides()
	for i, side := range sides {
		if side <= 0 {
			t.Errorf("zero drag triangle side %d = %v", i, side)
		}
	}
}

func TestCreateUnknownKind(t *testing.T) {
	_, err := Create(Kind("hexagon"), geometry.Pt(0, 0), geometry.Pt(1, 1))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	a, _ := Create(KindCircle, geometry.Pt(0, 0), geometry.Pt(1, 0))
	b, _ := Create(KindCircle, geometry.Pt(0, 0), geometry.Pt(1, 0))

	if ID(a) == "" || ID(a) == ID(b) {
		t.Errorf("expected distinct ids, got %q and %q", ID(a), ID(b))
	}
}

func TestCreateWithGeneratorAndStyle(t *testing.T) {
	style := Style{Fill: "#ff0000", Stroke: "#000000", StrokeWidth: 2}
	s, _ := Create(KindLine, geometry.Pt(0, 0), geometry.Pt(1, 0), fixedIDs("gen-1"), WithCreateStyle(style))

	if ID(s) != "gen-1" {
		t.Errorf("id = %q, want gen-1", ID(s))
	}
	diff(t, style, s.Base().Style)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Triangle ")
	if err != nil || k != KindTriangle {
		t.Errorf("ParseKind = %q, %v", k, err)
	}
	if _, err := ParseKind("polygon"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
