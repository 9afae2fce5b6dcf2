package shape

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goshape/pkg/geometry"
)

func TestListRoundTrip(t *testing.T) {
	shapes := List(Select(sampleShapes(t), "tri"))

	data, err := json.Marshal(shapes)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded List
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	diff(t, shapes, decoded, approx)
}

func TestUnmarshalRecomputesDerivedFields(t *testing.T) {
	data := []byte(`{
		"type": "line",
		"id": "l1",
		"position": {"x": 999, "y": 999},
		"startPoint": {"x": 0, "y": 0},
		"endPoint": {"x": 3, "y": 4},
		"length": 42
	}`)

	s, err := UnmarshalShape(data)
	if err != nil {
		t.Fatalf("UnmarshalShape failed: %v", err)
	}
	line := s.(Line)

	if line.Length != 5 {
		t.Errorf("Length = %v, want 5 (stale cached value must be ignored)", line.Length)
	}
	if line.Position != geometry.Pt(0, 0) {
		t.Errorf("Position = %v, want start point", line.Position)
	}
	if want := geometry.RadiansToDegrees(math.Atan2(4, 3)); math.Abs(line.Rotation-want) > 1e-9 {
		t.Errorf("Rotation = %v, want %v", line.Rotation, want)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown type", `{"type": "hexagon", "id": "x"}`, ErrUnknownKind},
		{"circle without radius", `{"type": "circle", "id": "x"}`, ErrInvalidShape},
		{"short triangle", `{"type": "triangle", "id": "x", "points": [{"x": 0, "y": 0}]}`, ErrInvalidShape},
		{"line without end", `{"type": "line", "id": "x", "startPoint": {"x": 0, "y": 0}}`, ErrInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalShape([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMarshalShapeLayout(t *testing.T) {
	r := Rectangle{Common: Common{ID: "r", Style: Style{Fill: "#fff"}}, Width: 3, Height: 4}

	data, err := MarshalShape(r)
	if err != nil {
		t.Fatalf("MarshalShape failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	diff(t, map[string]any{
		"type":     "rectangle",
		"id":       "r",
		"position": map[string]any{"x": 0.0, "y": 0.0},
		"rotation": 0.0,
		"selected": false,
		"fill":     "#fff",
		"width":    3.0,
		"height":   4.0,
	}, got)
}
