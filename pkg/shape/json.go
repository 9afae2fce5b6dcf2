package shape

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// ErrInvalidShape is returned when decoding a shape with missing geometry
var ErrInvalidShape = errors.New("invalid shape")

// wireShape is the JSON layout of every shape kind, discriminated by Type
type wireShape struct {
	Type        Kind             `json:"type"`
	ID          string           `json:"id"`
	Position    geometry.Point   `json:"position"`
	Rotation    float64          `json:"rotation"`
	Selected    bool             `json:"selected"`
	Fill        string           `json:"fill,omitempty"`
	Stroke      string           `json:"stroke,omitempty"`
	StrokeWidth float64          `json:"strokeWidth,omitempty"`
	Radius      *float64         `json:"radius,omitempty"`
	Width       *float64         `json:"width,omitempty"`
	Height      *float64         `json:"height,omitempty"`
	Points      []geometry.Point `json:"points,omitempty"`
	Original    *Dimensions      `json:"originalDimensions,omitempty"`
	StartPoint  *geometry.Point  `json:"startPoint,omitempty"`
	EndPoint    *geometry.Point  `json:"endPoint,omitempty"`
	Length      *float64         `json:"length,omitempty"`
}

// List is a shape collection that encodes to and from JSON
type List []Shape

// MarshalShape encodes a single shape
func MarshalShape(s Shape) ([]byte, error) {
	w, err := toWire(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalShape decodes a single shape. Derived fields (triangle position,
// line length and angle) are recomputed from the points.
func UnmarshalShape(data []byte) (Shape, error) {
	var w wireShape
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode shape: %w", err)
	}
	return fromWire(w)
}

// MarshalJSON implements json.Marshaler
func (l List) MarshalJSON() ([]byte, error) {
	ws := make([]wireShape, 0, len(l))
	for _, s := range l {
		w, err := toWire(s)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return json.Marshal(ws)
}

// UnmarshalJSON implements json.Unmarshaler
func (l *List) UnmarshalJSON(data []byte) error {
	var ws []wireShape
	if err := json.Unmarshal(data, &ws); err != nil {
		return fmt.Errorf("failed to decode shapes: %w", err)
	}
	out := make(List, 0, len(ws))
	for i, w := range ws {
		s, err := fromWire(w)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

func toWire(s Shape) (wireShape, error) {
	c := s.Base()
	w := wireShape{
		Type:        s.Kind(),
		ID:          c.ID,
		Position:    c.Position,
		Rotation:    c.Rotation,
		Selected:    c.Selected,
		Fill:        c.Style.Fill,
		Stroke:      c.Style.Stroke,
		StrokeWidth: c.Style.StrokeWidth,
	}
	switch v := s.(type) {
	case Circle:
		w.Radius = &v.Radius
	case Rectangle:
		w.Width = &v.Width
		w.Height = &v.Height
	case Triangle:
		w.Points = v.Points[:]
		w.Original = v.Original
	case Line:
		w.StartPoint = &v.Start
		w.EndPoint = &v.End
		w.Length = &v.Length
	default:
		return wireShape{}, fmt.Errorf("%w: %T", ErrUnknownKind, s)
	}
	return w, nil
}

func fromWire(w wireShape) (Shape, error) {
	c := Common{
		ID:       w.ID,
		Position: w.Position,
		Rotation: w.Rotation,
		Selected: w.Selected,
		Style: Style{
			Fill:        w.Fill,
			Stroke:      w.Stroke,
			StrokeWidth: w.StrokeWidth,
		},
	}

	switch w.Type {
	case KindCircle:
		if w.Radius == nil {
			return nil, fmt.Errorf("%w: circle %q has no radius", ErrInvalidShape, w.ID)
		}
		return Circle{Common: c}.WithRadius(*w.Radius), nil

	case KindRectangle:
		if w.Width == nil || w.Height == nil {
			return nil, fmt.Errorf("%w: rectangle %q needs width and height", ErrInvalidShape, w.ID)
		}
		return Rectangle{Common: c}.WithSize(*w.Width, *w.Height), nil

	case KindTriangle:
		if len(w.Points) != 3 {
			return nil, fmt.Errorf("%w: triangle %q needs 3 points, got %d", ErrInvalidShape, w.ID, len(w.Points))
		}
		tri := NewTriangle(c, [3]geometry.Point{w.Points[0], w.Points[1], w.Points[2]})
		tri.Original = w.Original
		return tri, nil

	case KindLine:
		if w.StartPoint == nil || w.EndPoint == nil {
			return nil, fmt.Errorf("%w: line %q needs startPoint and endPoint", ErrInvalidShape, w.ID)
		}
		return NewLine(c, *w.StartPoint, *w.EndPoint), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Type)
}
