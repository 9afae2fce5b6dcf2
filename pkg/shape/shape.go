// Package shape holds the shape model and the pure operations that create,
// transform, select and hit test shapes.
//
// A Shape is one of Circle, Rectangle, Triangle or Line. All of them are
// value types: operations never modify a shape in place but return a new
// value, and collection operations return a new slice while keeping the
// order of the input.
package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// MinDimension replaces a solved dimension that would be zero, negative or
// not finite
const MinDimension = 1.0

// Kind identifies the variant of a shape
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
	KindTriangle  Kind = "triangle"
	KindLine      Kind = "line"
)

// ErrUnknownKind is returned for shape kinds other than the four supported ones
var ErrUnknownKind = errors.New("unknown shape kind")

// Kinds returns all supported kinds
func Kinds() []Kind {
	return []Kind{KindCircle, KindRectangle, KindTriangle, KindLine}
}

// ParseKind parses a kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindCircle, KindRectangle, KindTriangle, KindLine:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Style carries presentation attributes. The geometry code never reads them.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Common holds the fields shared by every shape kind
type Common struct {
	ID       string
	Position geometry.Point
	Rotation float64 // degrees
	Selected bool
	Style    Style
}

// Base returns the shared fields
func (c Common) Base() Common {
	return c
}

// Shape is the closed set of drawable shapes
type Shape interface {
	Kind() Kind
	Base() Common
	withBase(c Common) Shape
}

// Circle is centered on Position
type Circle struct {
	Common
	Radius float64
}

// Rectangle extends right and down from Position, its top-left corner
type Rectangle struct {
	Common
	Width  float64
	Height float64
}

// Dimensions records a triangle's side lengths at creation time
type Dimensions struct {
	Sides [3]float64 `json:"sides"`
}

// Triangle is defined by three points. Position is always their centroid.
type Triangle struct {
	Common
	Points   [3]geometry.Point
	Original *Dimensions
}

// Line runs from Start to End. Position is always Start, Length is the
// distance between the endpoints and Rotation their direction in degrees.
type Line struct {
	Common
	Start  geometry.Point
	End    geometry.Point
	Length float64
}

func (Circle) Kind() Kind    { return KindCircle }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Triangle) Kind() Kind  { return KindTriangle }
func (Line) Kind() Kind      { return KindLine }

func (s Circle) withBase(c Common) Shape    { s.Common = c; return s }
func (s Rectangle) withBase(c Common) Shape { s.Common = c; return s }
func (s Triangle) withBase(c Common) Shape  { s.Common = c; return s }
func (s Line) withBase(c Common) Shape      { s.Common = c; return s }

// ID returns the shape's id, or "" for a nil shape
func ID(s Shape) string {
	if s == nil {
		return ""
	}
	return s.Base().ID
}

// WithSelected returns s with its selection flag set to selected
func WithSelected(s Shape, selected bool) Shape {
	c := s.Base()
	if c.Selected == selected {
		return s
	}
	c.Selected = selected
	return s.withBase(c)
}

// WithStyle returns s with a new presentation style
func WithStyle(s Shape, style Style) Shape {
	c := s.Base()
	c.Style = style
	return s.withBase(c)
}

// floor keeps a solved dimension renderable. Positive values, sub-pixel
// ones included, are kept.
func floor(v float64) float64 {
	if !geometry.IsFinite(v) || v <= 0 {
		return MinDimension
	}
	return v
}

// WithRadius returns the circle with a new radius. Non-positive radii become MinDimension.
func (s Circle) WithRadius(r float64) Circle {
	s.Radius = floor(r)
	return s
}

// WithSize returns the rectangle with new dimensions. Non-positive ones become MinDimension.
func (s Rectangle) WithSize(width, height float64) Rectangle {
	s.Width = floor(width)
	s.Height = floor(height)
	return s
}

// Center returns the center of the rectangle
func (s Rectangle) Center() geometry.Point {
	return s.Position.Add(geometry.Pt(s.Width/2, s.Height/2))
}

// NewTriangle creates a triangle from three points
func NewTriangle(c Common, points [3]geometry.Point) Triangle {
	return Triangle{Common: c}.WithPoints(points)
}

// WithPoints returns the triangle with new points, keeping Position on their centroid
func (s Triangle) WithPoints(points [3]geometry.Point) Triangle {
	s.Points = points
	s.Position = geometry.Centroid(points[:]...)
	return s
}

// Sides returns the lengths p0-p1, p1-p2 and p2-p0
func (s Triangle) Sides() [3]float64 {
	return [3]float64{
		s.Points[0].Distance(s.Points[1]),
		s.Points[1].Distance(s.Points[2]),
		s.Points[2].Distance(s.Points[0]),
	}
}

// ScaledAbout scales all points about center by factor
func (s Triangle) ScaledAbout(center geometry.Point, factor float64) Triangle {
	var pts [3]geometry.Point
	for i, p := range s.Points {
		pts[i] = center.Add(p.Sub(center).Mul(factor))
	}
	return s.WithPoints(pts)
}

// NewLine creates a line between two points
func NewLine(c Common, start, end geometry.Point) Line {
	return Line{Common: c}.WithEndpoints(start, end)
}

// WithEndpoints returns the line with new endpoints. Position, Length and
// Rotation are derived from them; a zero length line keeps its rotation.
func (s Line) WithEndpoints(start, end geometry.Point) Line {
	s.Start = start
	s.End = end
	s.Position = start
	s.Length = start.Distance(end)
	if s.Length > 0 {
		s.Rotation = geometry.CalculateAngleDegrees(start, end)
	}
	return s
}

// WithLength moves End along the current direction so the line has the given length
func (s Line) WithLength(length float64) Line {
	length = floor(length)
	s.End = geometry.PointAtAngle(s.Start, length, s.Rotation)
	s.Position = s.Start
	s.Length = length
	return s
}

// WithAngle rotates End about Start to the absolute angle in degrees, keeping the length
func (s Line) WithAngle(angle float64) Line {
	angle = geometry.NormalizeAngleDegrees(angle)
	length := s.Length
	end := geometry.PointAtAngle(s.Start, length, angle)
	s.End = end
	s.Position = s.Start
	s.Rotation = angle
	return s
}
