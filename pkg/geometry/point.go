package geometry

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in pixel space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt creates a new point
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of two vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of the cross product of two vectors
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return p.Mul(1.0 / length)
}

// Perpendicular returns the vector rotated by a quarter turn: (-y, x)
func (p Point) Perpendicular() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return Point{X: 0.5 * (p.X + other.X), Y: 0.5 * (p.Y + other.Y)}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the euclidean distance between two points
func Distance(p1, p2 Point) float64 {
	return p1.Distance(p2)
}

// Centroid returns the arithmetic mean of the given points
func Centroid(points ...Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ApproxEqual reports whether two points are within tolerance on both axes
func ApproxEqual(a, b Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
}
