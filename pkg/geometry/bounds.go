package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box enclosing all points
func BoundsOf(points ...Point) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Point) {
	b.Min = Point{X: math.Min(b.Min.X, point.X), Y: math.Min(b.Min.Y, point.Y)}
	b.Max = Point{X: math.Max(b.Max.X, point.X), Y: math.Max(b.Max.Y, point.Y)}
}

// IsEmpty reports whether no point has been added to the box
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the width and height of the bounding box
func (b BoundingBox) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Contains reports whether the point lies inside the box, edges included
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
