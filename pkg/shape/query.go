package shape

import (
	"math"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// LineHitTolerance is the minimum distance in pixels at which a point still hits a line
const LineHitTolerance = 4.0

// Centroid returns the geometric center of a shape
func Centroid(s Shape) geometry.Point {
	switch v := s.(type) {
	case Circle:
		return v.Position
	case Rectangle:
		return v.Center()
	case Triangle:
		return geometry.Centroid(v.Points[:]...)
	case Line:
		return v.Start.Midpoint(v.End)
	}
	return geometry.Point{}
}

// outline returns the corner points of a shape with its rotation applied
func outline(s Shape) []geometry.Point {
	switch v := s.(type) {
	case Rectangle:
		c := v.Center()
		corners := []geometry.Point{
			v.Position,
			v.Position.Add(geometry.Pt(v.Width, 0)),
			v.Position.Add(geometry.Pt(v.Width, v.Height)),
			v.Position.Add(geometry.Pt(0, v.Height)),
		}
		for i, p := range corners {
			corners[i] = geometry.RotatePointDegrees(p, c, v.Rotation)
		}
		return corners
	case Triangle:
		c := geometry.Centroid(v.Points[:]...)
		pts := make([]geometry.Point, 3)
		for i, p := range v.Points {
			pts[i] = geometry.RotatePointDegrees(p, c, v.Rotation)
		}
		return pts
	case Line:
		return []geometry.Point{v.Start, v.End}
	}
	return nil
}

// Bounds returns the axis aligned bounding box of a shape as rendered
func Bounds(s Shape) geometry.BoundingBox {
	if c, ok := s.(Circle); ok {
		r := geometry.Pt(c.Radius, c.Radius)
		return geometry.BoundsOf(c.Position.Sub(r), c.Position.Add(r))
	}
	return geometry.BoundsOf(outline(s)...)
}

// Extent returns the bounding box enclosing all shapes. It is empty for an
// empty collection.
func Extent(shapes []Shape) geometry.BoundingBox {
	extent := geometry.NewBoundingBox()
	for _, s := range shapes {
		b := Bounds(s)
		if b.IsEmpty() {
			continue
		}
		extent.Extend(b.Min)
		extent.Extend(b.Max)
	}
	return extent
}

// Contains reports whether p hits the shape as rendered
func Contains(s Shape, p geometry.Point) bool {
	switch v := s.(type) {
	case Circle:
		return v.Position.Distance(p) <= v.Radius
	case Rectangle:
		local := geometry.RotatePointDegrees(p, v.Center(), -v.Rotation)
		return geometry.BoundsOf(v.Position, v.Position.Add(geometry.Pt(v.Width, v.Height))).Contains(local)
	case Triangle:
		local := geometry.RotatePointDegrees(p, geometry.Centroid(v.Points[:]...), -v.Rotation)
		return triangleContains(v.Points, local)
	case Line:
		tolerance := math.Max(v.Style.StrokeWidth/2, LineHitTolerance)
		return segmentDistance(v.Start, v.End, p) <= tolerance
	}
	return false
}

// HitTest returns the topmost shape under p
func HitTest(shapes []Shape, p geometry.Point) (Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if Contains(shapes[i], p) {
			return shapes[i], true
		}
	}
	return nil, false
}

// triangleContains checks that p lies on the same side of all three edges
func triangleContains(pts [3]geometry.Point, p geometry.Point) bool {
	d1 := pts[1].Sub(pts[0]).Cross(p.Sub(pts[0]))
	d2 := pts[2].Sub(pts[1]).Cross(p.Sub(pts[1]))
	d3 := pts[0].Sub(pts[2]).Cross(p.Sub(pts[2]))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// segmentDistance returns the distance from p to the segment a-b
func segmentDistance(a, b, p geometry.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lenSq))
	return p.Distance(a.Add(ab.Mul(t)))
}
