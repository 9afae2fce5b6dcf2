package shape

import (
	"slices"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// Index returns the position of the shape with the given id, or -1
func Index(shapes []Shape, id string) int {
	return slices.IndexFunc(shapes, func(s Shape) bool {
		return ID(s) == id
	})
}

// Find returns the shape with the given id
func Find(shapes []Shape, id string) (Shape, bool) {
	i := Index(shapes, id)
	if i < 0 {
		return nil, false
	}
	return shapes[i], true
}

// Selected returns the currently selected shape, if any
func Selected(shapes []Shape) (Shape, bool) {
	for _, s := range shapes {
		if s.Base().Selected {
			return s, true
		}
	}
	return nil, false
}

// update applies fn to the shape with the given id. When no shape matches,
// the input slice is returned as is.
func update(shapes []Shape, id string, fn func(Shape) Shape) []Shape {
	i := Index(shapes, id)
	if i < 0 {
		return shapes
	}
	out := slices.Clone(shapes)
	out[i] = fn(shapes[i])
	return out
}

// Replace swaps in updated for the shape with the same id
func Replace(shapes []Shape, updated Shape) []Shape {
	return update(shapes, ID(updated), func(Shape) Shape {
		return updated
	})
}

// Move translates the shape with the given id by (dx, dy)
func Move(shapes []Shape, id string, dx, dy float64) []Shape {
	return update(shapes, id, func(s Shape) Shape {
		return Translate(s, dx, dy)
	})
}

// Resize scales the shape with the given id by factor about its own position.
// Non-positive or non-finite factors leave the collection unchanged.
func Resize(shapes []Shape, id string, factor float64) []Shape {
	if !geometry.IsFinite(factor) || factor <= 0 {
		return shapes
	}
	return update(shapes, id, func(s Shape) Shape {
		return Scale(s, factor)
	})
}

// Rotate sets the rotation of the shape with the given id to angle degrees
func Rotate(shapes []Shape, id string, angle float64) []Shape {
	if !geometry.IsFinite(angle) {
		return shapes
	}
	return update(shapes, id, func(s Shape) Shape {
		return SetRotation(s, angle)
	})
}

// Select marks the shape with the given id as the only selected one. An
// empty or unknown id deselects everything.
func Select(shapes []Shape, id string) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = WithSelected(s, id != "" && ID(s) == id)
	}
	return out
}

// Delete removes the shape with the given id
func Delete(shapes []Shape, id string) []Shape {
	i := Index(shapes, id)
	if i < 0 {
		return shapes
	}
	return slices.Delete(slices.Clone(shapes), i, i+1)
}

// Clear removes all shapes
func Clear([]Shape) []Shape {
	return []Shape{}
}

// Translate moves a single shape by (dx, dy)
func Translate(s Shape, dx, dy float64) Shape {
	d := geometry.Pt(dx, dy)
	switch v := s.(type) {
	case Circle:
		v.Position = v.Position.Add(d)
		return v
	case Rectangle:
		v.Position = v.Position.Add(d)
		return v
	case Triangle:
		// The centroid follows the points.
		return v.WithPoints([3]geometry.Point{
			v.Points[0].Add(d),
			v.Points[1].Add(d),
			v.Points[2].Add(d),
		})
	case Line:
		v.Start = v.Start.Add(d)
		v.End = v.End.Add(d)
		v.Position = v.Start
		return v
	}
	return s
}

// Scale resizes a single shape by factor about its own position
func Scale(s Shape, factor float64) Shape {
	switch v := s.(type) {
	case Circle:
		return v.WithRadius(v.Radius * factor)
	case Rectangle:
		return v.WithSize(v.Width*factor, v.Height*factor)
	case Triangle:
		return v.ScaledAbout(v.Position, factor)
	case Line:
		// The start point stays fixed.
		return v.WithLength(v.Length * factor)
	}
	return s
}

// SetRotation sets the rotation of a single shape. Circles, rectangles and
// triangles only store the angle; a line moves its end point.
func SetRotation(s Shape, angle float64) Shape {
	angle = geometry.NormalizeAngleDegrees(angle)
	switch v := s.(type) {
	case Circle:
		v.Rotation = angle
		return v
	case Rectangle:
		v.Rotation = angle
		return v
	case Triangle:
		v.Rotation = angle
		return v
	case Line:
		return v.WithAngle(angle)
	}
	return s
}
