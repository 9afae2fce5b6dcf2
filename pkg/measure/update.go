package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

// MinTriangleAngle keeps interior angle edits away from 0° and 180°, where
// the triangle would collapse onto a line
const MinTriangleAngle = 1e-6

// ErrInvalidValue is returned by ParseValue for input that is not a finite number
var ErrInvalidValue = errors.New("invalid measurement value")

// ParseValue parses user input for a measurement value
func ParseValue(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !geometry.IsFinite(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return value, nil
}

// UpdateFromString parses raw as the new value of key and applies it.
// Unparsable input leaves the shape unchanged.
func UpdateFromString(s shape.Shape, key, raw string, unit units.Unit, r units.Resolver) shape.Shape {
	value, err := ParseValue(raw)
	if err != nil {
		return s
	}
	return Update(s, key, value, unit, r)
}

// Update returns s changed so that its measurement key equals value in the
// given unit. Unknown keys, unknown shapes and non-finite values return s
// unchanged. ID, selection and style are never touched.
func Update(s shape.Shape, key string, value float64, unit units.Unit, r units.Resolver) shape.Shape {
	if s == nil || !geometry.IsFinite(value) {
		return s
	}
	conv := units.NewConverter(unit, r)

	switch v := s.(type) {
	case shape.Circle:
		if out, ok := updateCircle(v, key, value, conv); ok {
			return out
		}
	case shape.Rectangle:
		if out, ok := updateRectangle(v, key, value, conv); ok {
			return out
		}
	case shape.Triangle:
		if out, ok := updateTriangle(v, key, value, conv); ok {
			return out
		}
	case shape.Line:
		if out, ok := updateLine(v, key, value, conv); ok {
			return out
		}
	}
	return s
}

func updateCircle(c shape.Circle, key string, value float64, conv units.Converter) (shape.Shape, bool) {
	// Every circle measurement solves for the radius.
	var radius float64
	switch key {
	case KeyRadius:
		radius = conv.LengthToPixels(value)
	case KeyDiameter:
		radius = conv.LengthToPixels(value / 2)
	case KeyCircumference:
		radius = conv.LengthToPixels(value / (2 * math.Pi))
	case KeyArea:
		radius = conv.LengthToPixels(math.Sqrt(math.Max(value, 0) / math.Pi))
	default:
		return nil, false
	}
	return c.WithRadius(radius), true
}

func updateRectangle(rect shape.Rectangle, key string, value float64, conv units.Converter) (shape.Shape, bool) {
	// Step 1: width and height are set directly
	switch key {
	case KeyWidth:
		return rect.WithSize(conv.LengthToPixels(value), rect.Height), true
	case KeyHeight:
		return rect.WithSize(rect.Width, conv.LengthToPixels(value)), true
	}

	// Step 2: derived measurements scale both sides, keeping the aspect ratio
	var factor float64
	switch key {
	case KeyArea:
		factor = math.Sqrt(ratio(conv.AreaToPixels(value), rect.Width*rect.Height))
	case KeyPerimeter:
		factor = ratio(conv.LengthToPixels(value), 2*(rect.Width+rect.Height))
	case KeyDiagonal:
		factor = ratio(conv.LengthToPixels(value), math.Hypot(rect.Width, rect.Height))
	default:
		return nil, false
	}
	return rect.WithSize(rect.Width*factor, rect.Height*factor), true
}

func updateTriangle(t shape.Triangle, key string, value float64, conv units.Converter) (shape.Shape, bool) {
	// Step 1: a side length scales the whole triangle
	sides := t.Sides()
	for i, k := range sideKeys {
		if key == k {
			return scaleTriangle(t, ratio(conv.LengthToPixels(value), sides[i])), true
		}
	}
	// Step 2: an angle reshapes it
	for i, k := range angleKeys {
		if key == k {
			return setTriangleAngle(t, i, value), true
		}
	}

	// Step 3: area scales by the square root of the ratio, the rest linearly
	switch key {
	case KeyArea:
		return scaleTriangle(t, math.Sqrt(ratio(conv.AreaToPixels(value), TriangleArea(t)))), true
	case KeyPerimeter:
		return scaleTriangle(t, ratio(conv.LengthToPixels(value), sides[0]+sides[1]+sides[2])), true
	case KeyHeight:
		return scaleTriangle(t, ratio(conv.LengthToPixels(value), TriangleAltitude(t))), true
	}
	return nil, false
}

func updateLine(l shape.Line, key string, value float64, conv units.Converter) (shape.Shape, bool) {
	switch key {
	case KeyLength:
		return l.WithLength(conv.LengthToPixels(value)), true
	case KeyAngle:
		return l.WithAngle(value), true
	}
	return nil, false
}

// ratio returns target/current. A non-positive target or current value
// yields 0, which the callers' dimension floor turns into MinDimension.
func ratio(target, current float64) float64 {
	if current <= 0 || target <= 0 || !geometry.IsFinite(current) {
		return 0
	}
	return target / current
}

// scaleTriangle scales t uniformly about its centroid. A factor that is
// zero, negative or not finite means the solved size collapsed; the triangle
// is then scaled so that its shortest side becomes MinDimension.
func scaleTriangle(t shape.Triangle, factor float64) shape.Triangle {
	sides := t.Sides()
	shortest := math.Min(sides[0], math.Min(sides[1], sides[2]))
	if shortest <= 0 {
		// A zero side has no scale to solve against.
		return t
	}
	if factor <= 0 || !geometry.IsFinite(factor) {
		factor = shape.MinDimension / shortest
	}
	return t.ScaledAbout(t.Position, factor)
}

// setTriangleAngle sets the interior angle at vertex i to degrees. The
// vertex and its next neighbour stay in place while the previous neighbour
// rotates about the vertex, so both adjacent sides keep their length. The
// result is shifted back onto the original centroid.
func setTriangleAngle(t shape.Triangle, i int, degrees float64) shape.Triangle {
	// Step 1: normalize and clamp the target angle
	target := math.Abs(geometry.NormalizeAngleDegrees(degrees))
	target = math.Max(MinTriangleAngle, math.Min(180-MinTriangleAngle, target))

	vertex := t.Points[i]
	next := t.Points[(i+1)%3]
	prev := t.Points[(i+2)%3]

	toNext := next.Sub(vertex)
	toPrev := prev.Sub(vertex)
	if toNext.Length() == 0 || toPrev.Length() == 0 {
		return t
	}

	// Step 2: rotate the previous vertex to the target angle, keeping the winding
	orientation := 1.0
	if toNext.Cross(toPrev) < 0 {
		orientation = -1.0
	}
	direction := geometry.RadiansToDegrees(math.Atan2(toNext.Y, toNext.X)) + orientation*target

	pts := t.Points
	pts[(i+2)%3] = geometry.PointAtAngle(vertex, toPrev.Length(), direction)

	// Step 3: restore the centroid
	moved := t.WithPoints(pts)
	shift := t.Position.Sub(moved.Position)
	return shape.Translate(moved, shift.X, shift.Y).(shape.Triangle)
}
