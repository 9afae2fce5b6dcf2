// Package measure computes the displayable measurements of a shape and
// solves the inverse problem: given a new value for one measurement, it
// derives the shape geometry that realizes it.
//
// All functions are pure. Lengths are reported in the requested unit using
// the injected pixels-per-unit calibration, areas in square units and angles
// in degrees.
package measure

import (
	"math"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

// Measurement keys
const (
	KeyRadius        = "radius"
	KeyDiameter      = "diameter"
	KeyCircumference = "circumference"
	KeyArea          = "area"
	KeyWidth         = "width"
	KeyHeight        = "height"
	KeyPerimeter     = "perimeter"
	KeyDiagonal      = "diagonal"
	KeySide1         = "side1"
	KeySide2         = "side2"
	KeySide3         = "side3"
	KeyAngle1        = "angle1"
	KeyAngle2        = "angle2"
	KeyAngle3        = "angle3"
	KeyLength        = "length"
	KeyAngle         = "angle"
)

var (
	sideKeys  = [3]string{KeySide1, KeySide2, KeySide3}
	angleKeys = [3]string{KeyAngle1, KeyAngle2, KeyAngle3}
)

// Quantity classifies how a measurement converts between pixels and units
type Quantity int

const (
	QuantityLength Quantity = iota
	QuantityArea
	QuantityAngle
)

// Keys returns the measurement keys of a kind in display order
func Keys(kind shape.Kind) []string {
	switch kind {
	case shape.KindCircle:
		return []string{KeyRadius, KeyDiameter, KeyCircumference, KeyArea}
	case shape.KindRectangle:
		return []string{KeyWidth, KeyHeight, KeyArea, KeyPerimeter, KeyDiagonal}
	case shape.KindTriangle:
		return []string{KeySide1, KeySide2, KeySide3, KeyAngle1, KeyAngle2, KeyAngle3, KeyArea, KeyPerimeter, KeyHeight}
	case shape.KindLine:
		return []string{KeyLength, KeyAngle}
	}
	return nil
}

// Editable reports whether a key can be edited for a kind. Every displayed
// measurement is editable.
func Editable(kind shape.Kind, key string) bool {
	for _, k := range Keys(kind) {
		if k == key {
			return true
		}
	}
	return false
}

// QuantityOf returns how a key converts
func QuantityOf(key string) Quantity {
	switch key {
	case KeyArea:
		return QuantityArea
	case KeyAngle, KeyAngle1, KeyAngle2, KeyAngle3:
		return QuantityAngle
	}
	return QuantityLength
}

// Suffix returns the display suffix for a key, such as "cm", "cm²" or "°"
func Suffix(key string, unit units.Unit) string {
	switch QuantityOf(key) {
	case QuantityArea:
		return unit.String() + "²"
	case QuantityAngle:
		return "°"
	}
	return unit.String()
}

// Values computes every measurement of s in the given unit
func Values(s shape.Shape, unit units.Unit, r units.Resolver) map[string]float64 {
	conv := units.NewConverter(unit, r)
	px := pixelValues(s)
	out := make(map[string]float64, len(px))
	for key, v := range px {
		switch QuantityOf(key) {
		case QuantityLength:
			out[key] = conv.Length(v)
		case QuantityArea:
			out[key] = conv.Area(v)
		default:
			out[key] = v
		}
	}
	return out
}

// Measurements computes every measurement of s formatted for display
func Measurements(s shape.Shape, unit units.Unit, r units.Resolver) map[string]string {
	values := Values(s, unit, r)
	out := make(map[string]string, len(values))
	for key, v := range values {
		out[key] = units.FormatValue(v)
	}
	return out
}

// Entry is one displayed measurement
type Entry struct {
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
	Text   string  `json:"text"`
	Suffix string  `json:"suffix"`
}

// Entries returns the measurements of s in display order
func Entries(s shape.Shape, unit units.Unit, r units.Resolver) []Entry {
	if s == nil {
		return nil
	}
	values := Values(s, unit, r)
	keys := Keys(s.Kind())
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		v := values[key]
		out = append(out, Entry{
			Key:    key,
			Value:  v,
			Text:   units.FormatValue(v),
			Suffix: Suffix(key, unit),
		})
	}
	return out
}

// pixelValues computes all measurements in pixels (and degrees)
func pixelValues(s shape.Shape) map[string]float64 {
	switch v := s.(type) {
	case shape.Circle:
		return map[string]float64{
			KeyRadius:        v.Radius,
			KeyDiameter:      2 * v.Radius,
			KeyCircumference: 2 * math.Pi * v.Radius,
			KeyArea:          math.Pi * v.Radius * v.Radius,
		}
	case shape.Rectangle:
		return map[string]float64{
			KeyWidth:     v.Width,
			KeyHeight:    v.Height,
			KeyArea:      v.Width * v.Height,
			KeyPerimeter: 2 * (v.Width + v.Height),
			KeyDiagonal:  math.Hypot(v.Width, v.Height),
		}
	case shape.Triangle:
		sides := v.Sides()
		angles := TriangleAngles(v)
		area := TriangleArea(v)
		out := map[string]float64{
			KeyArea:      area,
			KeyPerimeter: sides[0] + sides[1] + sides[2],
			KeyHeight:    TriangleAltitude(v),
		}
		for i := range 3 {
			out[sideKeys[i]] = sides[i]
			out[angleKeys[i]] = angles[i]
		}
		return out
	case shape.Line:
		return map[string]float64{
			KeyLength: v.Length,
			KeyAngle:  v.Rotation,
		}
	}
	return map[string]float64{}
}

// Area returns the area of a shape in square pixels. Lines have no area.
func Area(s shape.Shape) float64 {
	switch v := s.(type) {
	case shape.Circle:
		return math.Pi * v.Radius * v.Radius
	case shape.Rectangle:
		return v.Width * v.Height
	case shape.Triangle:
		return TriangleArea(v)
	}
	return 0
}

// Perimeter returns the perimeter of a shape in pixels. For a line this is its length.
func Perimeter(s shape.Shape) float64 {
	switch v := s.(type) {
	case shape.Circle:
		return 2 * math.Pi * v.Radius
	case shape.Rectangle:
		return 2 * (v.Width + v.Height)
	case shape.Triangle:
		sides := v.Sides()
		return sides[0] + sides[1] + sides[2]
	case shape.Line:
		return v.Length
	}
	return 0
}

// TriangleArea returns the area using the shoelace formula
func TriangleArea(t shape.Triangle) float64 {
	p1, p2, p3 := t.Points[0], t.Points[1], t.Points[2]
	return 0.5 * math.Abs(p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y))
}

// TriangleAltitude returns the height over the longest side
func TriangleAltitude(t shape.Triangle) float64 {
	// Area is half base times height, with the longest side as the base.
	sides := t.Sides()
	base := math.Max(sides[0], math.Max(sides[1], sides[2]))
	if base == 0 {
		return 0
	}
	return 2 * TriangleArea(t) / base
}

// TriangleAngles returns the interior angles in degrees at Points[0],
// Points[1] and Points[2]. The third angle is derived from the other two so
// that the sum is exactly 180.
func TriangleAngles(t shape.Triangle) [3]float64 {
	sides := t.Sides()

	// Step 1: law of cosines for the angles at the first two vertices
	a1 := lawOfCosines(sides[0], sides[2], sides[1])
	a2 := lawOfCosines(sides[0], sides[1], sides[2])

	// Step 2: the third angle closes the sum
	return [3]float64{a1, a2, 180 - a1 - a2}
}

// lawOfCosines returns the angle in degrees between sides a and b opposite side c
func lawOfCosines(a, b, c float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	cos := (a*a + b*b - c*c) / (2 * a * b)
	cos = math.Max(-1, math.Min(1, cos))
	return geometry.RadiansToDegrees(math.Acos(cos))
}
