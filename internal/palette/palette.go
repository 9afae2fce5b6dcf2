// Package palette picks default colors for newly created shapes.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/goshape/pkg/shape"
)

const (
	goldenAngle = 137.50776405003785
	baseHue     = 210.0

	// StrokeWidth is the default outline width in pixels
	StrokeWidth = 2.0
)

// Next returns the style for the shape created at position index. Consecutive
// indices get well separated hues; the stroke is a darker tone of the fill.
func Next(index int) shape.Style {
	hue := math.Mod(baseHue+float64(abs(index))*goldenAngle, 360)

	fill := colorful.Hcl(hue, 0.35, 0.85).Clamped()
	stroke := colorful.Hcl(hue, 0.55, 0.45).Clamped()

	return shape.Style{
		Fill:        fill.Hex(),
		Stroke:      stroke.Hex(),
		StrokeWidth: StrokeWidth,
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
