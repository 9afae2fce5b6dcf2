package shape

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/philipparndt/goshape/pkg/geometry"
)

// IDGenerator produces unique shape ids
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to an IDGenerator
type IDGeneratorFunc func() string

// NewID implements IDGenerator
func (f IDGeneratorFunc) NewID() string {
	return f()
}

// UUIDGenerator generates random (version 4) UUIDs
type UUIDGenerator struct{}

// NewID implements IDGenerator
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type createOptions struct {
	ids   IDGenerator
	id    string
	style Style
}

// Option configures Create
type Option func(*createOptions)

// WithID assigns a fixed id instead of generating one
func WithID(id string) Option {
	return func(o *createOptions) {
		o.id = id
	}
}

// WithIDGenerator sets the generator used for new ids
func WithIDGenerator(g IDGenerator) Option {
	return func(o *createOptions) {
		o.ids = g
	}
}

// WithCreateStyle sets the presentation style of the new shape
func WithCreateStyle(style Style) Option {
	return func(o *createOptions) {
		o.style = style
	}
}

// Create builds a new shape from a drag gesture running from start to end.
//
//   - circle: centered on start, radius |end-start|
//   - rectangle: the axis aligned box spanning start and end
//   - triangle: right triangle start, start+drag, start+perp(drag)
//   - line: from start to end
//
// Zero length drags are floored to MinDimension so the result stays renderable.
func Create(kind Kind, start, end geometry.Point, opts ...Option) (Shape, error) {
	o := createOptions{ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(&o)
	}

	id := o.id
	if id == "" {
		id = o.ids.NewID()
	}
	c := Common{ID: id, Style: o.style}

	switch kind {
	case KindCircle:
		c.Position = start
		return Circle{Common: c}.WithRadius(start.Distance(end)), nil

	case KindRectangle:
		c.Position = geometry.Pt(math.Min(start.X, end.X), math.Min(start.Y, end.Y))
		return Rectangle{Common: c}.WithSize(math.Abs(end.X-start.X), math.Abs(end.Y-start.Y)), nil

	case KindTriangle:
		drag := end.Sub(start)
		if drag.Length() == 0 {
			drag = geometry.Pt(MinDimension, 0)
		}
		tri := NewTriangle(c, [3]geometry.Point{
			start,
			start.Add(drag),
			start.Add(drag.Perpendicular()),
		})
		tri.Original = &Dimensions{Sides: tri.Sides()}
		return tri, nil

	case KindLine:
		line := NewLine(c, start, end)
		if line.Length == 0 {
			line = line.WithLength(MinDimension)
		}
		return line, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
