package geometry

import (
	"errors"
	"math"
)

// ErrCollinear is returned when points do not define a circle
var ErrCollinear = errors.New("points are collinear")

// CircleFit is a circle fitted to a set of points
type CircleFit struct {
	Center Point
	Radius float64
	StdDev float64 // spread of the point distances around Radius
}

// FitCircle fits a circle through the first, middle and last of the given
// points, which gives good coverage when they are sampled along an arc.
//
// The center follows from the 3-point determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircle(points []Point) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, errors.New("need at least 3 points to fit a circle")
	}

	p1 := points[0]
	p2 := points[len(points)/2]
	p3 := points[len(points)-1]

	d := 2.0 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < 1e-10 || !IsFinite(d) {
		return nil, ErrCollinear
	}

	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y

	center := Pt(
		(s1*(p2.Y-p3.Y)+s2*(p3.Y-p1.Y)+s3*(p1.Y-p2.Y))/d,
		(s1*(p3.X-p2.X)+s2*(p1.X-p3.X)+s3*(p2.X-p1.X))/d,
	)
	radius := center.Distance(p1)

	var sumError float64
	for _, p := range points {
		e := center.Distance(p) - radius
		sumError += e * e
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, nil
}
