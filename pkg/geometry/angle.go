package geometry

import "math"

// DegreesToRadians converts an angle from degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadiansToDegrees converts an angle from radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// NormalizeAngleDegrees maps any angle onto (-180, 180].
// 180 stays 180 while 181 wraps to -179.
func NormalizeAngleDegrees(a float64) float64 {
	return normalizePeriodic(a, 180.0)
}

// NormalizeAngleRadians maps any angle onto (-π, π].
func NormalizeAngleRadians(a float64) float64 {
	return normalizePeriodic(a, math.Pi)
}

// normalizePeriodic reduces a onto (-half, half] with period 2*half.
func normalizePeriodic(a, half float64) float64 {
	// In range values are returned as is; the modulo below would shift
	// them by a rounding error.
	if !IsFinite(a) || (a > -half && a <= half) {
		return a
	}
	r := math.Mod(a+half, 2*half)
	if r <= 0 {
		r += 2 * half
	}
	return r - half
}

// RotatePointRadians rotates point around center by angle radians.
//
// A positive angle turns +X into +Y. On a y-down screen this is a clockwise
// turn as seen by the user; rotating (10, 0) by π/2 about the origin yields (0, 10).
func RotatePointRadians(point, center Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	d := point.Sub(center)
	return Point{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// RotatePointDegrees rotates point around center by angle degrees
func RotatePointDegrees(point, center Point, angle float64) Point {
	return RotatePointRadians(point, center, DegreesToRadians(angle))
}

// CalculateAngleRadians returns the direction from one point to another in (-π, π]
func CalculateAngleRadians(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// CalculateAngleDegrees returns the direction from one point to another in (-180, 180]
func CalculateAngleDegrees(from, to Point) float64 {
	return RadiansToDegrees(CalculateAngleRadians(from, to))
}

// PointAtAngle returns the point at the given distance from origin in the
// direction of angle degrees
func PointAtAngle(origin Point, distance, angle float64) Point {
	sin, cos := math.Sincos(DegreesToRadians(angle))
	return Point{X: origin.X + distance*cos, Y: origin.Y + distance*sin}
}
