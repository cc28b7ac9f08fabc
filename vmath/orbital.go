package vmath

import "math"

// Polar returns the Cartesian offset for a point on a circle
// deg: angle in degrees, measured from +X toward +Y (screen down)
// radius: distance from center
func Polar(deg, radius float64) (x, y float64) {
	rad := DegToRad(deg)
	return math.Cos(rad) * radius, math.Sin(rad) * radius
}

// SinDeg returns sin of an angle in degrees
func SinDeg(deg float64) float64 {
	return math.Sin(DegToRad(deg))
}
