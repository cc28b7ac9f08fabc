package vmath

import "math"

// TerminalAspect is the width:height ratio of a character cell (1:2)
// Multiply a horizontal cell span by this to get the matching vertical span
const TerminalAspect = 0.5

// EllipseContains reports whether offset (dx, dy) lies inside or on the
// ellipse with semi-axes rx, ry centered at the origin
func EllipseContains(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx+ny*ny <= 1
}

// SampleEllipseGrid returns grid coordinates for count points along an ellipse
// centerX, centerY: ellipse center in cells
// radiusX, radiusY: semi-axes in cells
// phase: starting angle in degrees
func SampleEllipseGrid(centerX, centerY int, radiusX, radiusY float64, count int, phase float64) [][2]int {
	if count <= 0 {
		return nil
	}
	points := make([][2]int, count)
	step := FullTurn / float64(count)
	for i := 0; i < count; i++ {
		x, y := Polar(phase+float64(i)*step, 1)
		points[i] = [2]int{
			centerX + int(math.Round(x*radiusX)),
			centerY + int(math.Round(y*radiusY)),
		}
	}
	return points
}
