// Package vmath holds the float angle and ellipse helpers used by the orbit
// engine and the terminal renderer
package vmath

import "math"

// FullTurn is one revolution in degrees
const FullTurn = 360.0

// NormalizeDegrees wraps an angle into [0, 360)
// Works for any finite input, including large negatives
func NormalizeDegrees(deg float64) float64 {
	r := math.Mod(deg, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	// -1e-17 + 360 rounds to 360
	if r >= FullTurn {
		r -= FullTurn
	}
	return r
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// AngleDiff returns the shortest signed difference from -> to in degrees
// Result in [-180, 180)
func AngleDiff(from, to float64) float64 {
	d := NormalizeDegrees(to) - NormalizeDegrees(from)
	if d >= FullTurn/2 {
		d -= FullTurn
	} else if d < -FullTurn/2 {
		d += FullTurn
	}
	return d
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
